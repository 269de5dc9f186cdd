package handlers

import (
	"log"
	request "mercado_audiovisual/internal/adapter/http/dto/request"
	response "mercado_audiovisual/internal/adapter/http/dto/response"
	"mercado_audiovisual/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SolicitudHandler exposes the contact-request workflow.
type SolicitudHandler struct {
	usecase usecase.ISolicitudUseCase
}

func NewSolicitudHandler(uc usecase.ISolicitudUseCase) *SolicitudHandler {
	return &SolicitudHandler{usecase: uc}
}

func (h *SolicitudHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.SolicitudRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), actor, payload.ResolvePrestadorID())
	if err != nil {
		log.Printf("[solicitud][handler] submit failed user_id=%s prestador_id=%s err=%v", actor.UserID, payload.PrestadorID, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSolicitud(created))
}

func (h *SolicitudHandler) ListReceived(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListReceived(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSolicitudesRecibidas(items))
}

func (h *SolicitudHandler) ListSent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListSent(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSolicitudesEnviadas(items))
}

func (h *SolicitudHandler) Decide(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.EstadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.Decide(c.Request.Context(), actor, c.Param("id"), payload.Estado)
	if err != nil {
		log.Printf("[solicitud][handler] decide failed user_id=%s solicitud_id=%s err=%v", actor.UserID, c.Param("id"), err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSolicitud(updated))
}
