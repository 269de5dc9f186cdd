package handlers

import (
	"log"
	request "mercado_audiovisual/internal/adapter/http/dto/request"
	response "mercado_audiovisual/internal/adapter/http/dto/response"
	"mercado_audiovisual/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostulacionHandler exposes the application workflow.
type PostulacionHandler struct {
	usecase usecase.IPostulacionUseCase
}

func NewPostulacionHandler(uc usecase.IPostulacionUseCase) *PostulacionHandler {
	return &PostulacionHandler{usecase: uc}
}

func (h *PostulacionHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PostulacionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), actor, payload.ResolvePuestoID(), payload.Mensaje)
	if err != nil {
		log.Printf("[postulacion][handler] submit failed user_id=%s puesto_id=%s err=%v", actor.UserID, payload.PuestoID, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPostulacion(created))
}

func (h *PostulacionHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPostulacionDetalles(items))
}

func (h *PostulacionHandler) ListForProject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListForProject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPostulacionCandidatos(items))
}

func (h *PostulacionHandler) Decide(c *gin.Context) {
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
		log.Printf("[postulacion][handler] decide failed user_id=%s postulacion_id=%s err=%v", actor.UserID, c.Param("id"), err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPostulacion(updated))
}
