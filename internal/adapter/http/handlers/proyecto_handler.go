package handlers

import (
	"log"
	request "mercado_audiovisual/internal/adapter/http/dto/request"
	response "mercado_audiovisual/internal/adapter/http/dto/response"
	"mercado_audiovisual/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProyectoHandler struct {
	usecase usecase.IProyectoUseCase
}

func NewProyectoHandler(uc usecase.IProyectoUseCase) *ProyectoHandler {
	return &ProyectoHandler{usecase: uc}
}

func (h *ProyectoHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ProyectoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[proyecto][handler] create failed user_id=%s err=%v", actor.UserID, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProyecto(created))
}

func (h *ProyectoHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProyecto(p))
}

func (h *ProyectoHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProyectos(items))
}

func (h *ProyectoHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ProyectoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProyecto(updated))
}

func (h *ProyectoHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		log.Printf("[proyecto][handler] delete failed user_id=%s proyecto_id=%s err=%v", actor.UserID, c.Param("id"), err)
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
