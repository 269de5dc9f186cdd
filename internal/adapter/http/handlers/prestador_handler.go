package handlers

import (
	request "mercado_audiovisual/internal/adapter/http/dto/request"
	response "mercado_audiovisual/internal/adapter/http/dto/response"
	"mercado_audiovisual/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PrestadorHandler struct {
	usecase usecase.IPrestadorUseCase
}

func NewPrestadorHandler(uc usecase.IPrestadorUseCase) *PrestadorHandler {
	return &PrestadorHandler{usecase: uc}
}

func (h *PrestadorHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PrestadorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPrestador(created))
}

func (h *PrestadorHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrestador(p))
}

func (h *PrestadorHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrestadores(items))
}

func (h *PrestadorHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
