package handlers

import (
	response "mercado_audiovisual/internal/adapter/http/dto/response"
	"mercado_audiovisual/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificacionHandler struct {
	usecase usecase.INotificacionUseCase
}

func NewNotificacionHandler(uc usecase.INotificacionUseCase) *NotificacionHandler {
	return &NotificacionHandler{usecase: uc}
}

// Badge returns the caller's unread count. Clients poll it.
func (h *NotificacionHandler) Badge(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.usecase.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

func (h *NotificacionHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	items, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificaciones(items))
}

func (h *NotificacionHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificacion(n))
}

func (h *NotificacionHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}
