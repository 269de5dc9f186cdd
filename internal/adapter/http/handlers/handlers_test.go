package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mercado_audiovisual/internal/adapter/http/middleware"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"mercado_audiovisual/pkg"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

var (
	userActor  = entities.Actor{UserID: "1", Rol: entities.RolUser}
	ownerActor = entities.Actor{UserID: "2", Rol: entities.RolUser}
)

// asActor stands in for the auth middleware.
func asActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrPuestoNotFound, "PUESTO_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrProyectoNotFound, "PROYECTO_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrPostulacionNotFound, "POSTULACION_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrPrestadorNotFound, "PRESTADOR_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrSolicitudNotFound, "SOLICITUD_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrNotificacionNotFound, "NOTIFICACION_NOT_FOUND", http.StatusNotFound},
		{fmt.Errorf("submit: %w", usecase.ErrPostulacionDuplicada), "ALREADY_APPLIED", http.StatusConflict},
		{usecase.ErrSolicitudDuplicada, "ALREADY_REQUESTED", http.StatusConflict},
		{usecase.ErrForbidden, "ACCESS_DENIED", http.StatusForbidden},
		{usecase.ErrInvalidEstado, "INVALID_ESTADO", http.StatusBadRequest},
		{usecase.ErrInvalidMensaje, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrInvalidProyecto, "INVALID_REQUEST", http.StatusBadRequest},
		{errors.New("dynamo down"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		appErr := mapError(tc.err)
		if appErr.Code != tc.code || appErr.HTTPStatus != tc.status {
			t.Fatalf("mapError(%v) = %s/%d, want %s/%d", tc.err, appErr.Code, appErr.HTTPStatus, tc.code, tc.status)
		}
	}
}

func TestRequireActor_MissingActor(t *testing.T) {
	r := newTestRouter()
	r.GET("/v1/notificacion/badge", NewNotificacionHandler(nil).Badge)

	w := doJSON(r, http.MethodGet, "/v1/notificacion/badge", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "UNAUTHENTICATED" {
		t.Fatalf("unexpected code %s", body.Code)
	}
}
