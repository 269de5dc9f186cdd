package handlers

import (
	"encoding/json"
	"mercado_audiovisual/internal/adapter/http/handlers/mocks"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPostulacionRouter(t *testing.T, actor entities.Actor) (*gin.Engine, *mocks.MockIPostulacionUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPostulacionUseCase(ctrl)
	h := NewPostulacionHandler(uc)

	r := newTestRouter()
	g := r.Group("/v1/postulacion", asActor(actor))
	g.POST("", h.Submit)
	g.GET("/mis-postulaciones", h.ListMine)
	g.GET("/proyecto/:id", h.ListForProject)
	g.PATCH("/:id", h.Decide)
	return r, uc
}

func TestPostulacionHandler_Submit(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPostulacionRouter(t, userActor)
		w := doJSON(r, http.MethodPost, "/v1/postulacion", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing puestoId", func(t *testing.T) {
		r, _ := newPostulacionRouter(t, userActor)
		w := doJSON(r, http.MethodPost, "/v1/postulacion", `{"mensaje":"hola"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().Submit(gomock.Any(), userActor, "10", "hola").Return(entities.Postulacion{}, usecase.ErrPostulacionDuplicada)

		w := doJSON(r, http.MethodPost, "/v1/postulacion", `{"puestoId":" 10 ","mensaje":"hola"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ALREADY_APPLIED" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("puesto not found", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().Submit(gomock.Any(), userActor, "404", "").Return(entities.Postulacion{}, usecase.ErrPuestoNotFound)

		w := doJSON(r, http.MethodPost, "/v1/postulacion", `{"puestoId":"404"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		now := time.Now().UTC()
		uc.EXPECT().Submit(gomock.Any(), userActor, "10", "hola").Return(entities.Postulacion{
			ID: "p-1", PostulanteID: "1", PuestoID: "10", ProyectoID: "5", Mensaje: "hola",
			Estado: entities.PostulacionPendiente, CreatedAt: now, UpdatedAt: now,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/postulacion", `{"puestoId":"10","mensaje":"hola"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["estado"] != "Pendiente" || body["puestoId"] != "10" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPostulacionHandler_Decide(t *testing.T) {
	t.Run("missing estado", func(t *testing.T) {
		r, _ := newPostulacionRouter(t, ownerActor)
		w := doJSON(r, http.MethodPatch, "/v1/postulacion/p-1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid estado", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, ownerActor)
		uc.EXPECT().Decide(gomock.Any(), ownerActor, "p-1", "Pendiente").Return(entities.Postulacion{}, usecase.ErrInvalidEstado)

		w := doJSON(r, http.MethodPatch, "/v1/postulacion/p-1", `{"estado":"Pendiente"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_ESTADO" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("non owner", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().Decide(gomock.Any(), userActor, "p-1", "Aceptada").Return(entities.Postulacion{}, usecase.ErrForbidden)

		w := doJSON(r, http.MethodPatch, "/v1/postulacion/p-1", `{"estado":"Aceptada"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, ownerActor)
		uc.EXPECT().Decide(gomock.Any(), ownerActor, "p-1", "aceptada").Return(entities.Postulacion{ID: "p-1", Estado: entities.PostulacionAceptada}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/postulacion/p-1", `{"estado":"aceptada"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPostulacionHandler_Lists(t *testing.T) {
	t.Run("mine", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().ListMine(gomock.Any(), userActor).Return([]usecase.PostulacionDetalle{{
			Postulacion:  entities.Postulacion{ID: "p-1", Estado: entities.PostulacionAceptada},
			PuestoNombre: "Director/a",
			Proyecto:     usecase.ProyectoResumen{ID: "5", Titulo: "La frontera"},
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/postulacion/mis-postulaciones", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 1 || body[0]["puestoNombre"] != "Director/a" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("mine empty is an array", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().ListMine(gomock.Any(), userActor).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/postulacion/mis-postulaciones", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("for project forbidden", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, userActor)
		uc.EXPECT().ListForProject(gomock.Any(), userActor, "5").Return(nil, usecase.ErrForbidden)

		w := doJSON(r, http.MethodGet, "/v1/postulacion/proyecto/5", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("for project", func(t *testing.T) {
		r, uc := newPostulacionRouter(t, ownerActor)
		uc.EXPECT().ListForProject(gomock.Any(), ownerActor, "5").Return([]usecase.PostulacionCandidato{{
			Postulacion: entities.Postulacion{ID: "p-1"},
			Postulante:  usecase.UsuarioResumen{ID: "1", Nombre: "Ana", Email: "ana@example.com"},
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/postulacion/proyecto/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
