package handlers

import (
	"encoding/json"
	"mercado_audiovisual/internal/adapter/http/handlers/mocks"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSolicitudRouter(t *testing.T, actor entities.Actor) (*gin.Engine, *mocks.MockISolicitudUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISolicitudUseCase(ctrl)
	h := NewSolicitudHandler(uc)

	r := newTestRouter()
	g := r.Group("/v1/solicitud", asActor(actor))
	g.POST("", h.Submit)
	g.GET("/recibidas", h.ListReceived)
	g.GET("/enviadas", h.ListSent)
	g.PATCH("/:id", h.Decide)
	return r, uc
}

func TestSolicitudHandler_Submit(t *testing.T) {
	t.Run("missing prestadorId", func(t *testing.T) {
		r, _ := newSolicitudRouter(t, userActor)
		w := doJSON(r, http.MethodPost, "/v1/solicitud", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already requested", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, userActor)
		uc.EXPECT().Submit(gomock.Any(), userActor, "7").Return(entities.Solicitud{}, usecase.ErrSolicitudDuplicada)

		w := doJSON(r, http.MethodPost, "/v1/solicitud", `{"prestadorId":"7"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ALREADY_REQUESTED" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, userActor)
		uc.EXPECT().Submit(gomock.Any(), userActor, "7").Return(entities.Solicitud{ID: "s-1", SolicitanteID: "1", PrestadorID: "7", Estado: entities.SolicitudPendiente}, nil)

		w := doJSON(r, http.MethodPost, "/v1/solicitud", `{"prestadorId":"7"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSolicitudHandler_DecideAndLists(t *testing.T) {
	t.Run("decide", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, ownerActor)
		uc.EXPECT().Decide(gomock.Any(), ownerActor, "s-1", "Aprobada").Return(entities.Solicitud{ID: "s-1", Estado: entities.SolicitudAprobada}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/solicitud/s-1", `{"estado":"Aprobada"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("decide missing", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, ownerActor)
		uc.EXPECT().Decide(gomock.Any(), ownerActor, "s-404", "Rechazada").Return(entities.Solicitud{}, usecase.ErrSolicitudNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/solicitud/s-404", `{"estado":"Rechazada"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("received", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, ownerActor)
		uc.EXPECT().ListReceived(gomock.Any(), ownerActor).Return([]usecase.SolicitudRecibida{{
			Solicitud:              entities.Solicitud{ID: "s-1", Estado: entities.SolicitudPendiente},
			Solicitante:            usecase.UsuarioResumen{ID: "1", Nombre: "Ana"},
			SolicitantePrestadorID: "p-early",
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/solicitud/recibidas", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 1 || body[0]["solicitantePrestadorId"] != "p-early" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("sent", func(t *testing.T) {
		r, uc := newSolicitudRouter(t, userActor)
		uc.EXPECT().ListSent(gomock.Any(), userActor).Return([]usecase.SolicitudEnviada{{
			Solicitud: entities.Solicitud{ID: "s-1", Estado: entities.SolicitudAprobada},
			Prestador: usecase.PrestadorResumen{ID: "7", Nombre: "Estudio Norte"},
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/solicitud/enviadas", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
