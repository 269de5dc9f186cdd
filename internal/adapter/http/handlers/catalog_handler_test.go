package handlers

import (
	"mercado_audiovisual/internal/adapter/http/handlers/mocks"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestProyectoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProyectoUseCase(ctrl)
	h := NewProyectoHandler(uc)

	r := newTestRouter()
	r.GET("/v1/proyecto", h.List)
	r.GET("/v1/proyecto/:id", h.Get)
	auth := r.Group("/v1/proyecto", asActor(ownerActor))
	auth.POST("", h.Create)
	auth.PATCH("/:id", h.Update)
	auth.DELETE("/:id", h.Delete)

	t.Run("create without puestos fails validation in use case", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), ownerActor, gomock.Any()).Return(entities.Proyecto{}, usecase.ErrInvalidProyecto)
		w := doJSON(r, http.MethodPost, "/v1/proyecto", `{"titulo":"La frontera","tipo":"Cortometraje","ciudad":"Salta"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create with too many puestos", func(t *testing.T) {
		puestos := strings.TrimSuffix(strings.Repeat(`{"nombre":"Asistente"},`, usecase.MaxPuestos+1), ",")
		w := doJSON(r, http.MethodPost, "/v1/proyecto", `{"titulo":"La frontera","tipo":"Cortometraje","ciudad":"Salta","puestos":[`+puestos+`]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create missing titulo", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/v1/proyecto", `{"tipo":"Cortometraje","ciudad":"Salta"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), ownerActor, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, in usecase.ProyectoInput) (entities.Proyecto, error) {
				if len(in.Puestos) != 1 || in.Puestos[0].Nombre != "Director/a" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Proyecto{ID: "5", OwnerID: "2", Titulo: in.Titulo}, nil
			})
		w := doJSON(r, http.MethodPost, "/v1/proyecto", `{"titulo":"La frontera","tipo":"Cortometraje","ciudad":"Salta","puestos":[{"nombre":"Director/a"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		uc.EXPECT().Get(gomock.Any(), "404").Return(entities.Proyecto{}, usecase.ErrProyectoNotFound)
		w := doJSON(r, http.MethodGet, "/v1/proyecto/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any()).Return([]entities.Proyecto{{ID: "5"}}, nil)
		w := doJSON(r, http.MethodGet, "/v1/proyecto", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update forbidden", func(t *testing.T) {
		uc.EXPECT().Update(gomock.Any(), ownerActor, "6", gomock.Any()).Return(entities.Proyecto{}, usecase.ErrForbidden)
		w := doJSON(r, http.MethodPatch, "/v1/proyecto/6", `{"titulo":"x","tipo":"y","ciudad":"z"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		uc.EXPECT().Delete(gomock.Any(), ownerActor, "5").Return(nil)
		w := doJSON(r, http.MethodDelete, "/v1/proyecto/5", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPrestadorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPrestadorUseCase(ctrl)
	h := NewPrestadorHandler(uc)

	r := newTestRouter()
	r.GET("/v1/prestador/:id", h.Get)
	auth := r.Group("/v1/prestador", asActor(userActor))
	auth.POST("", h.Create)
	auth.GET("/mios", h.ListMine)
	auth.DELETE("/:id", h.Delete)

	t.Run("create invalid email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/v1/prestador", `{"tipoPerfil":"Empresa","nombre":"Estudio Norte","rubro":"Sonido","email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), userActor, usecase.PrestadorInput{TipoPerfil: "Empresa", Nombre: "Estudio Norte", Rubro: "Sonido"}).
			Return(entities.Prestador{ID: "7", OwnerID: "1", Nombre: "Estudio Norte"}, nil)
		w := doJSON(r, http.MethodPost, "/v1/prestador", `{"tipoPerfil":"Empresa","nombre":"Estudio Norte","rubro":"Sonido"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("mine", func(t *testing.T) {
		uc.EXPECT().ListMine(gomock.Any(), userActor).Return([]entities.Prestador{{ID: "7"}}, nil)
		w := doJSON(r, http.MethodGet, "/v1/prestador/mios", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		uc.EXPECT().Get(gomock.Any(), "7").Return(entities.Prestador{ID: "7"}, nil)
		w := doJSON(r, http.MethodGet, "/v1/prestador/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete forbidden", func(t *testing.T) {
		uc.EXPECT().Delete(gomock.Any(), userActor, "8").Return(usecase.ErrForbidden)
		w := doJSON(r, http.MethodDelete, "/v1/prestador/8", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
