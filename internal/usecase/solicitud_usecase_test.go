package usecase

import (
	"context"
	"errors"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	mock_interfaces "mercado_audiovisual/internal/usecase/interfaces/mocks"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

type solicitudDeps struct {
	repo        *mock_interfaces.MockISolicitudRepository
	prestadores *mock_interfaces.MockIPrestadorRepository
	usuarios    *mock_interfaces.MockIUsuarioRepository
	emitter     *mock_interfaces.MockINotificationEmitter
}

func newSolicitudUseCaseForTest(t *testing.T) (*SolicitudUseCase, solicitudDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := solicitudDeps{
		repo:        mock_interfaces.NewMockISolicitudRepository(ctrl),
		prestadores: mock_interfaces.NewMockIPrestadorRepository(ctrl),
		usuarios:    mock_interfaces.NewMockIUsuarioRepository(ctrl),
		emitter:     mock_interfaces.NewMockINotificationEmitter(ctrl),
	}
	notifier := NewNotifier(d.emitter, nil, time.Second)
	return NewSolicitudUseCase(d.repo, d.prestadores, d.usuarios, notifier, NewPolicy(false), nil), d
}

var prestador7 = entities.Prestador{ID: "7", OwnerID: "3", Nombre: "Estudio Norte", Rubro: "Sonido", Ciudad: "Córdoba"}

func TestSolicitudUseCase_Submit(t *testing.T) {
	t.Run("prestador not found", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Prestador{}, nil)

		_, err := uc.Submit(context.Background(), applicantA, "404")
		if !errors.Is(err, ErrPrestadorNotFound) {
			t.Fatalf("expected ErrPrestadorNotFound, got %v", err)
		}
	})

	t.Run("owner cannot request contact with own profile", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)

		_, err := uc.Submit(context.Background(), strangerC, "7")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("earlier request blocks a new one whatever its estado", func(t *testing.T) {
		for _, estado := range []entities.SolicitudEstado{entities.SolicitudPendiente, entities.SolicitudAprobada, entities.SolicitudRechazada} {
			uc, d := newSolicitudUseCaseForTest(t)
			d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)
			d.repo.EXPECT().FindBySolicitanteAndPrestador(gomock.Any(), "1", "7").Return(entities.Solicitud{ID: "s-1", Estado: estado}, nil)

			_, err := uc.Submit(context.Background(), applicantA, "7")
			if !errors.Is(err, ErrSolicitudDuplicada) {
				t.Fatalf("estado %s: expected ErrSolicitudDuplicada, got %v", estado, err)
			}
		}
	})

	t.Run("uniqueness constraint wins a race", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)
		d.repo.EXPECT().FindBySolicitanteAndPrestador(gomock.Any(), "1", "7").Return(entities.Solicitud{}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Solicitud{}, interfaces.ErrDuplicateKey)

		_, err := uc.Submit(context.Background(), applicantA, "7")
		if !errors.Is(err, ErrSolicitudDuplicada) {
			t.Fatalf("expected ErrSolicitudDuplicada, got %v", err)
		}
	})

	t.Run("creates pendiente and notifies the prestador owner", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)
		d.repo.EXPECT().FindBySolicitanteAndPrestador(gomock.Any(), "1", "7").Return(entities.Solicitud{}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Solicitud) (entities.Solicitud, error) {
				if s.ID == "" || s.SolicitanteID != "1" || s.PrestadorID != "7" || s.Estado != entities.SolicitudPendiente {
					t.Fatalf("unexpected solicitud: %+v", s)
				}
				return s, nil
			},
		)
		d.usuarios.EXPECT().GetByID(gomock.Any(), "1").Return(postulante1, nil)
		d.emitter.EXPECT().Emit(gomock.Any(), "3", "Nueva solicitud de contacto", "Ana quiere contactar a tu perfil Estudio Norte.", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _ string, link *string) (entities.Notificacion, error) {
				if link == nil || *link != "/solicitudes" {
					t.Fatalf("unexpected link: %v", link)
				}
				return entities.Notificacion{ID: "n-1"}, nil
			},
		)

		res, err := uc.Submit(context.Background(), applicantA, "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.SolicitudPendiente {
			t.Fatalf("expected Pendiente, got %s", res.Estado)
		}
	})
}

func TestSolicitudUseCase_Decide(t *testing.T) {
	pendiente := entities.Solicitud{ID: "s-1", SolicitanteID: "1", PrestadorID: "7", Estado: entities.SolicitudPendiente}

	t.Run("invalid estado", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendiente, nil).AnyTimes()
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil).AnyTimes()
		for _, estado := range []string{"Aceptada", "Pendiente", ""} {
			if _, err := uc.Decide(context.Background(), strangerC, "s-1", estado); !errors.Is(err, ErrInvalidEstado) {
				t.Fatalf("estado %q: expected ErrInvalidEstado, got %v", estado, err)
			}
		}
	})

	t.Run("requester with invalid estado is denied", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendiente, nil)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)

		_, err := uc.Decide(context.Background(), applicantA, "s-1", "Aceptada")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("requester cannot decide", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendiente, nil)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)

		_, err := uc.Decide(context.Background(), applicantA, "s-1", "Aprobada")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("approval notifies with a link to the profile", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		approved := pendiente
		approved.Estado = entities.SolicitudAprobada
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendiente, nil)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)
		d.repo.EXPECT().UpdateEstado(gomock.Any(), "s-1", entities.SolicitudAprobada).Return(approved, true, nil)
		d.emitter.EXPECT().Emit(gomock.Any(), "1", "Solicitud aprobada", "Estudio Norte aprobó tu solicitud de contacto.", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _ string, link *string) (entities.Notificacion, error) {
				if link == nil || *link != "/prestadores/7" {
					t.Fatalf("unexpected link: %v", link)
				}
				return entities.Notificacion{ID: "n-1"}, nil
			},
		)

		res, err := uc.Decide(context.Background(), strangerC, "s-1", " APROBADA ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.SolicitudAprobada {
			t.Fatalf("expected Aprobada, got %s", res.Estado)
		}
	})

	t.Run("rejection notifies without link", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		rejected := pendiente
		rejected.Estado = entities.SolicitudRechazada
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendiente, nil)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)
		d.repo.EXPECT().UpdateEstado(gomock.Any(), "s-1", entities.SolicitudRechazada).Return(rejected, true, nil)
		d.emitter.EXPECT().Emit(gomock.Any(), "1", "Solicitud de contacto actualizada", gomock.Any(), gomock.Nil()).Return(entities.Notificacion{ID: "n-1"}, nil)

		if _, err := uc.Decide(context.Background(), adminActor, "s-1", "Rechazada"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("same estado is a no-op", func(t *testing.T) {
		uc, d := newSolicitudUseCaseForTest(t)
		approved := pendiente
		approved.Estado = entities.SolicitudAprobada
		d.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(approved, nil)
		d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil)

		res, err := uc.Decide(context.Background(), strangerC, "s-1", "Aprobada")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.SolicitudAprobada {
			t.Fatalf("expected Aprobada, got %s", res.Estado)
		}
	})
}

func TestSolicitudUseCase_ListReceived(t *testing.T) {
	uc, d := newSolicitudUseCaseForTest(t)
	now := time.Now().UTC()
	otro := entities.Prestador{ID: "8", OwnerID: "3", Nombre: "Luces Sur", Rubro: "Iluminación"}

	d.prestadores.EXPECT().ListByOwner(gomock.Any(), "3").Return([]entities.Prestador{prestador7, otro}, nil)
	d.repo.EXPECT().ListByPrestador(gomock.Any(), "7").Return([]entities.Solicitud{
		{ID: "s-1", SolicitanteID: "1", PrestadorID: "7", CreatedAt: now.Add(-time.Hour)},
	}, nil)
	d.repo.EXPECT().ListByPrestador(gomock.Any(), "8").Return([]entities.Solicitud{
		{ID: "s-2", SolicitanteID: "1", PrestadorID: "8", CreatedAt: now},
	}, nil)
	d.usuarios.EXPECT().GetByID(gomock.Any(), "1").Return(postulante1, nil).Times(1)
	d.prestadores.EXPECT().ListByOwner(gomock.Any(), "1").Return([]entities.Prestador{
		{ID: "p-late", OwnerID: "1", CreatedAt: now},
		{ID: "p-early", OwnerID: "1", CreatedAt: now.Add(-48 * time.Hour)},
	}, nil).Times(1)

	res, err := uc.ListReceived(context.Background(), strangerC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].Solicitud.ID != "s-2" || res[1].Solicitud.ID != "s-1" {
		t.Fatalf("expected newest first, got %+v", res)
	}
	if res[0].Prestador.Nombre != "Luces Sur" || res[1].Prestador.Nombre != "Estudio Norte" {
		t.Fatalf("unexpected prestador join: %+v", res)
	}
	if res[0].SolicitantePrestadorID != "p-early" {
		t.Fatalf("expected the requester's first profile, got %q", res[0].SolicitantePrestadorID)
	}
	if res[0].Solicitante.Nombre != "Ana" {
		t.Fatalf("unexpected requester: %+v", res[0].Solicitante)
	}
}

func TestSolicitudUseCase_ListSent(t *testing.T) {
	uc, d := newSolicitudUseCaseForTest(t)
	now := time.Now().UTC()
	d.repo.EXPECT().ListBySolicitante(gomock.Any(), "1").Return([]entities.Solicitud{
		{ID: "s-1", SolicitanteID: "1", PrestadorID: "7", CreatedAt: now.Add(-time.Hour)},
		{ID: "s-2", SolicitanteID: "1", PrestadorID: "7", CreatedAt: now},
	}, nil)
	d.prestadores.EXPECT().GetByID(gomock.Any(), "7").Return(prestador7, nil).Times(1)

	res, err := uc.ListSent(context.Background(), applicantA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].Solicitud.ID != "s-2" {
		t.Fatalf("expected newest first, got %+v", res)
	}
	if res[1].Prestador.Rubro != "Sonido" {
		t.Fatalf("unexpected prestador join: %+v", res[1].Prestador)
	}
}

func TestSolicitudUseCase_ListRequiresIdentity(t *testing.T) {
	uc, _ := newSolicitudUseCaseForTest(t)
	if _, err := uc.ListReceived(context.Background(), entities.Actor{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.ListSent(context.Background(), entities.Actor{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
