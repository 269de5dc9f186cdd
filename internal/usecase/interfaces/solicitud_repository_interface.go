package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// ISolicitudRepository persists contact requests.
//
// The store must enforce uniqueness of (solicitante_id, prestador_id).
type ISolicitudRepository interface {
	Create(ctx context.Context, s entities.Solicitud) (entities.Solicitud, error)
	GetByID(ctx context.Context, id string) (entities.Solicitud, error)
	FindBySolicitanteAndPrestador(ctx context.Context, solicitanteID, prestadorID string) (entities.Solicitud, error)
	ListBySolicitante(ctx context.Context, solicitanteID string) ([]entities.Solicitud, error)
	ListByPrestador(ctx context.Context, prestadorID string) ([]entities.Solicitud, error)
	UpdateEstado(ctx context.Context, id string, estado entities.SolicitudEstado) (updated entities.Solicitud, changed bool, err error)
}
