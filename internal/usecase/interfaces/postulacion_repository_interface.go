package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// IPostulacionRepository persists applications.
//
// The store must enforce uniqueness of (postulante_id, puesto_id); Create
// returns ErrDuplicateKey when it is violated.
type IPostulacionRepository interface {
	Create(ctx context.Context, p entities.Postulacion) (entities.Postulacion, error)
	GetByID(ctx context.Context, id string) (entities.Postulacion, error)
	FindByPostulanteAndPuesto(ctx context.Context, postulanteID, puestoID string) (entities.Postulacion, error)
	ListByPostulante(ctx context.Context, postulanteID string) ([]entities.Postulacion, error)
	ListByProyecto(ctx context.Context, proyectoID string) ([]entities.Postulacion, error)
	// UpdateEstado sets the estado only when it differs from the stored one.
	// changed reports whether a write happened; a missing record yields a
	// zero Postulacion.
	UpdateEstado(ctx context.Context, id string, estado entities.PostulacionEstado) (updated entities.Postulacion, changed bool, err error)
}
