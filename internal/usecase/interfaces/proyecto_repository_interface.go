package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// IProyectoRepository persists Proyecto and its Puestos.
//
// Lookups return a zero entity (empty ID) and a nil error when the record
// does not exist.
type IProyectoRepository interface {
	Create(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error)
	GetByID(ctx context.Context, id string) (entities.Proyecto, error)
	List(ctx context.Context) ([]entities.Proyecto, error)
	Update(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error)
	// Delete removes the project together with its puestos and their postulaciones.
	Delete(ctx context.Context, id string) error

	GetPuestoByID(ctx context.Context, id string) (entities.Puesto, error)
	ListPuestos(ctx context.Context, proyectoID string) ([]entities.Puesto, error)
}
