package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// IPrestadorRepository persists Prestador profiles.
type IPrestadorRepository interface {
	Create(ctx context.Context, p entities.Prestador) (entities.Prestador, error)
	GetByID(ctx context.Context, id string) (entities.Prestador, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Prestador, error)
	// Delete removes the profile together with the solicitudes it received.
	Delete(ctx context.Context, id string) error
}
