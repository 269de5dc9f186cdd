package interfaces

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
)

// IUsuarioRepository is a read-only view over the user directory, used to
// resolve identities for joins and notification recipients.
type IUsuarioRepository interface {
	GetByID(ctx context.Context, id string) (entities.Usuario, error)
}
