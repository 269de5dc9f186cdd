package postgres

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

type usuarioRow struct {
	ID        string    `db:"id"`
	Nombre    string    `db:"nombre"`
	Email     string    `db:"email"`
	Rol       string    `db:"rol"`
	CreatedAt time.Time `db:"created_at"`
}

type UsuarioRepository struct {
	db DB
}

var _ interfaces.IUsuarioRepository = (*UsuarioRepository)(nil)

func NewUsuarioRepository(db DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id string) (entities.Usuario, error) {
	row, err := one[usuarioRow](r.db.Query(ctx, `SELECT id, nombre, email, rol, created_at FROM usuarios WHERE id = $1`, id))
	if err != nil {
		return entities.Usuario{}, err
	}
	if row.ID == "" {
		return entities.Usuario{}, nil
	}
	return entities.Usuario{
		ID:        row.ID,
		Nombre:    row.Nombre,
		Email:     row.Email,
		Rol:       entities.ParseRol(row.Rol),
		CreatedAt: row.CreatedAt,
	}, nil
}
