package postgres

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const prestadorColumns = `id, owner_id, tipo_perfil, nombre, rubro, descripcion, email, telefono, web, ciudad, created_at, updated_at`

type prestadorRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	TipoPerfil  string    `db:"tipo_perfil"`
	Nombre      string    `db:"nombre"`
	Rubro       string    `db:"rubro"`
	Descripcion string    `db:"descripcion"`
	Email       string    `db:"email"`
	Telefono    string    `db:"telefono"`
	Web         string    `db:"web"`
	Ciudad      string    `db:"ciudad"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r prestadorRow) entity() entities.Prestador {
	return entities.Prestador{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		TipoPerfil:  r.TipoPerfil,
		Nombre:      r.Nombre,
		Rubro:       r.Rubro,
		Descripcion: r.Descripcion,
		Email:       r.Email,
		Telefono:    r.Telefono,
		Web:         r.Web,
		Ciudad:      r.Ciudad,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type PrestadorRepository struct {
	db DB
}

var _ interfaces.IPrestadorRepository = (*PrestadorRepository)(nil)

func NewPrestadorRepository(db DB) *PrestadorRepository {
	return &PrestadorRepository{db: db}
}

func (r *PrestadorRepository) Create(ctx context.Context, p entities.Prestador) (entities.Prestador, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO prestadores (`+prestadorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.OwnerID, p.TipoPerfil, p.Nombre, p.Rubro, p.Descripcion, p.Email, p.Telefono, p.Web, p.Ciudad, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return entities.Prestador{}, mapWriteError(err)
	}
	return p, nil
}

func (r *PrestadorRepository) GetByID(ctx context.Context, id string) (entities.Prestador, error) {
	row, err := one[prestadorRow](r.db.Query(ctx, `SELECT `+prestadorColumns+` FROM prestadores WHERE id = $1`, id))
	if err != nil {
		return entities.Prestador{}, err
	}
	return row.entity(), nil
}

func (r *PrestadorRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Prestador, error) {
	rows, err := all[prestadorRow](r.db.Query(ctx, `SELECT `+prestadorColumns+`
		FROM prestadores WHERE owner_id = $1 ORDER BY created_at`, ownerID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Prestador, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

// Delete relies on ON DELETE CASCADE for solicitudes.
func (r *PrestadorRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM prestadores WHERE id = $1`, id)
	return err
}
