package postgres

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const postulacionColumns = `id, postulante_id, puesto_id, proyecto_id, mensaje, estado, created_at, updated_at`

type postulacionRow struct {
	ID           string    `db:"id"`
	PostulanteID string    `db:"postulante_id"`
	PuestoID     string    `db:"puesto_id"`
	ProyectoID   string    `db:"proyecto_id"`
	Mensaje      string    `db:"mensaje"`
	Estado       string    `db:"estado"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r postulacionRow) entity() entities.Postulacion {
	return entities.Postulacion{
		ID:           r.ID,
		PostulanteID: r.PostulanteID,
		PuestoID:     r.PuestoID,
		ProyectoID:   r.ProyectoID,
		Mensaje:      r.Mensaje,
		Estado:       entities.PostulacionEstado(r.Estado),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type PostulacionRepository struct {
	db DB
}

var _ interfaces.IPostulacionRepository = (*PostulacionRepository)(nil)

func NewPostulacionRepository(db DB) *PostulacionRepository {
	return &PostulacionRepository{db: db}
}

func (r *PostulacionRepository) Create(ctx context.Context, p entities.Postulacion) (entities.Postulacion, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO postulaciones (`+postulacionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.PostulanteID, p.PuestoID, p.ProyectoID, p.Mensaje, string(p.Estado), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return entities.Postulacion{}, mapWriteError(err)
	}
	return p, nil
}

func (r *PostulacionRepository) GetByID(ctx context.Context, id string) (entities.Postulacion, error) {
	row, err := one[postulacionRow](r.db.Query(ctx, `SELECT `+postulacionColumns+` FROM postulaciones WHERE id = $1`, id))
	if err != nil {
		return entities.Postulacion{}, err
	}
	return row.entity(), nil
}

func (r *PostulacionRepository) FindByPostulanteAndPuesto(ctx context.Context, postulanteID, puestoID string) (entities.Postulacion, error) {
	row, err := one[postulacionRow](r.db.Query(ctx, `SELECT `+postulacionColumns+`
		FROM postulaciones WHERE postulante_id = $1 AND puesto_id = $2`, postulanteID, puestoID))
	if err != nil {
		return entities.Postulacion{}, err
	}
	return row.entity(), nil
}

func (r *PostulacionRepository) ListByPostulante(ctx context.Context, postulanteID string) ([]entities.Postulacion, error) {
	return r.list(ctx, `SELECT `+postulacionColumns+` FROM postulaciones WHERE postulante_id = $1 ORDER BY created_at DESC`, postulanteID)
}

func (r *PostulacionRepository) ListByProyecto(ctx context.Context, proyectoID string) ([]entities.Postulacion, error) {
	return r.list(ctx, `SELECT `+postulacionColumns+` FROM postulaciones WHERE proyecto_id = $1 ORDER BY created_at DESC`, proyectoID)
}

func (r *PostulacionRepository) list(ctx context.Context, sql string, arg string) ([]entities.Postulacion, error) {
	rows, err := all[postulacionRow](r.db.Query(ctx, sql, arg))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Postulacion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *PostulacionRepository) UpdateEstado(ctx context.Context, id string, estado entities.PostulacionEstado) (entities.Postulacion, bool, error) {
	row, err := one[postulacionRow](r.db.Query(ctx, `UPDATE postulaciones SET estado = $2, updated_at = now()
		WHERE id = $1 AND estado <> $2
		RETURNING `+postulacionColumns, id, string(estado)))
	if err != nil {
		return entities.Postulacion{}, false, err
	}
	if row.ID != "" {
		return row.entity(), true, nil
	}
	current, err := r.GetByID(ctx, id)
	return current, false, err
}
