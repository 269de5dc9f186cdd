package postgres

import (
	"context"
	"fmt"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const proyectoColumns = `id, owner_id, titulo, tipo, ciudad, descripcion, foto, estado, es_estudiante, es_pago, created_at, updated_at`

type proyectoRow struct {
	ID           string    `db:"id"`
	OwnerID      string    `db:"owner_id"`
	Titulo       string    `db:"titulo"`
	Tipo         string    `db:"tipo"`
	Ciudad       string    `db:"ciudad"`
	Descripcion  string    `db:"descripcion"`
	Foto         string    `db:"foto"`
	Estado       string    `db:"estado"`
	EsEstudiante bool      `db:"es_estudiante"`
	EsPago       bool      `db:"es_pago"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r proyectoRow) entity() entities.Proyecto {
	return entities.Proyecto{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Titulo:       r.Titulo,
		Tipo:         r.Tipo,
		Ciudad:       r.Ciudad,
		Descripcion:  r.Descripcion,
		Foto:         r.Foto,
		Estado:       r.Estado,
		EsEstudiante: r.EsEstudiante,
		EsPago:       r.EsPago,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type puestoRow struct {
	ID          string    `db:"id"`
	ProyectoID  string    `db:"proyecto_id"`
	Nombre      string    `db:"nombre"`
	Descripcion string    `db:"descripcion"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r puestoRow) entity() entities.Puesto {
	return entities.Puesto{
		ID:          r.ID,
		ProyectoID:  r.ProyectoID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		CreatedAt:   r.CreatedAt,
	}
}

type ProyectoRepository struct {
	db DB
}

var _ interfaces.IProyectoRepository = (*ProyectoRepository)(nil)

func NewProyectoRepository(db DB) *ProyectoRepository {
	return &ProyectoRepository{db: db}
}

func (r *ProyectoRepository) Create(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entities.Proyecto{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO proyectos (`+proyectoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.OwnerID, p.Titulo, p.Tipo, p.Ciudad, p.Descripcion, p.Foto, p.Estado, p.EsEstudiante, p.EsPago, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return entities.Proyecto{}, fmt.Errorf("insert proyecto: %w", mapWriteError(err))
	}
	for _, pu := range p.Puestos {
		_, err = tx.Exec(ctx, `INSERT INTO puestos (id, proyecto_id, nombre, descripcion, created_at) VALUES ($1, $2, $3, $4, $5)`,
			pu.ID, p.ID, pu.Nombre, pu.Descripcion, pu.CreatedAt)
		if err != nil {
			return entities.Proyecto{}, fmt.Errorf("insert puesto: %w", mapWriteError(err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Proyecto{}, err
	}
	return p, nil
}

func (r *ProyectoRepository) GetByID(ctx context.Context, id string) (entities.Proyecto, error) {
	row, err := one[proyectoRow](r.db.Query(ctx, `SELECT `+proyectoColumns+` FROM proyectos WHERE id = $1`, id))
	if err != nil {
		return entities.Proyecto{}, err
	}
	return row.entity(), nil
}

func (r *ProyectoRepository) List(ctx context.Context) ([]entities.Proyecto, error) {
	rows, err := all[proyectoRow](r.db.Query(ctx, `SELECT `+proyectoColumns+` FROM proyectos ORDER BY created_at DESC`))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Proyecto, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

func (r *ProyectoRepository) Update(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	row, err := one[proyectoRow](r.db.Query(ctx, `UPDATE proyectos
		SET titulo = $2, tipo = $3, ciudad = $4, descripcion = $5, foto = $6, estado = $7,
		    es_estudiante = $8, es_pago = $9, updated_at = $10
		WHERE id = $1
		RETURNING `+proyectoColumns,
		p.ID, p.Titulo, p.Tipo, p.Ciudad, p.Descripcion, p.Foto, p.Estado, p.EsEstudiante, p.EsPago, p.UpdatedAt))
	if err != nil {
		return entities.Proyecto{}, err
	}
	return row.entity(), nil
}

// Delete relies on ON DELETE CASCADE for puestos and postulaciones.
func (r *ProyectoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
	return err
}

func (r *ProyectoRepository) GetPuestoByID(ctx context.Context, id string) (entities.Puesto, error) {
	row, err := one[puestoRow](r.db.Query(ctx, `SELECT id, proyecto_id, nombre, descripcion, created_at FROM puestos WHERE id = $1`, id))
	if err != nil {
		return entities.Puesto{}, err
	}
	return row.entity(), nil
}

func (r *ProyectoRepository) ListPuestos(ctx context.Context, proyectoID string) ([]entities.Puesto, error) {
	rows, err := all[puestoRow](r.db.Query(ctx, `SELECT id, proyecto_id, nombre, descripcion, created_at
		FROM puestos WHERE proyecto_id = $1 ORDER BY created_at, id`, proyectoID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Puesto, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}
