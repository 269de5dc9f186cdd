package usecase

import (
	"context"
	"log"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPuestos bounds the puestos of a project so that the project and all
// of its puestos fit in a single DynamoDB transaction.
const MaxPuestos = 99

// ProyectoInput carries the owner-editable attributes of a project.
type ProyectoInput struct {
	Titulo       string
	Tipo         string
	Ciudad       string
	Descripcion  string
	Foto         string
	Estado       string
	EsEstudiante bool
	EsPago       bool
	Puestos      []PuestoInput
}

type PuestoInput struct {
	Nombre      string
	Descripcion string
}

type IProyectoUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in ProyectoInput) (entities.Proyecto, error)
	Get(ctx context.Context, id string) (entities.Proyecto, error)
	List(ctx context.Context) ([]entities.Proyecto, error)
	Update(ctx context.Context, actor entities.Actor, id string, in ProyectoInput) (entities.Proyecto, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type ProyectoUseCase struct {
	repo   interfaces.IProyectoRepository
	policy Policy
}

var _ IProyectoUseCase = (*ProyectoUseCase)(nil)

func NewProyectoUseCase(repo interfaces.IProyectoRepository, policy Policy) *ProyectoUseCase {
	return &ProyectoUseCase{repo: repo, policy: policy}
}

func (u *ProyectoUseCase) Create(ctx context.Context, actor entities.Actor, in ProyectoInput) (entities.Proyecto, error) {
	if actor.UserID == "" {
		return entities.Proyecto{}, ErrForbidden
	}
	in = normalizeProyectoInput(in)
	if in.Titulo == "" || in.Tipo == "" || in.Ciudad == "" || len(in.Puestos) == 0 || len(in.Puestos) > MaxPuestos {
		return entities.Proyecto{}, ErrInvalidProyecto
	}
	if in.Estado == "" {
		in.Estado = entities.ProyectoEstadoAbierto
	}

	now := time.Now().UTC()
	p := entities.Proyecto{
		ID:           uuid.NewString(),
		OwnerID:      actor.UserID,
		Titulo:       in.Titulo,
		Tipo:         in.Tipo,
		Ciudad:       in.Ciudad,
		Descripcion:  in.Descripcion,
		Foto:         in.Foto,
		Estado:       in.Estado,
		EsEstudiante: in.EsEstudiante,
		EsPago:       in.EsPago,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, pi := range in.Puestos {
		if pi.Nombre == "" {
			return entities.Proyecto{}, ErrInvalidProyecto
		}
		p.Puestos = append(p.Puestos, entities.Puesto{
			ID:          uuid.NewString(),
			ProyectoID:  p.ID,
			Nombre:      pi.Nombre,
			Descripcion: pi.Descripcion,
			CreatedAt:   now,
		})
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proyecto{}, err
	}
	log.Printf("[proyecto][usecase] created proyecto_id=%s owner_id=%s puestos=%d", created.ID, created.OwnerID, len(created.Puestos))
	return created, nil
}

func (u *ProyectoUseCase) Get(ctx context.Context, id string) (entities.Proyecto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proyecto{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proyecto{}, err
	}
	if p.ID == "" {
		return entities.Proyecto{}, ErrProyectoNotFound
	}
	puestos, err := u.repo.ListPuestos(ctx, p.ID)
	if err != nil {
		return entities.Proyecto{}, err
	}
	p.Puestos = puestos
	return p, nil
}

func (u *ProyectoUseCase) List(ctx context.Context) ([]entities.Proyecto, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	newestFirst(items, func(p entities.Proyecto) time.Time { return p.CreatedAt })
	return items, nil
}

// Update rewrites the project attributes. Puestos are left untouched so
// existing postulaciones keep pointing at valid positions.
func (u *ProyectoUseCase) Update(ctx context.Context, actor entities.Actor, id string, in ProyectoInput) (entities.Proyecto, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Proyecto{}, err
	}
	if !u.policy.CanManageProject(actor, current) {
		return entities.Proyecto{}, ErrForbidden
	}
	in = normalizeProyectoInput(in)
	if in.Titulo == "" || in.Tipo == "" || in.Ciudad == "" {
		return entities.Proyecto{}, ErrInvalidProyecto
	}
	if in.Estado == "" {
		in.Estado = current.Estado
	}

	current.Titulo = in.Titulo
	current.Tipo = in.Tipo
	current.Ciudad = in.Ciudad
	current.Descripcion = in.Descripcion
	current.Foto = in.Foto
	current.Estado = in.Estado
	current.EsEstudiante = in.EsEstudiante
	current.EsPago = in.EsPago
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Proyecto{}, err
	}
	if updated.ID == "" {
		return entities.Proyecto{}, ErrProyectoNotFound
	}
	updated.Puestos = current.Puestos
	return updated, nil
}

func (u *ProyectoUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrProyectoNotFound
	}
	if !u.policy.CanManageProject(actor, current) {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		return err
	}
	log.Printf("[proyecto][usecase] deleted proyecto_id=%s by=%s", current.ID, actor.UserID)
	return nil
}

func normalizeProyectoInput(in ProyectoInput) ProyectoInput {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.Tipo = strings.TrimSpace(in.Tipo)
	in.Ciudad = strings.TrimSpace(in.Ciudad)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	in.Foto = strings.TrimSpace(in.Foto)
	in.Estado = strings.TrimSpace(in.Estado)
	for i := range in.Puestos {
		in.Puestos[i].Nombre = strings.TrimSpace(in.Puestos[i].Nombre)
		in.Puestos[i].Descripcion = strings.TrimSpace(in.Puestos[i].Descripcion)
	}
	return in
}
