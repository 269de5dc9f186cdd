package usecase

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PrestadorInput struct {
	TipoPerfil  string
	Nombre      string
	Rubro       string
	Descripcion string
	Email       string
	Telefono    string
	Web         string
	Ciudad      string
}

type IPrestadorUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in PrestadorInput) (entities.Prestador, error)
	Get(ctx context.Context, id string) (entities.Prestador, error)
	ListMine(ctx context.Context, actor entities.Actor) ([]entities.Prestador, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type PrestadorUseCase struct {
	repo   interfaces.IPrestadorRepository
	policy Policy
}

var _ IPrestadorUseCase = (*PrestadorUseCase)(nil)

func NewPrestadorUseCase(repo interfaces.IPrestadorRepository, policy Policy) *PrestadorUseCase {
	return &PrestadorUseCase{repo: repo, policy: policy}
}

func (u *PrestadorUseCase) Create(ctx context.Context, actor entities.Actor, in PrestadorInput) (entities.Prestador, error) {
	if actor.UserID == "" {
		return entities.Prestador{}, ErrForbidden
	}
	p := entities.Prestador{
		TipoPerfil:  strings.TrimSpace(in.TipoPerfil),
		Nombre:      strings.TrimSpace(in.Nombre),
		Rubro:       strings.TrimSpace(in.Rubro),
		Descripcion: strings.TrimSpace(in.Descripcion),
		Email:       strings.TrimSpace(in.Email),
		Telefono:    strings.TrimSpace(in.Telefono),
		Web:         strings.TrimSpace(in.Web),
		Ciudad:      strings.TrimSpace(in.Ciudad),
	}
	if p.TipoPerfil == "" || p.Nombre == "" || p.Rubro == "" {
		return entities.Prestador{}, ErrInvalidPrestador
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.OwnerID = actor.UserID
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *PrestadorUseCase) Get(ctx context.Context, id string) (entities.Prestador, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Prestador{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Prestador{}, err
	}
	if p.ID == "" {
		return entities.Prestador{}, ErrPrestadorNotFound
	}
	return p, nil
}

func (u *PrestadorUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]entities.Prestador, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	items, err := u.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	newestFirst(items, func(p entities.Prestador) time.Time { return p.CreatedAt })
	return items, nil
}

func (u *PrestadorUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	p, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if !u.policy.CanManageProvider(actor, p) {
		return ErrForbidden
	}
	return u.repo.Delete(ctx, p.ID)
}
