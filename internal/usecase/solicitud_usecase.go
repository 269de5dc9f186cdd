package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ISolicitudUseCase is the contact-request workflow between users and
// prestador profiles.
type ISolicitudUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, prestadorID string) (entities.Solicitud, error)
	ListReceived(ctx context.Context, actor entities.Actor) ([]SolicitudRecibida, error)
	ListSent(ctx context.Context, actor entities.Actor) ([]SolicitudEnviada, error)
	Decide(ctx context.Context, actor entities.Actor, solicitudID, estado string) (entities.Solicitud, error)
}

type SolicitudUseCase struct {
	repo        interfaces.ISolicitudRepository
	prestadores interfaces.IPrestadorRepository
	usuarios    interfaces.IUsuarioRepository
	notifier    *Notifier
	policy      Policy
	metrics     interfaces.IMetricsRecorder
}

var _ ISolicitudUseCase = (*SolicitudUseCase)(nil)

func NewSolicitudUseCase(
	repo interfaces.ISolicitudRepository,
	prestadores interfaces.IPrestadorRepository,
	usuarios interfaces.IUsuarioRepository,
	notifier *Notifier,
	policy Policy,
	metrics interfaces.IMetricsRecorder,
) *SolicitudUseCase {
	return &SolicitudUseCase{
		repo:        repo,
		prestadores: prestadores,
		usuarios:    usuarios,
		notifier:    notifier,
		policy:      policy,
		metrics:     metrics,
	}
}

// Submit creates a Pendiente request. Any earlier request for the same
// prestador, whatever its estado, blocks a new one.
func (u *SolicitudUseCase) Submit(ctx context.Context, actor entities.Actor, prestadorID string) (entities.Solicitud, error) {
	prestadorID = strings.TrimSpace(prestadorID)
	if prestadorID == "" {
		return entities.Solicitud{}, ErrInvalidID
	}

	prestador, err := u.prestadores.GetByID(ctx, prestadorID)
	if err != nil {
		return entities.Solicitud{}, err
	}
	if prestador.ID == "" {
		return entities.Solicitud{}, ErrPrestadorNotFound
	}
	if !u.policy.CanRequestContact(actor, prestador) {
		return entities.Solicitud{}, ErrForbidden
	}

	if existing, err := u.repo.FindBySolicitanteAndPrestador(ctx, actor.UserID, prestador.ID); err != nil {
		return entities.Solicitud{}, err
	} else if existing.ID != "" {
		return entities.Solicitud{}, ErrSolicitudDuplicada
	}

	now := time.Now().UTC()
	s := entities.Solicitud{
		ID:            uuid.NewString(),
		SolicitanteID: actor.UserID,
		PrestadorID:   prestador.ID,
		Estado:        entities.SolicitudPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Solicitud{}, ErrSolicitudDuplicada
		}
		return entities.Solicitud{}, err
	}
	log.Printf("[solicitud][usecase] created solicitud_id=%s prestador_id=%s", created.ID, prestador.ID)
	u.observe(created.Estado)

	nombre := "Un usuario"
	if solicitante, err := u.usuarios.GetByID(ctx, actor.UserID); err == nil && strings.TrimSpace(solicitante.Nombre) != "" {
		nombre = solicitante.Nombre
	}
	u.notifier.send(ctx, "solicitud", notice{
		destinatarioID: prestador.OwnerID,
		titulo:         "Nueva solicitud de contacto",
		mensaje:        fmt.Sprintf("%s quiere contactar a tu perfil %s.", nombre, prestador.Nombre),
		link:           link("/solicitudes"),
	})
	return created, nil
}

func (u *SolicitudUseCase) ListReceived(ctx context.Context, actor entities.Actor) ([]SolicitudRecibida, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	propios, err := u.prestadores.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	solicitantes := map[string]entities.Usuario{}
	perfiles := map[string]string{}
	out := []SolicitudRecibida{}
	for _, prestador := range propios {
		items, err := u.repo.ListByPrestador(ctx, prestador.ID)
		if err != nil {
			return nil, err
		}
		for _, s := range items {
			solicitante, ok := solicitantes[s.SolicitanteID]
			if !ok {
				if solicitante, err = u.usuarios.GetByID(ctx, s.SolicitanteID); err != nil {
					return nil, err
				}
				solicitantes[s.SolicitanteID] = solicitante
			}
			perfilID, ok := perfiles[s.SolicitanteID]
			if !ok {
				if perfilID, err = u.primerPerfil(ctx, s.SolicitanteID); err != nil {
					return nil, err
				}
				perfiles[s.SolicitanteID] = perfilID
			}
			out = append(out, SolicitudRecibida{
				Solicitud:              s,
				Prestador:              resumenPrestador(prestador),
				Solicitante:            resumenUsuario(solicitante),
				SolicitantePrestadorID: perfilID,
			})
		}
	}
	newestFirst(out, func(r SolicitudRecibida) time.Time { return r.Solicitud.CreatedAt })
	return out, nil
}

func (u *SolicitudUseCase) ListSent(ctx context.Context, actor entities.Actor) ([]SolicitudEnviada, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	items, err := u.repo.ListBySolicitante(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	prestadores := map[string]entities.Prestador{}
	out := make([]SolicitudEnviada, 0, len(items))
	for _, s := range items {
		prestador, ok := prestadores[s.PrestadorID]
		if !ok {
			if prestador, err = u.prestadores.GetByID(ctx, s.PrestadorID); err != nil {
				return nil, err
			}
			prestadores[s.PrestadorID] = prestador
		}
		out = append(out, SolicitudEnviada{Solicitud: s, Prestador: resumenPrestador(prestador)})
	}
	newestFirst(out, func(e SolicitudEnviada) time.Time { return e.Solicitud.CreatedAt })
	return out, nil
}

// Decide follows the same check order and idempotence rule as
// PostulacionUseCase.Decide.
func (u *SolicitudUseCase) Decide(ctx context.Context, actor entities.Actor, solicitudID, estado string) (entities.Solicitud, error) {
	solicitudID = strings.TrimSpace(solicitudID)
	if solicitudID == "" {
		return entities.Solicitud{}, ErrInvalidID
	}

	current, err := u.repo.GetByID(ctx, solicitudID)
	if err != nil {
		return entities.Solicitud{}, err
	}
	if current.ID == "" {
		return entities.Solicitud{}, ErrSolicitudNotFound
	}
	prestador, err := u.prestadores.GetByID(ctx, current.PrestadorID)
	if err != nil {
		return entities.Solicitud{}, err
	}
	if prestador.ID == "" {
		return entities.Solicitud{}, ErrPrestadorNotFound
	}
	if !u.policy.CanManageProvider(actor, prestador) {
		log.Printf("[solicitud][usecase] decide denied user_id=%s solicitud_id=%s", actor.UserID, current.ID)
		return entities.Solicitud{}, ErrForbidden
	}
	nuevo, ok := entities.ParseSolicitudDecision(estado)
	if !ok {
		return entities.Solicitud{}, ErrInvalidEstado
	}
	if current.Estado == nuevo {
		return current, nil
	}

	updated, changed, err := u.repo.UpdateEstado(ctx, current.ID, nuevo)
	if err != nil {
		return entities.Solicitud{}, err
	}
	if updated.ID == "" {
		return entities.Solicitud{}, ErrSolicitudNotFound
	}
	if !changed {
		return updated, nil
	}
	log.Printf("[solicitud][usecase] decided solicitud_id=%s from=%s to=%s by=%s", updated.ID, current.Estado, updated.Estado, actor.UserID)
	u.observe(updated.Estado)

	nt := notice{destinatarioID: updated.SolicitanteID}
	switch updated.Estado {
	case entities.SolicitudAprobada:
		nt.titulo = "Solicitud aprobada"
		nt.mensaje = fmt.Sprintf("%s aprobó tu solicitud de contacto.", prestador.Nombre)
		nt.link = link(fmt.Sprintf("/prestadores/%s", prestador.ID))
	default:
		nt.titulo = "Solicitud de contacto actualizada"
		nt.mensaje = fmt.Sprintf("%s no puede atender tu solicitud por el momento.", prestador.Nombre)
	}
	u.notifier.send(ctx, "solicitud", nt)
	return updated, nil
}

func (u *SolicitudUseCase) primerPerfil(ctx context.Context, userID string) (string, error) {
	perfiles, err := u.prestadores.ListByOwner(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(perfiles) == 0 {
		return "", nil
	}
	primero := perfiles[0]
	for _, p := range perfiles[1:] {
		if p.CreatedAt.Before(primero.CreatedAt) {
			primero = p
		}
	}
	return primero.ID, nil
}

func (u *SolicitudUseCase) observe(estado entities.SolicitudEstado) {
	if u.metrics != nil {
		u.metrics.ObserveTransition("solicitud", string(estado))
	}
}
