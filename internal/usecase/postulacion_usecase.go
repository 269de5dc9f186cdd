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
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxMensajeLen = 2000

// IPostulacionUseCase is the application workflow: users apply to puestos,
// project owners (or admins) accept or reject them.
type IPostulacionUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, puestoID, mensaje string) (entities.Postulacion, error)
	ListMine(ctx context.Context, actor entities.Actor) ([]PostulacionDetalle, error)
	ListForProject(ctx context.Context, actor entities.Actor, proyectoID string) ([]PostulacionCandidato, error)
	Decide(ctx context.Context, actor entities.Actor, postulacionID, estado string) (entities.Postulacion, error)
}

type PostulacionUseCase struct {
	repo      interfaces.IPostulacionRepository
	proyectos interfaces.IProyectoRepository
	usuarios  interfaces.IUsuarioRepository
	notifier  *Notifier
	policy    Policy
	metrics   interfaces.IMetricsRecorder
}

var _ IPostulacionUseCase = (*PostulacionUseCase)(nil)

func NewPostulacionUseCase(
	repo interfaces.IPostulacionRepository,
	proyectos interfaces.IProyectoRepository,
	usuarios interfaces.IUsuarioRepository,
	notifier *Notifier,
	policy Policy,
	metrics interfaces.IMetricsRecorder,
) *PostulacionUseCase {
	return &PostulacionUseCase{
		repo:      repo,
		proyectos: proyectos,
		usuarios:  usuarios,
		notifier:  notifier,
		policy:    policy,
		metrics:   metrics,
	}
}

func (u *PostulacionUseCase) Submit(ctx context.Context, actor entities.Actor, puestoID, mensaje string) (entities.Postulacion, error) {
	puestoID = strings.TrimSpace(puestoID)
	mensaje = strings.TrimSpace(mensaje)
	if puestoID == "" {
		return entities.Postulacion{}, ErrInvalidID
	}
	if utf8.RuneCountInString(mensaje) > maxMensajeLen {
		return entities.Postulacion{}, ErrInvalidMensaje
	}

	puesto, err := u.proyectos.GetPuestoByID(ctx, puestoID)
	if err != nil {
		return entities.Postulacion{}, err
	}
	if puesto.ID == "" {
		return entities.Postulacion{}, ErrPuestoNotFound
	}
	proyecto, err := u.proyectos.GetByID(ctx, puesto.ProyectoID)
	if err != nil {
		return entities.Postulacion{}, err
	}
	if proyecto.ID == "" {
		return entities.Postulacion{}, ErrPuestoNotFound
	}
	if !u.policy.CanApply(actor, proyecto) {
		log.Printf("[postulacion][usecase] self-application rejected user_id=%s proyecto_id=%s", actor.UserID, proyecto.ID)
		return entities.Postulacion{}, ErrForbidden
	}

	// Friendlier error for the common case; the store's uniqueness
	// constraint below is what actually guarantees a single application.
	if existing, err := u.repo.FindByPostulanteAndPuesto(ctx, actor.UserID, puesto.ID); err != nil {
		return entities.Postulacion{}, err
	} else if existing.ID != "" {
		return entities.Postulacion{}, ErrPostulacionDuplicada
	}

	now := time.Now().UTC()
	p := entities.Postulacion{
		ID:           uuid.NewString(),
		PostulanteID: actor.UserID,
		PuestoID:     puesto.ID,
		ProyectoID:   proyecto.ID,
		Mensaje:      mensaje,
		Estado:       entities.PostulacionPendiente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Postulacion{}, ErrPostulacionDuplicada
		}
		return entities.Postulacion{}, err
	}
	log.Printf("[postulacion][usecase] created postulacion_id=%s puesto_id=%s proyecto_id=%s", created.ID, puesto.ID, proyecto.ID)
	u.observe(created.Estado)

	u.notifier.send(ctx, "postulacion", notice{
		destinatarioID: proyecto.OwnerID,
		titulo:         "Nueva postulación",
		mensaje:        fmt.Sprintf("%s se postuló al puesto %s de %s.", u.nombreDe(ctx, actor.UserID), puesto.Nombre, proyecto.Titulo),
		link:           link(fmt.Sprintf("/proyectos/%s/candidatos", proyecto.ID)),
	})
	return created, nil
}

func (u *PostulacionUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]PostulacionDetalle, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	items, err := u.repo.ListByPostulante(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	proyectos := map[string]entities.Proyecto{}
	puestos := map[string]entities.Puesto{}
	out := make([]PostulacionDetalle, 0, len(items))
	for _, p := range items {
		proyecto, ok := proyectos[p.ProyectoID]
		if !ok {
			if proyecto, err = u.proyectos.GetByID(ctx, p.ProyectoID); err != nil {
				return nil, err
			}
			proyectos[p.ProyectoID] = proyecto
		}
		puesto, ok := puestos[p.PuestoID]
		if !ok {
			if puesto, err = u.proyectos.GetPuestoByID(ctx, p.PuestoID); err != nil {
				return nil, err
			}
			puestos[p.PuestoID] = puesto
		}
		out = append(out, PostulacionDetalle{
			Postulacion:  p,
			PuestoNombre: puesto.Nombre,
			Proyecto:     resumenProyecto(proyecto),
		})
	}
	newestFirst(out, func(d PostulacionDetalle) time.Time { return d.Postulacion.CreatedAt })
	return out, nil
}

func (u *PostulacionUseCase) ListForProject(ctx context.Context, actor entities.Actor, proyectoID string) ([]PostulacionCandidato, error) {
	proyectoID = strings.TrimSpace(proyectoID)
	if proyectoID == "" {
		return nil, ErrInvalidID
	}
	proyecto, err := u.proyectos.GetByID(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	if proyecto.ID == "" {
		return nil, ErrProyectoNotFound
	}
	if !u.policy.CanManageProject(actor, proyecto) {
		return nil, ErrForbidden
	}

	puestos, err := u.proyectos.ListPuestos(ctx, proyecto.ID)
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string, len(puestos))
	for _, p := range puestos {
		nombres[p.ID] = p.Nombre
	}

	items, err := u.repo.ListByProyecto(ctx, proyecto.ID)
	if err != nil {
		return nil, err
	}
	postulantes := map[string]entities.Usuario{}
	out := make([]PostulacionCandidato, 0, len(items))
	for _, p := range items {
		postulante, ok := postulantes[p.PostulanteID]
		if !ok {
			if postulante, err = u.usuarios.GetByID(ctx, p.PostulanteID); err != nil {
				return nil, err
			}
			postulantes[p.PostulanteID] = postulante
		}
		out = append(out, PostulacionCandidato{
			Postulacion:  p,
			PuestoNombre: nombres[p.PuestoID],
			Postulante:   resumenUsuario(postulante),
		})
	}
	newestFirst(out, func(c PostulacionCandidato) time.Time { return c.Postulacion.CreatedAt })
	return out, nil
}

// Decide sets the estado of an application. Ownership is checked before the
// estado is validated. Repeating the current estado is a successful no-op and
// does not notify the applicant again.
func (u *PostulacionUseCase) Decide(ctx context.Context, actor entities.Actor, postulacionID, estado string) (entities.Postulacion, error) {
	postulacionID = strings.TrimSpace(postulacionID)
	if postulacionID == "" {
		return entities.Postulacion{}, ErrInvalidID
	}

	current, err := u.repo.GetByID(ctx, postulacionID)
	if err != nil {
		return entities.Postulacion{}, err
	}
	if current.ID == "" {
		return entities.Postulacion{}, ErrPostulacionNotFound
	}
	proyecto, err := u.proyectos.GetByID(ctx, current.ProyectoID)
	if err != nil {
		return entities.Postulacion{}, err
	}
	if proyecto.ID == "" {
		return entities.Postulacion{}, ErrProyectoNotFound
	}
	if !u.policy.CanManageProject(actor, proyecto) {
		log.Printf("[postulacion][usecase] decide denied user_id=%s postulacion_id=%s", actor.UserID, current.ID)
		return entities.Postulacion{}, ErrForbidden
	}
	nuevo, ok := entities.ParsePostulacionDecision(estado)
	if !ok {
		return entities.Postulacion{}, ErrInvalidEstado
	}
	if current.Estado == nuevo {
		return current, nil
	}

	updated, changed, err := u.repo.UpdateEstado(ctx, current.ID, nuevo)
	if err != nil {
		return entities.Postulacion{}, err
	}
	if updated.ID == "" {
		return entities.Postulacion{}, ErrPostulacionNotFound
	}
	if !changed {
		// A concurrent identical decision already won.
		return updated, nil
	}
	log.Printf("[postulacion][usecase] decided postulacion_id=%s from=%s to=%s by=%s", updated.ID, current.Estado, updated.Estado, actor.UserID)
	u.observe(updated.Estado)

	nt := notice{destinatarioID: updated.PostulanteID}
	switch updated.Estado {
	case entities.PostulacionAceptada:
		nt.titulo = "¡Postulación aceptada!"
		nt.mensaje = fmt.Sprintf("Tu postulación en %s fue aceptada. El equipo de producción se pondrá en contacto.", proyecto.Titulo)
		nt.link = link(fmt.Sprintf("/proyectos/%s", proyecto.ID))
	default:
		nt.titulo = "Postulación actualizada"
		nt.mensaje = fmt.Sprintf("Tu postulación en %s no fue seleccionada esta vez.", proyecto.Titulo)
		nt.link = link("/postulaciones")
	}
	u.notifier.send(ctx, "postulacion", nt)
	return updated, nil
}

func (u *PostulacionUseCase) nombreDe(ctx context.Context, userID string) string {
	usuario, err := u.usuarios.GetByID(ctx, userID)
	if err != nil || strings.TrimSpace(usuario.Nombre) == "" {
		return "Un usuario"
	}
	return usuario.Nombre
}

func (u *PostulacionUseCase) observe(estado entities.PostulacionEstado) {
	if u.metrics != nil {
		u.metrics.ObserveTransition("postulacion", string(estado))
	}
}
