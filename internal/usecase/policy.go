package usecase

import "mercado_audiovisual/internal/domain/entities"

// Policy holds the ownership and role rules shared by the workflows. Every
// predicate is pure; callers turn a false result into ErrForbidden.
type Policy struct {
	// AllowSelfApplication lets owners apply to their own puestos and
	// request contact with their own prestador profiles.
	AllowSelfApplication bool
}

func NewPolicy(allowSelfApplication bool) Policy {
	return Policy{AllowSelfApplication: allowSelfApplication}
}

func (p Policy) CanManageProject(actor entities.Actor, proyecto entities.Proyecto) bool {
	if actor.UserID == "" {
		return false
	}
	return actor.IsAdmin() || actor.UserID == proyecto.OwnerID
}

func (p Policy) CanManageProvider(actor entities.Actor, prestador entities.Prestador) bool {
	if actor.UserID == "" {
		return false
	}
	return actor.IsAdmin() || actor.UserID == prestador.OwnerID
}

// CanApply reports whether actor may apply to a puesto of proyecto.
func (p Policy) CanApply(actor entities.Actor, proyecto entities.Proyecto) bool {
	if actor.UserID == "" {
		return false
	}
	return p.AllowSelfApplication || actor.UserID != proyecto.OwnerID
}

// CanRequestContact mirrors CanApply for prestador profiles.
func (p Policy) CanRequestContact(actor entities.Actor, prestador entities.Prestador) bool {
	if actor.UserID == "" {
		return false
	}
	return p.AllowSelfApplication || actor.UserID != prestador.OwnerID
}
