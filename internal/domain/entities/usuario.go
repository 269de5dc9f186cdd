package entities

import (
	"strings"
	"time"
)

// Rol is the role carried by the bearer identity.
type Rol string

const (
	RolAdmin Rol = "admin"
	RolUser  Rol = "user"
)

// ParseRol normalizes a role claim. Unknown values fall back to RolUser so a
// malformed claim can never escalate privileges.
func ParseRol(v string) Rol {
	if Rol(strings.ToLower(strings.TrimSpace(v))) == RolAdmin {
		return RolAdmin
	}
	return RolUser
}

// Usuario is a marketplace member. Credentials live outside this service;
// only the attributes used for joins are stored here.
type Usuario struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       Rol       `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Rol    Rol
}

func (a Actor) IsAdmin() bool {
	return a.Rol == RolAdmin
}
