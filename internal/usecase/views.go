package usecase

import (
	"cmp"
	"mercado_audiovisual/internal/domain/entities"
	"slices"
	"time"
)

// Read models returned by the listing operations. They join a workflow
// record with the summaries the presentation layer renders next to it.

type ProyectoResumen struct {
	ID     string
	Titulo string
	Tipo   string
	Ciudad string
	Foto   string
}

type UsuarioResumen struct {
	ID     string
	Nombre string
	Email  string
}

type PrestadorResumen struct {
	ID     string
	Nombre string
	Rubro  string
	Ciudad string
}

// PostulacionDetalle is an application as seen by its applicant.
type PostulacionDetalle struct {
	Postulacion  entities.Postulacion
	PuestoNombre string
	Proyecto     ProyectoResumen
}

// PostulacionCandidato is an application as seen by the project owner.
type PostulacionCandidato struct {
	Postulacion  entities.Postulacion
	PuestoNombre string
	Postulante   UsuarioResumen
}

// SolicitudRecibida is a contact request as seen by the prestador owner.
// SolicitantePrestadorID is set when the requester owns a prestador profile
// too, so the UI can link to it.
type SolicitudRecibida struct {
	Solicitud              entities.Solicitud
	Prestador              PrestadorResumen
	Solicitante            UsuarioResumen
	SolicitantePrestadorID string
}

// SolicitudEnviada is a contact request as seen by its requester.
type SolicitudEnviada struct {
	Solicitud entities.Solicitud
	Prestador PrestadorResumen
}

func resumenProyecto(p entities.Proyecto) ProyectoResumen {
	return ProyectoResumen{ID: p.ID, Titulo: p.Titulo, Tipo: p.Tipo, Ciudad: p.Ciudad, Foto: p.Foto}
}

func resumenUsuario(u entities.Usuario) UsuarioResumen {
	return UsuarioResumen{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}

func resumenPrestador(p entities.Prestador) PrestadorResumen {
	return PrestadorResumen{ID: p.ID, Nombre: p.Nombre, Rubro: p.Rubro, Ciudad: p.Ciudad}
}

// newestFirst orders listings by creation time, most recent first.
func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(createdAt(b).UnixNano(), createdAt(a).UnixNano())
	})
}
