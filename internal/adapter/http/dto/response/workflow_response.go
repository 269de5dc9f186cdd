package response

import (
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"time"
)

type PostulacionResponse struct {
	ID           string    `json:"id"`
	PostulanteID string    `json:"postulanteId"`
	PuestoID     string    `json:"puestoId"`
	ProyectoID   string    `json:"proyectoId"`
	Mensaje      string    `json:"mensaje"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromPostulacion(p entities.Postulacion) PostulacionResponse {
	return PostulacionResponse{
		ID:           p.ID,
		PostulanteID: p.PostulanteID,
		PuestoID:     p.PuestoID,
		ProyectoID:   p.ProyectoID,
		Mensaje:      p.Mensaje,
		Estado:       string(p.Estado),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type ProyectoResumenResponse struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
	Tipo   string `json:"tipo"`
	Ciudad string `json:"ciudad"`
	Foto   string `json:"foto"`
}

type UsuarioResumenResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type PrestadorResumenResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rubro  string `json:"rubro"`
	Ciudad string `json:"ciudad"`
}

type MiPostulacionResponse struct {
	PostulacionResponse
	PuestoNombre string                  `json:"puestoNombre"`
	Proyecto     ProyectoResumenResponse `json:"proyecto"`
}

type CandidatoResponse struct {
	PostulacionResponse
	PuestoNombre string                 `json:"puestoNombre"`
	Postulante   UsuarioResumenResponse `json:"postulante"`
}

func FromPostulacionDetalles(items []usecase.PostulacionDetalle) []MiPostulacionResponse {
	out := make([]MiPostulacionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MiPostulacionResponse{
			PostulacionResponse: FromPostulacion(it.Postulacion),
			PuestoNombre:        it.PuestoNombre,
			Proyecto: ProyectoResumenResponse{
				ID:     it.Proyecto.ID,
				Titulo: it.Proyecto.Titulo,
				Tipo:   it.Proyecto.Tipo,
				Ciudad: it.Proyecto.Ciudad,
				Foto:   it.Proyecto.Foto,
			},
		})
	}
	return out
}

func FromPostulacionCandidatos(items []usecase.PostulacionCandidato) []CandidatoResponse {
	out := make([]CandidatoResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CandidatoResponse{
			PostulacionResponse: FromPostulacion(it.Postulacion),
			PuestoNombre:        it.PuestoNombre,
			Postulante:          fromUsuarioResumen(it.Postulante),
		})
	}
	return out
}

type SolicitudResponse struct {
	ID            string    `json:"id"`
	SolicitanteID string    `json:"solicitanteId"`
	PrestadorID   string    `json:"prestadorId"`
	Estado        string    `json:"estado"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromSolicitud(s entities.Solicitud) SolicitudResponse {
	return SolicitudResponse{
		ID:            s.ID,
		SolicitanteID: s.SolicitanteID,
		PrestadorID:   s.PrestadorID,
		Estado:        string(s.Estado),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type SolicitudRecibidaResponse struct {
	SolicitudResponse
	Prestador              PrestadorResumenResponse `json:"prestador"`
	Solicitante            UsuarioResumenResponse   `json:"solicitante"`
	SolicitantePrestadorID string                   `json:"solicitantePrestadorId,omitempty"`
}

type SolicitudEnviadaResponse struct {
	SolicitudResponse
	Prestador PrestadorResumenResponse `json:"prestador"`
}

func FromSolicitudesRecibidas(items []usecase.SolicitudRecibida) []SolicitudRecibidaResponse {
	out := make([]SolicitudRecibidaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SolicitudRecibidaResponse{
			SolicitudResponse:      FromSolicitud(it.Solicitud),
			Prestador:              fromPrestadorResumen(it.Prestador),
			Solicitante:            fromUsuarioResumen(it.Solicitante),
			SolicitantePrestadorID: it.SolicitantePrestadorID,
		})
	}
	return out
}

func FromSolicitudesEnviadas(items []usecase.SolicitudEnviada) []SolicitudEnviadaResponse {
	out := make([]SolicitudEnviadaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SolicitudEnviadaResponse{
			SolicitudResponse: FromSolicitud(it.Solicitud),
			Prestador:         fromPrestadorResumen(it.Prestador),
		})
	}
	return out
}

func fromUsuarioResumen(u usecase.UsuarioResumen) UsuarioResumenResponse {
	return UsuarioResumenResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}

func fromPrestadorResumen(p usecase.PrestadorResumen) PrestadorResumenResponse {
	return PrestadorResumenResponse{ID: p.ID, Nombre: p.Nombre, Rubro: p.Rubro, Ciudad: p.Ciudad}
}
