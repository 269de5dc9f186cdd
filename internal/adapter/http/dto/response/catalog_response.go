package response

import (
	"mercado_audiovisual/internal/domain/entities"
	"time"
)

type PuestoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type ProyectoResponse struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"ownerId"`
	Titulo       string           `json:"titulo"`
	Tipo         string           `json:"tipo"`
	Ciudad       string           `json:"ciudad"`
	Descripcion  string           `json:"descripcion"`
	Foto         string           `json:"foto"`
	Estado       string           `json:"estado"`
	EsEstudiante bool             `json:"esEstudiante"`
	EsPago       bool             `json:"esPago"`
	Puestos      []PuestoResponse `json:"puestos"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func FromProyecto(p entities.Proyecto) ProyectoResponse {
	puestos := make([]PuestoResponse, 0, len(p.Puestos))
	for _, pu := range p.Puestos {
		puestos = append(puestos, PuestoResponse{ID: pu.ID, Nombre: pu.Nombre, Descripcion: pu.Descripcion})
	}
	return ProyectoResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Titulo:       p.Titulo,
		Tipo:         p.Tipo,
		Ciudad:       p.Ciudad,
		Descripcion:  p.Descripcion,
		Foto:         p.Foto,
		Estado:       p.Estado,
		EsEstudiante: p.EsEstudiante,
		EsPago:       p.EsPago,
		Puestos:      puestos,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProyectos(items []entities.Proyecto) []ProyectoResponse {
	out := make([]ProyectoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProyecto(p))
	}
	return out
}

type PrestadorResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	TipoPerfil  string    `json:"tipoPerfil"`
	Nombre      string    `json:"nombre"`
	Rubro       string    `json:"rubro"`
	Descripcion string    `json:"descripcion"`
	Email       string    `json:"email"`
	Telefono    string    `json:"telefono"`
	Web         string    `json:"web"`
	Ciudad      string    `json:"ciudad"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromPrestador(p entities.Prestador) PrestadorResponse {
	return PrestadorResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		TipoPerfil:  p.TipoPerfil,
		Nombre:      p.Nombre,
		Rubro:       p.Rubro,
		Descripcion: p.Descripcion,
		Email:       p.Email,
		Telefono:    p.Telefono,
		Web:         p.Web,
		Ciudad:      p.Ciudad,
		CreatedAt:   p.CreatedAt,
	}
}

func FromPrestadores(items []entities.Prestador) []PrestadorResponse {
	out := make([]PrestadorResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPrestador(p))
	}
	return out
}
