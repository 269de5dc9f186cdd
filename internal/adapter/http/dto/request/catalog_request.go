package request

import "mercado_audiovisual/internal/usecase"

type PuestoRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
}

type ProyectoRequest struct {
	Titulo       string          `json:"titulo" binding:"required"`
	Tipo         string          `json:"tipo" binding:"required"`
	Ciudad       string          `json:"ciudad" binding:"required"`
	Descripcion  string          `json:"descripcion"`
	Foto         string          `json:"foto"`
	Estado       string          `json:"estado"`
	EsEstudiante bool            `json:"esEstudiante"`
	EsPago       bool            `json:"esPago"`
	Puestos      []PuestoRequest `json:"puestos" binding:"max=99,dive"`
}

func (r ProyectoRequest) ToInput() usecase.ProyectoInput {
	in := usecase.ProyectoInput{
		Titulo:       r.Titulo,
		Tipo:         r.Tipo,
		Ciudad:       r.Ciudad,
		Descripcion:  r.Descripcion,
		Foto:         r.Foto,
		Estado:       r.Estado,
		EsEstudiante: r.EsEstudiante,
		EsPago:       r.EsPago,
	}
	for _, p := range r.Puestos {
		in.Puestos = append(in.Puestos, usecase.PuestoInput{Nombre: p.Nombre, Descripcion: p.Descripcion})
	}
	return in
}

type PrestadorRequest struct {
	TipoPerfil  string `json:"tipoPerfil" binding:"required"`
	Nombre      string `json:"nombre" binding:"required"`
	Rubro       string `json:"rubro" binding:"required"`
	Descripcion string `json:"descripcion"`
	Email       string `json:"email" binding:"omitempty,email"`
	Telefono    string `json:"telefono"`
	Web         string `json:"web"`
	Ciudad      string `json:"ciudad"`
}

func (r PrestadorRequest) ToInput() usecase.PrestadorInput {
	return usecase.PrestadorInput{
		TipoPerfil:  r.TipoPerfil,
		Nombre:      r.Nombre,
		Rubro:       r.Rubro,
		Descripcion: r.Descripcion,
		Email:       r.Email,
		Telefono:    r.Telefono,
		Web:         r.Web,
		Ciudad:      r.Ciudad,
	}
}
