package usecase

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"sync"
)

// memStore is an in-memory backing for the repository interfaces, used by
// the round-trip tests that exercise several use cases together.
type memStore struct {
	mu            sync.Mutex
	usuarios      map[string]entities.Usuario
	proyectos     map[string]entities.Proyecto
	puestos       map[string]entities.Puesto
	prestadores   map[string]entities.Prestador
	postulaciones map[string]entities.Postulacion
	solicitudes   map[string]entities.Solicitud
	notificacion  map[string]entities.Notificacion
}

func newMemStore() *memStore {
	return &memStore{
		usuarios:      map[string]entities.Usuario{},
		proyectos:     map[string]entities.Proyecto{},
		puestos:       map[string]entities.Puesto{},
		prestadores:   map[string]entities.Prestador{},
		postulaciones: map[string]entities.Postulacion{},
		solicitudes:   map[string]entities.Solicitud{},
		notificacion:  map[string]entities.Notificacion{},
	}
}

type memUsuarios struct{ s *memStore }

func (r memUsuarios) GetByID(_ context.Context, id string) (entities.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.usuarios[id], nil
}

type memProyectos struct{ s *memStore }

func (r memProyectos) Create(_ context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.proyectos[p.ID] = p
	for _, pu := range p.Puestos {
		r.s.puestos[pu.ID] = pu
	}
	return p, nil
}

func (r memProyectos) GetByID(_ context.Context, id string) (entities.Proyecto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.proyectos[id]
	p.Puestos = nil
	return p, nil
}

func (r memProyectos) List(_ context.Context) ([]entities.Proyecto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Proyecto{}
	for _, p := range r.s.proyectos {
		p.Puestos = nil
		out = append(out, p)
	}
	return out, nil
}

func (r memProyectos) Update(_ context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.proyectos[p.ID]; !ok {
		return entities.Proyecto{}, nil
	}
	r.s.proyectos[p.ID] = p
	return p, nil
}

func (r memProyectos) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.proyectos, id)
	for pid, pu := range r.s.puestos {
		if pu.ProyectoID == id {
			delete(r.s.puestos, pid)
		}
	}
	for pid, po := range r.s.postulaciones {
		if po.ProyectoID == id {
			delete(r.s.postulaciones, pid)
		}
	}
	return nil
}

func (r memProyectos) GetPuestoByID(_ context.Context, id string) (entities.Puesto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.puestos[id], nil
}

func (r memProyectos) ListPuestos(_ context.Context, proyectoID string) ([]entities.Puesto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Puesto{}
	for _, pu := range r.s.puestos {
		if pu.ProyectoID == proyectoID {
			out = append(out, pu)
		}
	}
	return out, nil
}

type memPrestadores struct{ s *memStore }

func (r memPrestadores) Create(_ context.Context, p entities.Prestador) (entities.Prestador, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.prestadores[p.ID] = p
	return p, nil
}

func (r memPrestadores) GetByID(_ context.Context, id string) (entities.Prestador, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.prestadores[id], nil
}

func (r memPrestadores) ListByOwner(_ context.Context, ownerID string) ([]entities.Prestador, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Prestador{}
	for _, p := range r.s.prestadores {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPrestadores) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.prestadores, id)
	for sid, so := range r.s.solicitudes {
		if so.PrestadorID == id {
			delete(r.s.solicitudes, sid)
		}
	}
	return nil
}

type memPostulaciones struct{ s *memStore }

func (r memPostulaciones) Create(_ context.Context, p entities.Postulacion) (entities.Postulacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.postulaciones {
		if e.PostulanteID == p.PostulanteID && e.PuestoID == p.PuestoID {
			return entities.Postulacion{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.postulaciones[p.ID] = p
	return p, nil
}

func (r memPostulaciones) GetByID(_ context.Context, id string) (entities.Postulacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.postulaciones[id], nil
}

func (r memPostulaciones) FindByPostulanteAndPuesto(_ context.Context, postulanteID, puestoID string) (entities.Postulacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.postulaciones {
		if e.PostulanteID == postulanteID && e.PuestoID == puestoID {
			return e, nil
		}
	}
	return entities.Postulacion{}, nil
}

func (r memPostulaciones) ListByPostulante(_ context.Context, postulanteID string) ([]entities.Postulacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Postulacion{}
	for _, e := range r.s.postulaciones {
		if e.PostulanteID == postulanteID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memPostulaciones) ListByProyecto(_ context.Context, proyectoID string) ([]entities.Postulacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Postulacion{}
	for _, e := range r.s.postulaciones {
		if e.ProyectoID == proyectoID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memPostulaciones) UpdateEstado(_ context.Context, id string, estado entities.PostulacionEstado) (entities.Postulacion, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.postulaciones[id]
	if !ok {
		return entities.Postulacion{}, false, nil
	}
	if e.Estado == estado {
		return e, false, nil
	}
	e.Estado = estado
	r.s.postulaciones[id] = e
	return e, true, nil
}

type memSolicitudes struct{ s *memStore }

func (r memSolicitudes) Create(_ context.Context, so entities.Solicitud) (entities.Solicitud, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.solicitudes {
		if e.SolicitanteID == so.SolicitanteID && e.PrestadorID == so.PrestadorID {
			return entities.Solicitud{}, interfaces.ErrDuplicateKey
		}
	}
	r.s.solicitudes[so.ID] = so
	return so, nil
}

func (r memSolicitudes) GetByID(_ context.Context, id string) (entities.Solicitud, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.solicitudes[id], nil
}

func (r memSolicitudes) FindBySolicitanteAndPrestador(_ context.Context, solicitanteID, prestadorID string) (entities.Solicitud, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.solicitudes {
		if e.SolicitanteID == solicitanteID && e.PrestadorID == prestadorID {
			return e, nil
		}
	}
	return entities.Solicitud{}, nil
}

func (r memSolicitudes) ListBySolicitante(_ context.Context, solicitanteID string) ([]entities.Solicitud, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Solicitud{}
	for _, e := range r.s.solicitudes {
		if e.SolicitanteID == solicitanteID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memSolicitudes) ListByPrestador(_ context.Context, prestadorID string) ([]entities.Solicitud, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Solicitud{}
	for _, e := range r.s.solicitudes {
		if e.PrestadorID == prestadorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memSolicitudes) UpdateEstado(_ context.Context, id string, estado entities.SolicitudEstado) (entities.Solicitud, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.solicitudes[id]
	if !ok {
		return entities.Solicitud{}, false, nil
	}
	if e.Estado == estado {
		return e, false, nil
	}
	e.Estado = estado
	r.s.solicitudes[id] = e
	return e, true, nil
}

type memNotificaciones struct{ s *memStore }

func (r memNotificaciones) Create(_ context.Context, n entities.Notificacion) (entities.Notificacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notificacion[n.ID] = n
	return n, nil
}

func (r memNotificaciones) GetByID(_ context.Context, id string) (entities.Notificacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.notificacion[id], nil
}

func (r memNotificaciones) ListByDestinatario(_ context.Context, destinatarioID string) ([]entities.Notificacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Notificacion{}
	for _, n := range r.s.notificacion {
		if n.DestinatarioID == destinatarioID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memNotificaciones) CountUnread(_ context.Context, destinatarioID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, n := range r.s.notificacion {
		if n.DestinatarioID == destinatarioID && !n.Leida {
			count++
		}
	}
	return count, nil
}

func (r memNotificaciones) MarkRead(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notificacion[id]; ok {
		n.Leida = true
		r.s.notificacion[id] = n
	}
	return nil
}

func (r memNotificaciones) MarkAllRead(_ context.Context, destinatarioID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for id, n := range r.s.notificacion {
		if n.DestinatarioID == destinatarioID && !n.Leida {
			n.Leida = true
			r.s.notificacion[id] = n
			count++
		}
	}
	return count, nil
}

var (
	_ interfaces.IUsuarioRepository      = memUsuarios{}
	_ interfaces.IProyectoRepository     = memProyectos{}
	_ interfaces.IPrestadorRepository    = memPrestadores{}
	_ interfaces.IPostulacionRepository  = memPostulaciones{}
	_ interfaces.ISolicitudRepository    = memSolicitudes{}
	_ interfaces.INotificacionRepository = memNotificaciones{}
)

// memApp wires the use cases on top of a memStore.
type memApp struct {
	store         *memStore
	notificacion  *NotificacionUseCase
	postulaciones *PostulacionUseCase
	solicitudes   *SolicitudUseCase
	proyectos     *ProyectoUseCase
	prestadores   *PrestadorUseCase
}

func newMemApp(policy Policy) *memApp {
	s := newMemStore()
	notif := NewNotificacionUseCase(memNotificaciones{s}, memUsuarios{s})
	notifier := NewNotifier(notif, nil, 0)
	return &memApp{
		store:         s,
		notificacion:  notif,
		postulaciones: NewPostulacionUseCase(memPostulaciones{s}, memProyectos{s}, memUsuarios{s}, notifier, policy, nil),
		solicitudes:   NewSolicitudUseCase(memSolicitudes{s}, memPrestadores{s}, memUsuarios{s}, notifier, policy, nil),
		proyectos:     NewProyectoUseCase(memProyectos{s}, policy),
		prestadores:   NewPrestadorUseCase(memPrestadores{s}, policy),
	}
}

func (a *memApp) addUsuario(id, nombre string) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.usuarios[id] = entities.Usuario{ID: id, Nombre: nombre, Email: nombre + "@example.com", Rol: entities.RolUser}
}
