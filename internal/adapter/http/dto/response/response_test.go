package response

import (
	"encoding/json"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase"
	"strings"
	"testing"
	"time"
)

func TestFromPostulacionDetalles(t *testing.T) {
	now := time.Now().UTC()
	out := FromPostulacionDetalles([]usecase.PostulacionDetalle{{
		Postulacion:  entities.Postulacion{ID: "p-1", PuestoID: "10", ProyectoID: "5", Estado: entities.PostulacionPendiente, CreatedAt: now},
		PuestoNombre: "Director/a",
		Proyecto:     usecase.ProyectoResumen{ID: "5", Titulo: "La frontera", Ciudad: "Salta"},
	}})
	if len(out) != 1 || out[0].Estado != "Pendiente" || out[0].PuestoNombre != "Director/a" || out[0].Proyecto.Titulo != "La frontera" {
		t.Fatalf("unexpected response: %+v", out)
	}

	b, err := json.Marshal(out[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"puestoId":"10"`, `"proyectoId":"5"`, `"puestoNombre"`, `"proyecto":{`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("expected %s in %s", key, b)
		}
	}
}

func TestFromSolicitudesRecibidas(t *testing.T) {
	out := FromSolicitudesRecibidas([]usecase.SolicitudRecibida{{
		Solicitud:   entities.Solicitud{ID: "s-1", PrestadorID: "7", Estado: entities.SolicitudAprobada},
		Prestador:   usecase.PrestadorResumen{ID: "7", Nombre: "Estudio Norte"},
		Solicitante: usecase.UsuarioResumen{ID: "1", Nombre: "Ana", Email: "ana@example.com"},
	}})
	if len(out) != 1 || out[0].Solicitante.Email != "ana@example.com" || out[0].Prestador.Nombre != "Estudio Norte" {
		t.Fatalf("unexpected response: %+v", out)
	}
	b, _ := json.Marshal(out[0])
	if strings.Contains(string(b), "solicitantePrestadorId") {
		t.Fatalf("empty requester profile must be omitted: %s", b)
	}
}

func TestFromNotificacion_NullLink(t *testing.T) {
	b, err := json.Marshal(FromNotificacion(entities.Notificacion{ID: "n-1", Titulo: "Hola"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"link":null`) {
		t.Fatalf("expected null link, got %s", b)
	}
}

func TestFromProyecto_EmptyPuestos(t *testing.T) {
	b, _ := json.Marshal(FromProyecto(entities.Proyecto{ID: "5"}))
	if !strings.Contains(string(b), `"puestos":[]`) {
		t.Fatalf("expected empty puestos array, got %s", b)
	}
}
