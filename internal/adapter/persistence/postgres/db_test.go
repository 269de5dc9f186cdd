package postgres

import (
	"errors"
	"fmt"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "postulaciones_postulante_puesto_key"}
	if err := mapWriteError(fmt.Errorf("exec: %w", dup)); !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	fk := &pgconn.PgError{Code: "23503"}
	if err := mapWriteError(fk); errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("foreign key violation must not map to duplicate: %v", err)
	}

	other := errors.New("boom")
	if err := mapWriteError(other); err != other {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}

func TestSchemaDeclaresUniquenessAndCascades(t *testing.T) {
	for _, want := range []string{
		"UNIQUE (postulante_id, puesto_id)",
		"UNIQUE (solicitante_id, prestador_id)",
		"proyecto_id TEXT NOT NULL REFERENCES proyectos (id) ON DELETE CASCADE",
		"prestador_id   TEXT NOT NULL REFERENCES prestadores (id) ON DELETE CASCADE",
	} {
		if !strings.Contains(schema, want) {
			t.Fatalf("schema missing %q", want)
		}
	}
}

func TestRowConversion(t *testing.T) {
	now := time.Now().UTC()
	link := "/proyectos/5"
	n := notificacionRow{ID: "n-1", DestinatarioID: "1", Titulo: "t", Link: &link, CreatedAt: now}.entity()
	if n.Link == nil || *n.Link != link || !n.CreatedAt.Equal(now) {
		t.Fatalf("unexpected notificacion: %+v", n)
	}

	p := postulacionRow{ID: "p-1", Estado: "Aceptada"}.entity()
	if p.Estado != entities.PostulacionAceptada {
		t.Fatalf("unexpected estado: %s", p.Estado)
	}

	s := solicitudRow{ID: "s-1", Estado: "Aprobada"}.entity()
	if s.Estado != entities.SolicitudAprobada {
		t.Fatalf("unexpected estado: %s", s.Estado)
	}
}
