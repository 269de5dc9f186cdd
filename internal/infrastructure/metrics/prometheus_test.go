package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()
	r.ObserveTransition("postulacion", "Aceptada")
	r.ObserveTransition("postulacion", "Aceptada")
	r.ObserveNotification("failed")
	r.ObserveRateLimited("/v1/postulacion")

	if got := testutil.ToFloat64(r.transitions.WithLabelValues("postulacion", "Aceptada")); got != 2 {
		t.Fatalf("expected 2 transitions, got %v", got)
	}
	if got := testutil.ToFloat64(r.notifications.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected 1 failed notification, got %v", got)
	}
	if got := testutil.ToFloat64(r.rateLimited.WithLabelValues("/v1/postulacion")); got != 1 {
		t.Fatalf("expected 1 rate limited, got %v", got)
	}
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := NewRecorder()

	r := gin.New()
	r.Use(rec.Middleware())
	r.GET("/v1/proyecto/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(rec.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/proyecto/42", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	if got := testutil.ToFloat64(rec.requests.WithLabelValues(http.MethodGet, "/v1/proyecto/:id", "204")); got != 1 {
		t.Fatalf("expected 1 request sample, got %v", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	if w.Code != http.StatusOK || !strings.Contains(string(body), "mercado_audiovisual_http_requests_total") {
		t.Fatalf("unexpected metrics output: %d %s", w.Code, body)
	}
}
