package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveImport(t *testing.T) {
	r := NewRecorder()
	r.ObserveImport("sleeper", "success", 150*time.Millisecond, 12)
	r.ObserveImport("sleeper", "failed", time.Second, 0)

	if got := testutil.ToFloat64(r.imports.WithLabelValues("sleeper", "success")); got != 1 {
		t.Fatalf("expected one successful import, got %v", got)
	}
	if got := testutil.ToFloat64(r.teamsImported.WithLabelValues("sleeper")); got != 12 {
		t.Fatalf("expected 12 teams imported, got %v", got)
	}
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.ObserveSettlement("success", 2)
	r.SetCircuitOpen("sleeper", true)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{"bethub_settlements_total", "bethub_payouts_written_total 2", `bethub_circuit_open{name="sleeper"} 1`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveImport("sleeper", "success", time.Second, 1)
	r.ObserveSettlement("success", 1)
	r.ObserveProviderRequest("sleeper", "league", 200)
	r.SetCircuitOpen("sleeper", false)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil recorder handler, got %d", rec.Code)
	}
}
