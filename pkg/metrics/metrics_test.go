package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	c := NewCollector("quotebox")
	c.ObserveFetch("ok", 10*time.Millisecond)
	c.ObserveFetch("ok", 20*time.Millisecond)
	c.ObserveFetch("status", time.Millisecond)
	c.ObserveBusy()

	if got := testutil.ToFloat64(c.Requests.WithLabelValues("ok")); got != 2 {
		t.Errorf("expected 2 ok requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.Requests.WithLabelValues("status")); got != 1 {
		t.Errorf("expected 1 status failure, got %v", got)
	}
	if got := testutil.ToFloat64(c.Busy); got != 1 {
		t.Errorf("expected 1 ignored request, got %v", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("quotebox")
	c.ObserveFetch("network", time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `quotebox_quote_requests_total{outcome="network"} 1`) {
		t.Errorf("expected request counter in output, got:\n%s", rec.Body.String())
	}
}

func TestNewCollector_Independent(t *testing.T) {
	a := NewCollector("quotebox")
	b := NewCollector("quotebox")
	a.ObserveBusy()
	if got := testutil.ToFloat64(b.Busy); got != 0 {
		t.Errorf("expected collectors to be independent, got %v", got)
	}
}
