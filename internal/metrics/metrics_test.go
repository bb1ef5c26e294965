package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	created := testutil.ToFloat64(ItemsCreated)
	published := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemCreated)))
	accepted := testutil.ToFloat64(CustomIDEdits.WithLabelValues(EditOutcomeAccepted))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewItemCreatedEvent("i", "inv", "LAP-001", 1, "")))
	require.NoError(t, bus.Publish(ctx, event.NewCustomIDEditedEvent("i", "inv", "LAP-001", "LAP-042", true, 42)))

	assert.Equal(t, created+1, testutil.ToFloat64(ItemsCreated))
	assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemCreated))))
	assert.Equal(t, accepted+1, testutil.ToFloat64(CustomIDEdits.WithLabelValues(EditOutcomeAccepted)))
}

func TestRecordConflict(t *testing.T) {
	before := testutil.ToFloat64(ItemConflicts.WithLabelValues(ConflictVersion))
	RecordConflict(ConflictVersion)
	assert.Equal(t, before+1, testutil.ToFloat64(ItemConflicts.WithLabelValues(ConflictVersion)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/items/{itemID}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1,
		testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/items/{itemID}", "418")))
}
