package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notifyconsole/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome(t *testing.T) {
	m := New()
	queued := 12

	m.RecordOutcome(entity.AudienceBulk, entity.ChannelMail, entity.DeliveryOutcome{Status: entity.OutcomeAccepted, QueuedCount: &queued})
	m.RecordOutcome(entity.AudienceBulk, entity.ChannelMail, entity.DeliveryOutcome{Status: entity.OutcomeAccepted, QueuedCount: &queued})
	m.RecordOutcome(entity.AudienceSingle, entity.ChannelTelegram, entity.DeliveryOutcome{Status: entity.OutcomeRejected, Code: "MISSING_TARGET"})

	assert.InDelta(t, 2, testutil.ToFloat64(m.dispatchOutcomes.WithLabelValues("bulk", "mail", "accepted", "")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dispatchOutcomes.WithLabelValues("single", "telegram", "rejected", "MISSING_TARGET")), 0)
	assert.InDelta(t, 24, testutil.ToFloat64(m.queuedMessages), 0)
}

func TestHandler_ExposesBackendHistogram(t *testing.T) {
	m := New()
	m.ObserveBackend(http.MethodGet, "/users/", http.StatusOK, 20*time.Millisecond)
	m.ObserveBackend(http.MethodPost, "/notifications/send-bulk", 0, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `notifyconsole_backend_request_duration_seconds_count{code="200",method="GET",route="/users/"} 1`)
	assert.Contains(t, body, `code="none"`)
}
