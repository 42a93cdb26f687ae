package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesObservedSeries(t *testing.T) {
	svc := NewMetricsService()

	svc.ObserveHTTPRequest(http.MethodGet, "/students", http.StatusOK, 12*time.Millisecond)
	svc.ObserveSnapshotWrite("students")
	svc.ObserveAssistCall("generate_report")

	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "store_snapshot_writes_total")
	assert.Contains(t, body, "assist_requests_total")
	assert.Contains(t, body, `slot="students"`)
}
