package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere-api/internal/service"
)

type fakeGenerator struct {
	reply string
}

func (f *fakeGenerator) GenerateReport(ctx context.Context, contextSummary, prompt string) string {
	return f.reply
}

func newDashboardHandlerForTest(t *testing.T, reply string) (*DashboardHandler, *fakeObserver) {
	t.Helper()
	svc := service.NewDashboardService(newStoreForTest(t), &fakeGenerator{reply: reply}, nil)
	observer := &fakeObserver{}
	return NewDashboardHandler(svc, observer), observer
}

func TestDashboardHandlerStats(t *testing.T) {
	h, _ := newDashboardHandlerForTest(t, "")

	c, w := newTestContext(t, http.MethodGet, "/dashboard/stats", nil)
	h.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := dataField(t, w).(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["total_students"])
	assert.EqualValues(t, 2, data["total_teachers"])
	assert.EqualValues(t, 500, data["revenue_collected"])
	assert.EqualValues(t, 1000, data["pending_fees"])
}

func TestDashboardHandlerAsk(t *testing.T) {
	h, observer := newDashboardHandlerForTest(t, "Here is the summary.")

	c, w := newTestContext(t, http.MethodPost, "/dashboard/assist", gin.H{"prompt": "Summarize fees"})
	h.Ask(c)

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := dataField(t, w).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Here is the summary.", data["response"])
	assert.Equal(t, []string{"generate_report"}, observer.operations)
}

func TestDashboardHandlerAskRequiresPrompt(t *testing.T) {
	h, observer := newDashboardHandlerForTest(t, "unused")

	c, w := newTestContext(t, http.MethodPost, "/dashboard/assist", gin.H{})
	h.Ask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, observer.operations)
}
