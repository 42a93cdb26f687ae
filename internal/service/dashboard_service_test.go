package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
)

type fakeGenerator struct {
	lastContext string
	lastPrompt  string
	reply       string
}

func (f *fakeGenerator) GenerateReport(ctx context.Context, contextSummary, prompt string) string {
	f.lastContext = contextSummary
	f.lastPrompt = prompt
	return f.reply
}

func TestDashboardServiceStats(t *testing.T) {
	svc := NewDashboardService(newStoreForTest(t), &fakeGenerator{}, nil)

	stats := svc.Stats(context.Background())
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalTeachers)
	assert.InDelta(t, 500, stats.RevenueCollected, 0.001)
	assert.InDelta(t, 1000, stats.PendingFees, 0.001)
}

func TestDashboardServiceAskBuildsContextSnapshot(t *testing.T) {
	st := newStoreForTest(t)
	generator := &fakeGenerator{reply: "Here is your report."}
	svc := NewDashboardService(st, generator, nil)
	ctx := context.Background()

	_, err := st.MarkAttendance(ctx, []models.AttendanceRecord{
		{Date: "2024-03-01", Subject: models.StudentSubject("s1"), Status: models.AttendanceStatusPresent},
	})
	require.NoError(t, err)

	reply := svc.Ask(ctx, "Summarize outstanding fees")
	assert.Equal(t, "Here is your report.", reply)
	assert.Equal(t, "Summarize outstanding fees", generator.lastPrompt)

	var snapshot struct {
		Stats                 models.DashboardStats `json:"stats"`
		FeesSummary           []models.FeeRecord    `json:"fees_summary"`
		RecentAttendanceCount int                   `json:"recent_attendance_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(generator.lastContext), &snapshot))
	assert.Equal(t, 3, snapshot.Stats.TotalStudents)
	assert.Len(t, snapshot.FeesSummary, 3)
	assert.Equal(t, 1, snapshot.RecentAttendanceCount)
}

func TestDashboardServiceAskCapsFeesSummary(t *testing.T) {
	ctx := context.Background()
	fees := make([]models.FeeRecord, 8)
	for i := range fees {
		fees[i] = models.FeeRecord{
			ID: fmt.Sprintf("fee-%d", i), StudentID: "s1", Amount: 100,
			DueDate: "2024-06-01", Status: models.FeeStatusPending, Title: "Term 2 Tuition",
		}
	}
	payload, err := json.Marshal(fees)
	require.NoError(t, err)

	snaps := &memSnapshots{data: map[string][]byte{store.SlotFees: payload}}
	st := store.New(ctx, snaps, zap.NewNop())
	generator := &fakeGenerator{reply: "ok"}
	svc := NewDashboardService(st, generator, nil)

	svc.Ask(ctx, "anything")

	var snapshot struct {
		FeesSummary []models.FeeRecord `json:"fees_summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(generator.lastContext), &snapshot))
	require.Len(t, snapshot.FeesSummary, 5)
	assert.Equal(t, "fee-0", snapshot.FeesSummary[0].ID)
}
