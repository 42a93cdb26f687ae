package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
)

// feeContextLimit bounds how many ledger entries are serialized into the
// assistant's context snapshot.
const feeContextLimit = 5

type reportGenerator interface {
	GenerateReport(ctx context.Context, contextSummary, prompt string) string
}

// DashboardService composes derived statistics and the assistant panel.
type DashboardService struct {
	store     *store.Store
	generator reportGenerator
	logger    *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(st *store.Store, generator reportGenerator, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: st, generator: generator, logger: logger}
}

// Stats recomputes the dashboard aggregates.
func (s *DashboardService) Stats(ctx context.Context) models.DashboardStats {
	return s.store.Stats()
}

// assistantContext is the snapshot serialized for the assistant: headline
// stats, a slice of the ledger, and how much attendance history exists.
type assistantContext struct {
	Stats                 models.DashboardStats `json:"stats"`
	FeesSummary           []models.FeeRecord    `json:"fees_summary"`
	RecentAttendanceCount int                   `json:"recent_attendance_count"`
}

// Ask forwards a prompt to the collaborator along with the current context
// snapshot. The returned text is always success-shaped.
func (s *DashboardService) Ask(ctx context.Context, prompt string) string {
	fees := s.store.Fees()
	if len(fees) > feeContextLimit {
		fees = fees[:feeContextLimit]
	}

	snapshot := assistantContext{
		Stats:                 s.store.Stats(),
		FeesSummary:           fees,
		RecentAttendanceCount: len(s.store.Attendance()),
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Warn("failed to serialize assistant context", zap.Error(err))
		payload = []byte("{}")
	}

	return s.generator.GenerateReport(ctx, string(payload), prompt)
}
