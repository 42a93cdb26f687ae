package service

import (
	"context"

	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/store"
)

// ScheduleService exposes the static timetable.
type ScheduleService struct {
	store *store.Store
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(st *store.Store) *ScheduleService {
	return &ScheduleService{store: st}
}

// List returns every class session.
func (s *ScheduleService) List(ctx context.Context) []models.ClassSession {
	return s.store.Classes()
}

// ListByGrade narrows the timetable to one grade.
func (s *ScheduleService) ListByGrade(ctx context.Context, grade string) []models.ClassSession {
	sessions := s.store.Classes()
	if grade == "" {
		return sessions
	}
	filtered := make([]models.ClassSession, 0, len(sessions))
	for _, session := range sessions {
		if session.Grade == grade {
			filtered = append(filtered, session)
		}
	}
	return filtered
}
