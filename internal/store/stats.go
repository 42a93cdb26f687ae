package store

import "github.com/edusphere/edusphere-api/internal/models"

// Stats recomputes the dashboard aggregates from current collection
// contents. Nothing is cached; every call reflects the latest state.
func (s *Store) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.DashboardStats{
		TotalStudents: len(s.students),
		TotalTeachers: len(s.teachers),
	}
	for _, fee := range s.fees {
		switch fee.Status {
		case models.FeeStatusPaid:
			stats.RevenueCollected += fee.Amount
		case models.FeeStatusPending, models.FeeStatusOverdue:
			stats.PendingFees += fee.Amount
		}
	}
	stats.AttendanceRate = s.attendanceRateLocked(s.now().Format(dateLayout))
	return stats
}

// attendanceRateLocked computes the share of today's student records marked
// present or late. Zero when nothing has been marked for the date.
func (s *Store) attendanceRateLocked(date string) float64 {
	var marked, present int
	for _, rec := range s.attendance {
		if rec.Date != date || rec.Subject.Kind != models.SubjectKindStudent {
			continue
		}
		marked++
		if rec.Status == models.AttendanceStatusPresent || rec.Status == models.AttendanceStatusLate {
			present++
		}
	}
	if marked == 0 {
		return 0
	}
	return float64(present) / float64(marked) * 100
}
