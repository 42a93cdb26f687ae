package models

// DashboardStats holds derived aggregates recomputed on every read.
type DashboardStats struct {
	TotalStudents    int     `json:"total_students"`
	TotalTeachers    int     `json:"total_teachers"`
	AttendanceRate   float64 `json:"attendance_rate"`
	RevenueCollected float64 `json:"revenue_collected"`
	PendingFees      float64 `json:"pending_fees"`
}
