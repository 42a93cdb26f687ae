package models

// Student represents a learner on the roster.
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Grade          string `json:"grade"`
	ParentName     string `json:"parent_name"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollment_date"`
}
