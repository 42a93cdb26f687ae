package models

// Teacher represents an instructor on the staff roster.
type Teacher struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Subject  string  `json:"subject"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	JoinDate string  `json:"join_date"`
}
