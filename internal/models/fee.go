package models

// FeeStatus represents the payment state of a fee record.
type FeeStatus string

const (
	FeeStatusPaid    FeeStatus = "PAID"
	FeeStatusPending FeeStatus = "PENDING"
	FeeStatusOverdue FeeStatus = "OVERDUE"
)

// Valid returns true when the status is a supported value.
func (s FeeStatus) Valid() bool {
	switch s {
	case FeeStatusPaid, FeeStatusPending, FeeStatusOverdue:
		return true
	default:
		return false
	}
}

// FeeRecord represents one charge against a student. PaymentDate is set
// exactly when Status is PAID.
type FeeRecord struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Amount      float64   `json:"amount"`
	DueDate     string    `json:"due_date"`
	Status      FeeStatus `json:"status"`
	Title       string    `json:"title"`
	PaymentDate *string   `json:"payment_date,omitempty"`
}
