package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment defines a fee payment row based on the 'payments' table. A student
// owns many payments; rows cascade-delete with the student. Multiple payments
// per (student, month) are allowed and summed.
type Payment struct {
	ID        int64           `json:"id" db:"id"`
	StudentID int64           `json:"studentId" db:"student_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"` // >= 0
	Month     string          `json:"month" db:"month"`   // calendar month name
	DatePaid  time.Time       `json:"datePaid" db:"date_paid"`

	// Relation (populated when needed)
	Student *Student `json:"student,omitempty"`
}
