package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skhostel/hostelpay/internal/app/models"
)

// CreatePaymentRequest records a fee payment for a month.
type CreatePaymentRequest struct {
	Month  string          `form:"month" json:"month" binding:"required"`
	Amount decimal.Decimal `form:"amount" json:"amount" binding:"required"`
}

// PaymentResponse represents a single payment row
type PaymentResponse struct {
	ID       int64           `json:"id"`
	Month    string          `json:"month"`
	Amount   decimal.Decimal `json:"amount"`
	DatePaid time.Time       `json:"datePaid"`
}

// MonthSummary reports the accounting state of one month for a student.
// Due may be negative on overpayment; due <= 0 means paid in full.
type MonthSummary struct {
	Month      string          `json:"month"`
	Paid       decimal.Decimal `json:"paid"`
	Due        decimal.Decimal `json:"due"`
	PaidInFull bool            `json:"paidInFull"`
}

// PaymentListResponse is the render context for a student's payment history,
// ordered by date paid descending.
type PaymentListResponse struct {
	Student  StudentResponse   `json:"student"`
	Payments []PaymentResponse `json:"payments"`
	Summary  MonthSummary      `json:"summary"`
	IsAdmin  bool              `json:"isAdmin"`
}

// ManagePaymentResponse is the render context for the admin add/edit payment
// page: the student, the payment under edit (if any), and the history.
type ManagePaymentResponse struct {
	Student  StudentResponse   `json:"student"`
	Payment  *PaymentResponse  `json:"payment,omitempty"`
	Payments []PaymentResponse `json:"payments"`
}

// NewPaymentResponse maps a payment model to its response form
func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		Month:    p.Month,
		Amount:   p.Amount,
		DatePaid: p.DatePaid,
	}
}

// NewPaymentResponses maps a slice of payment models
func NewPaymentResponses(payments []models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}
