// Package notify carries the one-way payment notification hook. The accounting
// engine emits a typed event after each payment creation; consumers decide how
// to surface it.
package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentRecorded is emitted exactly once per payment creation, never on
// update or delete.
type PaymentRecorded struct {
	StudentID   int64
	StudentName string
	Month       string
	Amount      decimal.Decimal
	Due         decimal.Decimal // due after this payment; <= 0 means paid in full
}

// Complete reports whether the month is paid in full after this payment.
func (e PaymentRecorded) Complete() bool {
	return e.Due.LessThanOrEqual(decimal.Zero)
}

// Notifier consumes payment events.
type Notifier interface {
	PaymentRecorded(ctx context.Context, event PaymentRecorded)
}

// LogNotifier writes payment events to the structured log.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// PaymentRecorded implements Notifier
func (n *LogNotifier) PaymentRecorded(_ context.Context, event PaymentRecorded) {
	evt := n.logger.Info().
		Int64("studentID", event.StudentID).
		Str("student", event.StudentName).
		Str("month", event.Month).
		Str("amount", event.Amount.String())

	if event.Complete() {
		evt.Msg("Payment complete for month")
		return
	}
	evt.Str("due", event.Due.String()).Msg("Student still owes for month")
}
