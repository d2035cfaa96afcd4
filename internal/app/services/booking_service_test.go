package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/upi"
)

func TestBookingService_Book(t *testing.T) {
	service := NewBookingService(upi.Payee{VPA: "hostel@upi", Name: "SK Hostel"})

	tests := []struct {
		plan     string
		amount   int64
		editable bool
		note     string
	}{
		{plan: "daily", amount: 240, editable: false, note: "Daily Hostel Fee"},
		{plan: "monthly", amount: 5500, editable: true, note: "Monthly Hostel Fee"},
		{plan: "yearly", amount: 55000, editable: true, note: "Yearly Hostel Fee"},
	}

	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			booking, err := service.Book(tt.plan)
			require.NoError(t, err)

			assert.Equal(t, tt.plan, booking.Plan)
			assert.True(t, booking.Amount.Equal(decimal.NewFromInt(tt.amount)))
			assert.Equal(t, tt.editable, booking.Editable)
			assert.Equal(t, tt.note, booking.Note)
			assert.Equal(t, "hostel@upi", booking.UPIID)
			assert.Contains(t, booking.UPILink, "upi://pay?pa=hostel@upi")
			assert.Contains(t, booking.UPILink, "cu=INR")
			assert.NotEmpty(t, booking.QRCode)
		})
	}
}

func TestBookingService_Book_UnknownPlan(t *testing.T) {
	service := NewBookingService(upi.Payee{VPA: "hostel@upi", Name: "SK Hostel"})

	_, err := service.Book("weekly")
	assert.ErrorIs(t, err, apperrors.ErrUnknownPlan)

	_, err = service.Book("")
	assert.ErrorIs(t, err, apperrors.ErrUnknownPlan)
}
