package services

import (
	"fmt"
	"strings"

	"github.com/skhostel/hostelpay/internal/app/models"
	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/pkg/apperrors"
	"github.com/skhostel/hostelpay/internal/pkg/upi"
)

// BookingService resolves plans and builds the UPI payment link + QR render
// context for the booking page.
type BookingService struct {
	payee upi.Payee
}

// NewBookingService creates a new BookingService
func NewBookingService(payee upi.Payee) *BookingService {
	return &BookingService{payee: payee}
}

// Book builds the booking context for a plan name. Unknown plans are a
// client error.
func (s *BookingService) Book(plan string) (*dto.BookingResponse, error) {
	p, ok := models.PlanByName(plan)
	if !ok {
		return nil, apperrors.ErrUnknownPlan
	}

	note := fmt.Sprintf("%s Hostel Fee", capitalize(p.Name))
	link := upi.PaymentLink(s.payee, p.Amount, note)

	qr, err := upi.QRCodeBase64(link)
	if err != nil {
		return nil, fmt.Errorf("error generating QR code: %w", err)
	}

	return &dto.BookingResponse{
		Plan:      p.Name,
		Amount:    p.Amount,
		Editable:  p.Editable,
		UPILink:   link,
		UPIID:     s.payee.VPA,
		PayeeName: s.payee.Name,
		Note:      note,
		QRCode:    qr,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
