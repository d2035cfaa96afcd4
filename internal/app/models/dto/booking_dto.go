package dto

import "github.com/shopspring/decimal"

// BookingResponse is the render context for the booking/QR page of a plan.
type BookingResponse struct {
	Plan      string          `json:"plan" example:"monthly"`
	Amount    decimal.Decimal `json:"amount" example:"5500"`
	Editable  bool            `json:"editable"`
	UPILink   string          `json:"upiLink"`
	UPIID     string          `json:"upiId"`
	PayeeName string          `json:"payeeName"`
	Note      string          `json:"note"`
	QRCode    string          `json:"qrCode"` // base64-encoded PNG
}
