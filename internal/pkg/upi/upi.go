// Package upi builds UPI deep links and renders them as QR images.
package upi

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// Payee identifies the UPI collection account.
type Payee struct {
	VPA  string // virtual payment address, e.g. "9381422218@naviaxis"
	Name string
}

// PaymentLink builds the deterministic upi://pay deep link for the given payee,
// amount and note. The note and payee name are URL-escaped; currency is fixed
// to INR.
func PaymentLink(payee Payee, amount decimal.Decimal, note string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		payee.VPA,
		url.QueryEscape(payee.Name),
		amount.String(),
		url.QueryEscape(note),
	)
}

// QRCodeBase64 renders the given string as a PNG QR image and returns it
// base64-encoded for embedding in the display layer.
func QRCodeBase64(data string) (string, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
