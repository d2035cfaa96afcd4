package upi

import (
	"encoding/base64"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLink(t *testing.T) {
	payee := Payee{VPA: "9381422218@naviaxis", Name: "SK Hostel"}

	link := PaymentLink(payee, decimal.NewFromInt(5500), "Monthly Hostel Fee")
	assert.Equal(t, "upi://pay?pa=9381422218@naviaxis&pn=SK+Hostel&am=5500&cu=INR&tn=Monthly+Hostel+Fee", link)
}

func TestPaymentLink_Deterministic(t *testing.T) {
	payee := Payee{VPA: "hostel@upi", Name: "SK Hostel"}
	amount := decimal.NewFromInt(240)

	first := PaymentLink(payee, amount, "Daily Hostel Fee")
	second := PaymentLink(payee, amount, "Daily Hostel Fee")
	assert.Equal(t, first, second)
}

func TestPaymentLink_EscapesNoteAndName(t *testing.T) {
	payee := Payee{VPA: "hostel@upi", Name: "S&K Hostel"}

	link := PaymentLink(payee, decimal.NewFromInt(100), "Fee & Deposit")
	assert.Contains(t, link, "pn=S%26K+Hostel")
	assert.Contains(t, link, "tn=Fee+%26+Deposit")
	assert.Contains(t, link, "cu=INR")
}

func TestQRCodeBase64(t *testing.T) {
	encoded, err := QRCodeBase64("upi://pay?pa=hostel@upi&am=240")
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
