package models

import "strings"

// Months lists the twelve canonical calendar month names accepted for payments.
var Months = []string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

// CanonicalMonth resolves a month name case-insensitively to its canonical
// form. The second return value is false for unknown names.
func CanonicalMonth(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, m := range Months {
		if strings.EqualFold(m, trimmed) {
			return m, true
		}
	}
	return "", false
}
