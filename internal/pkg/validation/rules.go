package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Aadhar number pattern - exactly 12 digits
	AadharPattern = `^\d{12}$`

	// Phone pattern - optional leading '+', 10 to 15 digits
	PhonePattern = `^\+?\d{10,15}$`

	// JoiningDateLayout is the accepted calendar-date format for signup
	JoiningDateLayout = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Aadhar *regexp.Regexp
	Phone  *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Aadhar: regexp.MustCompile(AadharPattern),
	Phone:  regexp.MustCompile(PhonePattern),
}

// IsValidEmail checks an email address against the standard grammar.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidAadhar checks that an aadhar number is exactly 12 decimal digits.
func IsValidAadhar(aadhar string) bool {
	return CompiledPatterns.Aadhar.MatchString(aadhar)
}

// IsValidPhone checks a phone number: with any leading '+' stripped, the digit
// count must be in [10,15].
func IsValidPhone(phone string) bool {
	stripped := strings.TrimPrefix(phone, "+")
	if len(stripped) < 10 || len(stripped) > 15 {
		return false
	}
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidDate reports whether the value parses as an ISO calendar date.
func IsValidDate(value string) bool {
	_, err := time.Parse(JoiningDateLayout, value)
	return err == nil
}
