package utils

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhoneNumber normalizes a contact number for storage and WhatsApp
// deep links. Numbers without a country code are assumed local (UAE, +971).
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigit.ReplaceAllString(phoneNumber, "")
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "971") {
		digits = "971" + strings.TrimLeft(digits, "0")
	}
	return digits
}

// LooksLikePhoneNumber reports whether the contact field is a dialable number
// rather than an email or handle. Local UAE mobile numbers are 9 digits after
// the trunk zero.
func LooksLikePhoneNumber(contact string) bool {
	digits := nonDigit.ReplaceAllString(contact, "")
	return len(digits) >= 9 && len(digits) <= 15
}
