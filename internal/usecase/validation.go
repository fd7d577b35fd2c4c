package usecase

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// ValidateEmail checks the address shape accepted at registration.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeCouponCode canonicalizes a coupon code for lookup and storage.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
