package usecase

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "john.doe@example.com", "x-1@mail.example.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "a@b", "a b@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  welcome50 "); got != "WELCOME50" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
