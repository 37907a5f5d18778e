package checkout

import (
	"fmt"
	"strings"

	"stayfront/models"
)

// ValidationError is a field-level guest form failure. It blocks the
// prebook call entirely; nothing is sent upstream.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Disposable mail providers are rejected outright: booking confirmations
// and cancellation links must reach a real mailbox.
var disposableEmailDomains = map[string]bool{
	"mailinator.com":    true,
	"guerrillamail.com": true,
	"10minutemail.com":  true,
	"tempmail.com":      true,
	"temp-mail.org":     true,
	"throwawaymail.com": true,
	"yopmail.com":       true,
	"trashmail.com":     true,
	"sharklasers.com":   true,
	"getnada.com":       true,
	"maildrop.cc":       true,
	"dispostable.com":   true,
}

const (
	phoneMinDigits = 6
	phoneMaxDigits = 15
)

// ValidateGuest enforces the guest-step form rules.
func ValidateGuest(g models.GuestDetails) error {
	if strings.TrimSpace(g.FirstName) == "" {
		return &ValidationError{Field: "firstName", Message: "First name is required."}
	}
	if strings.TrimSpace(g.LastName) == "" {
		return &ValidationError{Field: "lastName", Message: "Last name is required."}
	}
	if err := validateEmail(g.Email); err != nil {
		return err
	}
	if err := validatePhone(g.Phone); err != nil {
		return err
	}
	if !g.AcceptedTerms {
		return &ValidationError{Field: "acceptedTerms", Message: "You must accept the booking terms to continue."}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	domain := email[at+1:]
	if disposableEmailDomains[domain] {
		return &ValidationError{Field: "email", Message: "Disposable email addresses are not accepted."}
	}
	return nil
}

// validatePhone checks the local-number digit count after stripping a
// leading country code. A country code is a "+" followed by its own
// digit group ("+44 7911 123456" strips "44").
func validatePhone(phone string) error {
	trimmed := strings.TrimSpace(phone)

	rest := trimmed
	if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
		// Drop the country-code group: digits up to the first separator.
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == len(rest) {
			// No separator; country codes run 1-3 digits, assume 2.
			if len(rest) > 2 {
				rest = rest[2:]
			}
		} else {
			rest = rest[i:]
		}
	}

	local := 0
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			local++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separators are fine
		default:
			return &ValidationError{Field: "phone", Message: "Please enter a valid phone number."}
		}
	}

	if local < phoneMinDigits || local > phoneMaxDigits {
		return &ValidationError{Field: "phone", Message: "Please enter a valid phone number."}
	}
	return nil
}
