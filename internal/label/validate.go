package label

import (
	"fmt"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

// ValidationError reports bad user input found before any payload
// bytes are produced. It is always recoverable by correcting the
// field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CheckDigit computes the UPC-A check digit for an 11-digit payload.
// The caller guarantees upc11 is exactly 11 ASCII digits.
func CheckDigit(upc11 string) byte {
	var odd, even int
	for i := 0; i < len(upc11); i++ {
		d := int(upc11[i] - '0')
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
	}
	check := (10 - (odd*3+even)%10) % 10
	return byte('0' + check)
}

// EnsureUPC12 normalizes raw input to a 12-digit UPC-A. Non-digits are
// stripped first. 11 digits get the computed check digit appended; 12
// digits must already carry a correct one. Anything else is rejected.
func EnsureUPC12(raw string) (string, bool) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	switch len(digits) {
	case 11:
		return string(digits) + string(CheckDigit(string(digits))), true
	case 12:
		if digits[11] == CheckDigit(string(digits[:11])) {
			return string(digits), true
		}
	}
	return "", false
}

// SanitizeText strips non-ASCII characters and truncates to max. The
// ZPL renderer uses it so its text survives any firmware code page;
// the EPL renderer has its own CP850-aware sanitizer.
func SanitizeText(value string, max int) string {
	out := make([]byte, 0, len(value))
	for _, r := range value {
		if r >= 0x20 && r < 0x7f {
			out = append(out, byte(r))
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return string(out)
}

// truncate shortens text to at most max characters, marking the cut
// with an ellipsis. The result never exceeds max, so layout character
// budgets hold.
func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// validate checks fields ahead of rendering. On success it returns the
// normalized 12-digit UPC.
func validate(f models.LabelFields) (string, error) {
	if f.ItemNumber == "" {
		return "", &ValidationError{Field: "item number", Reason: "must not be empty"}
	}
	if f.UPC == "" {
		return "", &ValidationError{Field: "upc", Reason: "must not be empty"}
	}
	upc12, ok := EnsureUPC12(f.UPC)
	if !ok {
		return "", &ValidationError{Field: "upc", Reason: "must be 11 or 12 digits with a valid check digit"}
	}
	if f.Casepack < 0 {
		return "", &ValidationError{Field: "casepack", Reason: "must not be negative"}
	}
	if f.Copies < 1 {
		return "", &ValidationError{Field: "copies", Reason: "must be at least 1"}
	}
	return upc12, nil
}
