// Package phone normalizes Senegalese phone numbers to E.164.
package phone

import (
	"errors"
	"strings"
	"unicode"
)

const (
	senegalCode      = "221"
	nationalDigits   = 9
	internationalPfx = "00"
)

var ErrInvalidNumber = errors.New("invalid phone number")

// FormatSenegal turns "77 123 45 67", "0022177..." or "22177..." into
// "+221771234567". Numbers already in "+<code>" form for another country
// are returned stripped of separators.
func FormatSenegal(raw string) (string, error) {
	number := strip(raw)
	if number == "" {
		return "", ErrInvalidNumber
	}

	plus := strings.HasPrefix(number, "+")
	digits := strings.TrimPrefix(number, "+")
	if !allDigits(digits) {
		return "", ErrInvalidNumber
	}

	switch {
	case plus && strings.HasPrefix(digits, senegalCode):
		if len(digits) != len(senegalCode)+nationalDigits {
			return "", ErrInvalidNumber
		}
		return "+" + digits, nil
	case plus:
		if len(digits) < 8 {
			return "", ErrInvalidNumber
		}
		return "+" + digits, nil
	case strings.HasPrefix(digits, internationalPfx+senegalCode):
		return FormatSenegal("+" + strings.TrimPrefix(digits, internationalPfx))
	case strings.HasPrefix(digits, senegalCode) && len(digits) == len(senegalCode)+nationalDigits:
		return "+" + digits, nil
	case len(digits) == nationalDigits && (digits[0] == '7' || digits[0] == '3'):
		return "+" + senegalCode + digits, nil
	}

	return "", ErrInvalidNumber
}

// Canonical is FormatSenegal when the number is recognised, otherwise the
// input with separators removed. It never fails, so it can be used as a key.
func Canonical(raw string) string {
	if formatted, err := FormatSenegal(raw); err == nil {
		return formatted
	}
	return strip(raw)
}

func strip(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ', r == '.', r == '-', r == '(', r == ')':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
