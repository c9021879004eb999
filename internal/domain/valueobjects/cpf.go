// Package valueobjects contains immutable value objects that represent domain
// concepts without identity. They are compared by their values, not by identity.
package valueobjects

import (
	"regexp"
	"strings"
)

// CPF is the Brazilian national taxpayer identifier: 11 digits, the last two
// being check digits computed by a weighted-sum mod-11 algorithm.
//
// Value Object Pattern: no identity, compared by value, immutable.
// The raw input (with punctuation like "529.982.247-25") is preserved for
// display; Digits() returns the normalized 11-digit form used for storage
// and uniqueness checks.
type CPF struct {
	raw string
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NewCPF wraps a raw CPF string without validating it.
// Validation is a validator concern: entities must be constructible from
// user input so the validator can report every broken rule at once.
func NewCPF(raw string) CPF {
	return CPF{raw: raw}
}

// String returns the CPF as originally provided.
func (c CPF) String() string {
	return c.raw
}

// Digits returns the CPF with all non-digit characters stripped.
func (c CPF) Digits() string {
	return nonDigits.ReplaceAllString(c.raw, "")
}

// IsValid reports whether the CPF passes the national check-digit algorithm:
// exactly 11 digits, not an all-identical sequence, and both check digits
// matching the weighted sums mod 11 (remainder < 2 maps to 0, otherwise
// 11 - remainder).
func (c CPF) IsValid() bool {
	digits := c.Digits()
	if len(digits) != 11 {
		return false
	}

	if strings.Count(digits, digits[:1]) == len(digits) {
		return false
	}

	if digitAt(digits, 9) != checkDigit(digits, 9) {
		return false
	}
	return digitAt(digits, 10) == checkDigit(digits, 10)
}

// IsEmpty reports whether the CPF has no digits at all.
func (c CPF) IsEmpty() bool {
	return strings.TrimSpace(c.raw) == ""
}

// checkDigit computes the check digit verified against position pos.
// The first pos digits are weighted (pos+1)..2 left to right.
func checkDigit(digits string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += digitAt(digits, i) * (pos + 1 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}
