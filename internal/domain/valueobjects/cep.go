package valueobjects

import "regexp"

// CEP is the Brazilian postal code: five digits, an optional hyphen, and
// three more digits ("01310-100" or "01310100").
type CEP struct {
	raw string
}

var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// NewCEP wraps a raw postal code string without validating it.
func NewCEP(raw string) CEP {
	return CEP{raw: raw}
}

// String returns the CEP as originally provided.
func (c CEP) String() string {
	return c.raw
}

// IsValid reports whether the CEP matches the accepted format.
func (c CEP) IsValid() bool {
	return cepPattern.MatchString(c.raw)
}

// IsEmpty reports whether the CEP is blank.
func (c CEP) IsEmpty() bool {
	return c.raw == ""
}
