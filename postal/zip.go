package postal

import (
	"strings"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/internal/digits"
)

// Widths of the ZIP code components.
const (
	// ZipCodeWidth is the number of digits in the base ZIP code.
	ZipCodeWidth = 5

	// ZipExtensionWidth is the number of digits in the ZIP+4 extension.
	ZipExtensionWidth = 4
)

// Zip is an immutable US postal code: five digits plus an optional four
// digit extension (ZIP+4). The zero value means "no ZIP code set".
type Zip struct {
	code string
	ext  string
}

// ParseZip extracts a Zip from free-form input. All non-digit characters
// are stripped first, so "12345", "12345-6789", and "123456789" are all
// accepted. Five remaining digits yield a bare ZIP; nine yield a ZIP+4.
// Any other count fails with a *contact.InvalidInputError.
func ParseZip(s string) (Zip, error) {
	ds := digits.Strip(s)
	switch len(ds) {
	case ZipCodeWidth:
		return Zip{code: ds}, nil
	case ZipCodeWidth + ZipExtensionWidth:
		return Zip{code: ds[:ZipCodeWidth], ext: ds[ZipCodeWidth:]}, nil
	}
	return Zip{}, &contact.InvalidInputError{
		Value:      s,
		Constraint: "ZIP code must be 5 digits or 9 digits",
	}
}

// IsZero is true when no ZIP code is set.
func (z Zip) IsZero() bool { return z.code == "" }

// Code returns the five digit base ZIP code.
func (z Zip) Code() string { return z.code }

// Extension returns the four digit ZIP+4 extension, or the empty string
// when none is set.
func (z Zip) Extension() string { return z.ext }

// HasExtension is true when the ZIP carries a ZIP+4 extension.
func (z Zip) HasExtension() bool { return z.ext != "" }

// Digits returns every digit of the ZIP concatenated without the dash:
// nine digits for a ZIP+4, five otherwise.
func (z Zip) Digits() string { return z.code + z.ext }

// Compare orders ZIP codes lexicographically by their digit strings, base
// code first. A bare ZIP sorts before the same ZIP with an extension.
func (z Zip) Compare(other Zip) int {
	if c := strings.Compare(z.code, other.code); c != 0 {
		return c
	}
	return strings.Compare(z.ext, other.ext)
}

// String renders the ZIP in its canonical form: "12345" or "12345-6789".
func (z Zip) String() string {
	if z.ext == "" {
		return z.code
	}
	return z.code + "-" + z.ext
}
