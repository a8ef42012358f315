package phone

import (
	"strings"

	"github.com/zostay/go-contact/internal/digits"
)

// Widths of the fixed-width NANP number components.
const (
	// AreaCodeWidth is the number of digits in an area code.
	AreaCodeWidth = 3

	// ExchangeCodeWidth is the number of digits in an exchange code.
	ExchangeCodeWidth = 3

	// LineNumberWidth is the number of digits in a line number.
	LineNumberWidth = 4
)

// Extension digit count bounds. Unlike the NANP components, an extension
// has no fixed width; anything from a single digit up to six is accepted.
const (
	MinExtensionWidth = 1
	MaxExtensionWidth = 6
)

// AreaCode is the first three digits of a ten digit NANP number,
// identifying the numbering plan area. The zero value means "no area code"
// and is what a local (seven digit) number carries.
type AreaCode struct {
	digits string
}

// ParseAreaCode strips s of non-digit characters and returns the AreaCode
// if exactly three digits remain. Otherwise it returns a
// *contact.InvalidInputError.
func ParseAreaCode(s string) (AreaCode, error) {
	ds, err := digits.Exact(s, AreaCodeWidth)
	if err != nil {
		return AreaCode{}, err
	}
	return AreaCode{ds}, nil
}

// IsZero is true when no area code is set.
func (ac AreaCode) IsZero() bool { return ac.digits == "" }

// Digits returns the three digit string, or the empty string for the zero
// value.
func (ac AreaCode) Digits() string { return ac.digits }

// Compare orders area codes lexicographically by digit string. It returns
// -1, 0, or 1 in the manner of strings.Compare.
func (ac AreaCode) Compare(other AreaCode) int {
	return strings.Compare(ac.digits, other.digits)
}

// String returns the three digit string.
func (ac AreaCode) String() string { return ac.digits }

// ExchangeCode is the middle three digits of a ten digit NANP number (the
// first three of a local seven digit number), identifying the central
// office exchange.
type ExchangeCode struct {
	digits string
}

// ParseExchangeCode strips s of non-digit characters and returns the
// ExchangeCode if exactly three digits remain. Otherwise it returns a
// *contact.InvalidInputError.
func ParseExchangeCode(s string) (ExchangeCode, error) {
	ds, err := digits.Exact(s, ExchangeCodeWidth)
	if err != nil {
		return ExchangeCode{}, err
	}
	return ExchangeCode{ds}, nil
}

// IsZero is true when no exchange code is set.
func (ec ExchangeCode) IsZero() bool { return ec.digits == "" }

// Digits returns the three digit string, or the empty string for the zero
// value.
func (ec ExchangeCode) Digits() string { return ec.digits }

// Compare orders exchange codes lexicographically by digit string.
func (ec ExchangeCode) Compare(other ExchangeCode) int {
	return strings.Compare(ec.digits, other.digits)
}

// String returns the three digit string.
func (ec ExchangeCode) String() string { return ec.digits }

// LineNumber is the final four digits of a NANP number, identifying the
// subscriber line within the exchange.
type LineNumber struct {
	digits string
}

// ParseLineNumber strips s of non-digit characters and returns the
// LineNumber if exactly four digits remain. Otherwise it returns a
// *contact.InvalidInputError.
func ParseLineNumber(s string) (LineNumber, error) {
	ds, err := digits.Exact(s, LineNumberWidth)
	if err != nil {
		return LineNumber{}, err
	}
	return LineNumber{ds}, nil
}

// IsZero is true when no line number is set.
func (ln LineNumber) IsZero() bool { return ln.digits == "" }

// Digits returns the four digit string, or the empty string for the zero
// value.
func (ln LineNumber) Digits() string { return ln.digits }

// Compare orders line numbers lexicographically by digit string.
func (ln LineNumber) Compare(other LineNumber) int {
	return strings.Compare(ln.digits, other.digits)
}

// String returns the four digit string.
func (ln LineNumber) String() string { return ln.digits }

// Extension is an optional dialing extension attached to a Number. It is
// not part of the ten significant NANP digits and has no fixed width.
type Extension struct {
	digits string
}

// ParseExtension strips s of non-digit characters and returns the Extension
// if between one and six digits remain. Otherwise it returns a
// *contact.InvalidInputError.
func ParseExtension(s string) (Extension, error) {
	ds, err := digits.Between(s, MinExtensionWidth, MaxExtensionWidth)
	if err != nil {
		return Extension{}, err
	}
	return Extension{ds}, nil
}

// IsZero is true when no extension is set.
func (x Extension) IsZero() bool { return x.digits == "" }

// Digits returns the extension's digit string, or the empty string for the
// zero value.
func (x Extension) Digits() string { return x.digits }

// String returns the extension's digit string.
func (x Extension) String() string { return x.digits }
