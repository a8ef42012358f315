package phone

import (
	"strings"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
	"github.com/zostay/go-contact/internal/digits"
)

// Type classifies what a phone number is used for.
type Type string

// The phone number types.
const (
	TypeHome   Type = "home"
	TypeWork   Type = "work"
	TypeMobile Type = "mobile"
	TypeFax    Type = "fax"
)

// Number is an immutable NANP phone number. A complete Number carries ten
// significant digits (area code, exchange code, line number); a local
// Number carries seven (no area code). A Number may additionally carry an
// extension, a country, and a Type, all optional.
//
// Numbers are constructed by Parse, by a Builder, or by the United States
// specialization in this package. Once constructed they never change.
type Number struct {
	area     AreaCode
	exchange ExchangeCode
	line     LineNumber
	ext      Extension
	country  geo.Country
	kind     Type
}

// Parse extracts a Number from free-form input. All non-digit characters
// are stripped first. Ten remaining digits are sliced into area code,
// exchange code, and line number. Seven remaining digits yield a local
// Number with no area code. Any other count fails with a
// *contact.InvalidInputError.
func Parse(s string) (*Number, error) {
	ds := digits.Strip(s)
	switch len(ds) {
	case AreaCodeWidth + ExchangeCodeWidth + LineNumberWidth:
		return &Number{
			area:     AreaCode{ds[0:3]},
			exchange: ExchangeCode{ds[3:6]},
			line:     LineNumber{ds[6:10]},
		}, nil
	case ExchangeCodeWidth + LineNumberWidth:
		return &Number{
			exchange: ExchangeCode{ds[0:3]},
			line:     LineNumber{ds[3:7]},
		}, nil
	}
	return nil, &contact.InvalidInputError{
		Value:      s,
		Constraint: "phone number must be 10 digits or 7 digits",
	}
}

// AreaCode returns the number's area code. For a local number this is the
// zero AreaCode.
func (n *Number) AreaCode() AreaCode { return n.area }

// ExchangeCode returns the number's exchange code.
func (n *Number) ExchangeCode() ExchangeCode { return n.exchange }

// LineNumber returns the number's line number.
func (n *Number) LineNumber() LineNumber { return n.line }

// Extension returns the number's extension, which is the zero Extension
// when none is set.
func (n *Number) Extension() Extension { return n.ext }

// Country returns the number's country, which is the zero Country when
// none is set.
func (n *Number) Country() geo.Country { return n.country }

// Type returns the number's type, which is empty when none is set.
func (n *Number) Type() Type { return n.kind }

// IsLocal is true when the number has no area code, i.e., it carries only
// the seven digits of exchange code and line number.
func (n *Number) IsLocal() bool { return n.area.IsZero() }

// Digits returns the significant digits of the number concatenated without
// separators: ten digits for a complete number, seven for a local one. The
// extension is not included.
func (n *Number) Digits() string {
	return n.area.Digits() + n.exchange.Digits() + n.line.Digits()
}

// Equal reports whether two numbers carry the same digits, extension,
// country, and type.
func (n *Number) Equal(other *Number) bool {
	if n == nil || other == nil {
		return n == other
	}
	return *n == *other
}

// String renders the number in the canonical dashed form, "503-555-0123"
// for a complete number or "555-0123" for a local one. The extension and
// country are not rendered; see Format.
func (n *Number) String() string {
	parts := make([]string, 0, 3)
	if !n.area.IsZero() {
		parts = append(parts, n.area.Digits())
	}
	parts = append(parts, n.exchange.Digits(), n.line.Digits())
	return strings.Join(parts, "-")
}

// Format renders the number like String and appends the extension, when
// present, as " x1234".
func (n *Number) Format() string {
	s := n.String()
	if !n.ext.IsZero() {
		s += " x" + n.ext.Digits()
	}
	return s
}
