package phone

import (
	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// Builder assembles a Number field by field. Setters may be called in any
// order and always succeed; validation that spans fields happens only in
// the terminal Build call. Build may be called any number of times and
// each call constructs a fresh Number from the builder's current fields;
// building does not reset or consume the builder.
//
// A Builder is not safe for concurrent use. It is assumed to have a single
// owner for its lifetime.
type Builder struct {
	area     AreaCode
	exchange ExchangeCode
	line     LineNumber
	ext      Extension
	country  geo.Country
	kind     Type
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// From returns a Builder pre-populated from an existing Number. Every
// field the source carries is preserved, including the optional extension,
// country, and type.
func From(n *Number) *Builder {
	return &Builder{
		area:     n.area,
		exchange: n.exchange,
		line:     n.line,
		ext:      n.ext,
		country:  n.country,
		kind:     n.kind,
	}
}

// SetAreaCode sets the area code and returns the builder.
func (b *Builder) SetAreaCode(ac AreaCode) *Builder {
	b.area = ac
	return b
}

// SetExchangeCode sets the exchange code and returns the builder.
func (b *Builder) SetExchangeCode(ec ExchangeCode) *Builder {
	b.exchange = ec
	return b
}

// SetLineNumber sets the line number and returns the builder.
func (b *Builder) SetLineNumber(ln LineNumber) *Builder {
	b.line = ln
	return b
}

// SetExtension sets the extension and returns the builder.
func (b *Builder) SetExtension(x Extension) *Builder {
	b.ext = x
	return b
}

// SetCountry sets the country and returns the builder.
func (b *Builder) SetCountry(c geo.Country) *Builder {
	b.country = c
	return b
}

// SetType sets the number's type and returns the builder.
func (b *Builder) SetType(k Type) *Builder {
	b.kind = k
	return b
}

// Build constructs a Number from the builder's fields. The exchange code
// and line number are required; the area code and everything else is
// optional (a Number without an area code is a local number). When a
// required field is missing, Build fails with a
// *contact.InvalidInputError and the builder is left unchanged.
func (b *Builder) Build() (*Number, error) {
	if b.exchange.IsZero() || b.line.IsZero() {
		return nil, &contact.InvalidInputError{
			Value:      b.partial(),
			Constraint: "an exchange code and a line number are required",
		}
	}
	return &Number{
		area:     b.area,
		exchange: b.exchange,
		line:     b.line,
		ext:      b.ext,
		country:  b.country,
		kind:     b.kind,
	}, nil
}

// partial renders whatever digits the builder holds, for error messages.
func (b *Builder) partial() string {
	return b.area.Digits() + b.exchange.Digits() + b.line.Digits()
}
