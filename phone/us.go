package phone

import (
	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// USNumber is a Number whose country is fixed to the United States. It is
// always a complete ten digit number; local numbers cannot become
// USNumbers because state inference needs the area code.
type USNumber struct {
	Number
}

// ParseUS parses free-form input like Parse and converts the result to a
// USNumber. Seven digit input is rejected.
func ParseUS(s string) (*USNumber, error) {
	n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return US(n)
}

// US converts a generic Number to a USNumber, fixing the country to the
// United States. The source's extension and type are preserved. It fails
// with a *contact.InvalidInputError when the source is a local number or
// already carries some other country.
func US(n *Number) (*USNumber, error) {
	if n.IsLocal() {
		return nil, &contact.InvalidInputError{
			Value:      n.String(),
			Constraint: "a United States phone number requires an area code",
		}
	}
	if !n.country.IsZero() && n.country != geo.USA {
		return nil, &contact.InvalidInputError{
			Value:      n.String(),
			Constraint: "the number belongs to country " + n.country.String(),
		}
	}

	un := *n
	un.country = geo.USA
	return &USNumber{un}, nil
}

// State returns the state the number's area code is assigned to. The
// resolution is performed on demand against the static area code tables;
// it fails with a *contact.NotFoundError when the area code is not
// assigned to any state.
func (n *USNumber) State() (geo.State, error) {
	return StateFor(n.area)
}

// USBuilder assembles a USNumber. It behaves like Builder except that the
// country cannot be changed and the area code is required at Build time.
// Like Builder, it is single-owner and not safe for concurrent use.
type USBuilder struct {
	b Builder
}

// NewUSBuilder returns an empty USBuilder.
func NewUSBuilder() *USBuilder {
	return &USBuilder{}
}

// USFrom returns a USBuilder pre-populated from an existing USNumber,
// preserving its extension and type.
func USFrom(n *USNumber) *USBuilder {
	return &USBuilder{b: *From(&n.Number)}
}

// SetAreaCode sets the area code and returns the builder.
func (b *USBuilder) SetAreaCode(ac AreaCode) *USBuilder {
	b.b.SetAreaCode(ac)
	return b
}

// SetExchangeCode sets the exchange code and returns the builder.
func (b *USBuilder) SetExchangeCode(ec ExchangeCode) *USBuilder {
	b.b.SetExchangeCode(ec)
	return b
}

// SetLineNumber sets the line number and returns the builder.
func (b *USBuilder) SetLineNumber(ln LineNumber) *USBuilder {
	b.b.SetLineNumber(ln)
	return b
}

// SetExtension sets the extension and returns the builder.
func (b *USBuilder) SetExtension(x Extension) *USBuilder {
	b.b.SetExtension(x)
	return b
}

// SetType sets the number's type and returns the builder.
func (b *USBuilder) SetType(k Type) *USBuilder {
	b.b.SetType(k)
	return b
}

// SetCountry exists for interface parity with Builder but the country of a
// USNumber is fixed. Setting any country other than the United States
// fails immediately with a *contact.UnsupportedError; setting the United
// States is a no-op.
func (b *USBuilder) SetCountry(c geo.Country) error {
	if c != geo.USA {
		return &contact.UnsupportedError{Op: "SetCountry", On: "phone.USBuilder"}
	}
	return nil
}

// Build constructs a USNumber from the builder's fields. In addition to
// Builder's requirements the area code must be set.
func (b *USBuilder) Build() (*USNumber, error) {
	n, err := b.b.Build()
	if err != nil {
		return nil, err
	}
	return US(n)
}
