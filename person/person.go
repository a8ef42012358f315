package person

import (
	"time"

	"github.com/araddon/dateparse"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/email"
	"github.com/zostay/go-contact/phone"
	"github.com/zostay/go-contact/postal"
)

// Person is an immutable aggregate of a name and its contact details.
// Every detail besides the name is optional.
type Person struct {
	name  Name
	email *email.Address
	phone *phone.Number
	addr  *postal.Address
	birth time.Time
}

// ParseBirthdate parses a birth date from nearly any common format
// ("1986-06-21", "June 21, 1986", "6/21/86", ...). It fails with a
// *contact.InvalidInputError when no format matches.
func ParseBirthdate(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, &contact.InvalidInputError{
			Value:      s,
			Constraint: "not a recognizable date",
		}
	}
	return t, nil
}

// Builder assembles a Person. Setters may be called in any order and
// always succeed; the only required field, the name, is checked in the
// terminal Build call. Build may be called any number of times and each
// call constructs a fresh Person.
//
// A Builder is not safe for concurrent use. It is assumed to have a
// single owner for its lifetime.
type Builder struct {
	name  *Name
	email *email.Address
	phone *phone.Number
	addr  *postal.Address
	birth time.Time
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// From returns a Builder pre-populated from an existing Person,
// preserving every optional detail it carries.
func From(p *Person) *Builder {
	name := p.name
	return &Builder{
		name:  &name,
		email: p.email,
		phone: p.phone,
		addr:  p.addr,
		birth: p.birth,
	}
}

// SetName sets the name and returns the builder.
func (b *Builder) SetName(n *Name) *Builder {
	b.name = n
	return b
}

// SetEmail sets the email address and returns the builder.
func (b *Builder) SetEmail(a *email.Address) *Builder {
	b.email = a
	return b
}

// SetPhone sets the phone number and returns the builder.
func (b *Builder) SetPhone(n *phone.Number) *Builder {
	b.phone = n
	return b
}

// SetAddress sets the postal address and returns the builder.
func (b *Builder) SetAddress(a *postal.Address) *Builder {
	b.addr = a
	return b
}

// SetBirthdate sets the birth date and returns the builder.
func (b *Builder) SetBirthdate(t time.Time) *Builder {
	b.birth = t
	return b
}

// Build constructs a Person from the builder's fields. The name is
// required; everything else is optional. When the name is missing, Build
// fails with a *contact.InvalidInputError.
func (b *Builder) Build() (*Person, error) {
	if b.name == nil {
		return nil, &contact.InvalidInputError{
			Value:      "",
			Constraint: "a person requires a name",
		}
	}
	return &Person{
		name:  *b.name,
		email: b.email,
		phone: b.phone,
		addr:  b.addr,
		birth: b.birth,
	}, nil
}

// Name returns the person's name.
func (p *Person) Name() Name { return p.name }

// Email returns the person's email address, or nil when none is set.
func (p *Person) Email() *email.Address { return p.email }

// Phone returns the person's phone number, or nil when none is set.
func (p *Person) Phone() *phone.Number { return p.phone }

// Address returns the person's postal address, or nil when none is set.
func (p *Person) Address() *postal.Address { return p.addr }

// Birthdate returns the person's birth date, which is the zero time when
// none is set.
func (p *Person) Birthdate() time.Time { return p.birth }

// String renders the person's name.
func (p *Person) String() string { return p.name.String() }
