package postal

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// validate checks the required fields of an address at Build time. Built
// once; validator instances cache struct metadata and are safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// addressInput is the shape handed to the validator. Only fields that are
// required on a validated Address appear here.
type addressInput struct {
	Street  string `validate:"required"`
	City    string `validate:"required"`
	Zip     string `validate:"required"`
	Country string `validate:"required"`
}

// Builder assembles an Address field by field. Setters may be called in
// any order and always succeed; required-field validation happens only in
// the terminal Build call. Build may be called any number of times and
// each call constructs a fresh Address from the builder's current fields.
//
// A Builder is not safe for concurrent use. It is assumed to have a single
// owner for its lifetime.
type Builder struct {
	street  string
	unit    string
	city    string
	zip     Zip
	state   geo.State
	country geo.Country
	kind    Type
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// From returns a Builder pre-populated from an existing Address. Every
// field the source carries is preserved, including the optional unit,
// state, and type.
func From(a *Address) *Builder {
	return &Builder{
		street:  a.street,
		unit:    a.unit,
		city:    a.city,
		zip:     a.zip,
		state:   a.state,
		country: a.country,
		kind:    a.kind,
	}
}

// SetStreet sets the street line and returns the builder.
func (b *Builder) SetStreet(street string) *Builder {
	b.street = strings.TrimSpace(street)
	return b
}

// SetUnit sets the unit, apartment, or suite line and returns the builder.
func (b *Builder) SetUnit(unit string) *Builder {
	b.unit = strings.TrimSpace(unit)
	return b
}

// SetCity sets the city and returns the builder.
func (b *Builder) SetCity(city string) *Builder {
	b.city = strings.TrimSpace(city)
	return b
}

// SetZip sets the ZIP code and returns the builder.
func (b *Builder) SetZip(z Zip) *Builder {
	b.zip = z
	return b
}

// SetState sets the state and returns the builder.
func (b *Builder) SetState(st geo.State) *Builder {
	b.state = st
	return b
}

// SetCountry sets the country and returns the builder.
func (b *Builder) SetCountry(c geo.Country) *Builder {
	b.country = c
	return b
}

// SetType sets the address's type and returns the builder.
func (b *Builder) SetType(k Type) *Builder {
	b.kind = k
	return b
}

// Build constructs an Address from the builder's fields. The street, city,
// ZIP code, and country are required; the unit, state, and type are
// optional. When a required field is missing, Build fails with a
// *contact.InvalidInputError naming the missing fields and the builder is
// left unchanged.
func (b *Builder) Build() (*Address, error) {
	in := addressInput{
		Street:  b.street,
		City:    b.city,
		Zip:     b.zip.String(),
		Country: b.country.String(),
	}
	if err := validate.Struct(in); err != nil {
		return nil, missingFieldsError(b, err)
	}
	return &Address{
		street:  b.street,
		unit:    b.unit,
		city:    b.city,
		zip:     b.zip,
		state:   b.state,
		country: b.country,
		kind:    b.kind,
	}, nil
}

// missingFieldsError converts the validator's error into the library's
// *contact.InvalidInputError, naming each missing field.
func missingFieldsError(b *Builder, err error) error {
	var verrs validator.ValidationErrors
	fields := make([]string, 0, 4)
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
	}
	partial := &Address{
		street:  b.street,
		unit:    b.unit,
		city:    b.city,
		zip:     b.zip,
		state:   b.state,
		country: b.country,
	}
	return &contact.InvalidInputError{
		Value:      partial.String(),
		Constraint: "required address fields missing: " + strings.Join(fields, ", "),
	}
}
