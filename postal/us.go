package postal

import (
	"fmt"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// USAddress is an Address whose country is fixed to the United States and
// whose state is always known: either set explicitly or inferred from the
// ZIP code when it was not.
type USAddress struct {
	Address
}

// US converts a generic Address to a USAddress, fixing the country to the
// United States. When the source carries no state, the state is resolved
// from the ZIP code against the static USPS range tables; a ZIP outside
// every known range makes the conversion fail with an error chain that
// wraps the lookup's *contact.InvalidInputError. It also fails when the
// source already carries some other country. The source's unit and type
// are preserved.
func US(a *Address) (*USAddress, error) {
	if !a.country.IsZero() && a.country != geo.USA {
		return nil, &contact.InvalidInputError{
			Value:      a.String(),
			Constraint: "the address belongs to country " + a.country.String(),
		}
	}

	ua := *a
	ua.country = geo.USA
	if ua.state.IsZero() {
		st, err := StateForZip(ua.zip)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve the state of the address: %w", err)
		}
		ua.state = st
	}
	return &USAddress{ua}, nil
}

// State returns the address's state. Unlike a generic Address, this is
// never the zero State: conversion to USAddress resolved it.
func (a *USAddress) State() geo.State { return a.state }

// USBuilder assembles a USAddress. It behaves like Builder except that
// the country cannot be changed and the state is resolved from the ZIP
// code at Build time when it was not set explicitly. Setters never fail;
// a ZIP that resolves to no state is reported only by Build. Like
// Builder, it is single-owner and not safe for concurrent use.
type USBuilder struct {
	b Builder
}

// NewUSBuilder returns an empty USBuilder.
func NewUSBuilder() *USBuilder {
	return &USBuilder{}
}

// USFrom returns a USBuilder pre-populated from an existing USAddress,
// preserving its unit, state, and type.
func USFrom(a *USAddress) *USBuilder {
	return &USBuilder{b: *From(&a.Address)}
}

// SetStreet sets the street line and returns the builder.
func (b *USBuilder) SetStreet(street string) *USBuilder {
	b.b.SetStreet(street)
	return b
}

// SetUnit sets the unit, apartment, or suite line and returns the builder.
func (b *USBuilder) SetUnit(unit string) *USBuilder {
	b.b.SetUnit(unit)
	return b
}

// SetCity sets the city and returns the builder.
func (b *USBuilder) SetCity(city string) *USBuilder {
	b.b.SetCity(city)
	return b
}

// SetZip sets the ZIP code and returns the builder.
func (b *USBuilder) SetZip(z Zip) *USBuilder {
	b.b.SetZip(z)
	return b
}

// SetState sets the state explicitly and returns the builder. When set,
// Build uses it as-is instead of inferring one from the ZIP code.
func (b *USBuilder) SetState(st geo.State) *USBuilder {
	b.b.SetState(st)
	return b
}

// SetType sets the address's type and returns the builder.
func (b *USBuilder) SetType(k Type) *USBuilder {
	b.b.SetType(k)
	return b
}

// SetCountry exists for interface parity with Builder but the country of
// a USAddress is fixed. Setting any country other than the United States
// fails immediately with a *contact.UnsupportedError; setting the United
// States is a no-op.
func (b *USBuilder) SetCountry(c geo.Country) error {
	if c != geo.USA {
		return &contact.UnsupportedError{Op: "SetCountry", On: "postal.USBuilder"}
	}
	return nil
}

// Build constructs a USAddress from the builder's fields. Requirements are
// those of Builder; additionally, when no state was set explicitly, the
// ZIP code must resolve to a state or Build fails with an error chain
// wrapping the lookup's *contact.InvalidInputError.
func (b *USBuilder) Build() (*USAddress, error) {
	a, err := b.b.SetCountry(geo.USA).Build()
	if err != nil {
		return nil, err
	}
	return US(a)
}
