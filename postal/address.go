package postal

import (
	"strings"

	"github.com/zostay/go-contact/geo"
)

// Type classifies what an address is used for.
type Type string

// The address types.
const (
	TypeHome     Type = "home"
	TypeWork     Type = "work"
	TypeBilling  Type = "billing"
	TypeShipping Type = "shipping"
)

// Address is an immutable postal address. A validated Address always
// carries a street, a city, a ZIP code, and a country; the unit, state,
// and Type are optional. Addresses are constructed through a Builder (or
// the United States specialization) and never change afterward.
type Address struct {
	street  string
	unit    string
	city    string
	zip     Zip
	state   geo.State
	country geo.Country
	kind    Type
}

// Street returns the street line of the address.
func (a *Address) Street() string { return a.street }

// Unit returns the unit, apartment, or suite line, which is empty when
// none is set.
func (a *Address) Unit() string { return a.unit }

// City returns the city.
func (a *Address) City() string { return a.city }

// Zip returns the ZIP code.
func (a *Address) Zip() Zip { return a.zip }

// State returns the state, which is the zero State when none is set. A
// generic Address never infers its state; see USAddress for inference.
func (a *Address) State() geo.State { return a.state }

// Country returns the country.
func (a *Address) Country() geo.Country { return a.country }

// Type returns the address's type, which is empty when none is set.
func (a *Address) Type() Type { return a.kind }

// Equal reports whether two addresses carry the same fields.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}

// String renders the address on a single line:
//
//	1221 SW 4th Ave, Suite 110, Portland, OR 97204, US
//
// Optional fields that are unset are simply omitted.
func (a *Address) String() string {
	parts := make([]string, 0, 4)
	if a.street != "" {
		parts = append(parts, a.street)
	}
	if a.unit != "" {
		parts = append(parts, a.unit)
	}
	if a.city != "" {
		parts = append(parts, a.city)
	}

	regional := a.zip.String()
	if !a.state.IsZero() {
		regional = a.state.String() + " " + regional
	}
	if regional != "" {
		parts = append(parts, strings.TrimSpace(regional))
	}

	if !a.country.IsZero() {
		parts = append(parts, a.country.String())
	}
	return strings.Join(parts, ", ")
}
