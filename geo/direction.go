package geo

import (
	contact "github.com/zostay/go-contact"
)

// Direction is a compass direction as used in street names and addresses
// (e.g., the "NW" in "2250 NW Flanders St"). The value of each constant is
// the customary postal abbreviation.
type Direction string

// The cardinal and intercardinal directions.
const (
	North     Direction = "N"
	Northeast Direction = "NE"
	East      Direction = "E"
	Southeast Direction = "SE"
	South     Direction = "S"
	Southwest Direction = "SW"
	West      Direction = "W"
	Northwest Direction = "NW"
)

var directionNames = map[Direction]string{
	North:     "North",
	Northeast: "Northeast",
	East:      "East",
	Southeast: "Southeast",
	South:     "South",
	Southwest: "Southwest",
	West:      "West",
	Northwest: "Northwest",
}

// Abbreviation returns the postal abbreviation for the direction. This is
// the same as the constant's value.
func (d Direction) Abbreviation() string { return string(d) }

// Name returns the full English name of the direction or the empty string
// if d is not one of the defined constants.
func (d Direction) Name() string { return directionNames[d] }

// String returns the postal abbreviation.
func (d Direction) String() string { return string(d) }

// LookupDirection finds the Direction for a postal abbreviation. It returns
// a *contact.NotFoundError if the abbreviation names no direction.
func LookupDirection(abbr string) (Direction, error) {
	d := Direction(abbr)
	if _, ok := directionNames[d]; !ok {
		return "", &contact.NotFoundError{Kind: "direction", Value: abbr}
	}
	return d, nil
}
