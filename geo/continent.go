package geo

import (
	contact "github.com/zostay/go-contact"
)

// Continent identifies one of the seven continents by its two-letter code.
type Continent string

// The seven continents.
const (
	Africa       Continent = "AF"
	Antarctica   Continent = "AN"
	Asia         Continent = "AS"
	Europe       Continent = "EU"
	NorthAmerica Continent = "NA"
	Oceania      Continent = "OC"
	SouthAmerica Continent = "SA"
)

var continentNames = map[Continent]string{
	Africa:       "Africa",
	Antarctica:   "Antarctica",
	Asia:         "Asia",
	Europe:       "Europe",
	NorthAmerica: "North America",
	Oceania:      "Oceania",
	SouthAmerica: "South America",
}

// Code returns the two-letter continent code. This is the same as the
// constant's value.
func (c Continent) Code() string { return string(c) }

// Name returns the English name of the continent or the empty string if c
// is not one of the defined constants.
func (c Continent) Name() string { return continentNames[c] }

// String returns the two-letter continent code.
func (c Continent) String() string { return string(c) }

// LookupContinent finds the Continent for a two-letter code. It returns a
// *contact.NotFoundError if the code names no continent.
func LookupContinent(code string) (Continent, error) {
	c := Continent(code)
	if _, ok := continentNames[c]; !ok {
		return "", &contact.NotFoundError{Kind: "continent", Value: code}
	}
	return c, nil
}
