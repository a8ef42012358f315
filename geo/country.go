package geo

import (
	"strings"

	contact "github.com/zostay/go-contact"
)

// Country identifies a country by its ISO 3166-1 alpha-2 code. The zero
// value is not a valid country and may be used to mean "no country set".
type Country string

// Countries known to this library. The set is not exhaustive; it covers the
// NANP countries and a selection of others commonly seen in contact data.
const (
	Australia     Country = "AU"
	Brazil        Country = "BR"
	Canada        Country = "CA"
	China         Country = "CN"
	Egypt         Country = "EG"
	France        Country = "FR"
	Germany       Country = "DE"
	India         Country = "IN"
	Italy         Country = "IT"
	Japan         Country = "JP"
	Mexico        Country = "MX"
	Netherlands   Country = "NL"
	Russia        Country = "RU"
	SouthAfrica   Country = "ZA"
	SouthKorea    Country = "KR"
	Spain         Country = "ES"
	Switzerland   Country = "CH"
	UnitedKingdom Country = "GB"
	UnitedStates  Country = "US"
)

// USA is a conventional alias for UnitedStates.
const USA = UnitedStates

type countryInfo struct {
	alpha3     string
	numeric    string
	name       string
	continents []Continent
}

var countries = map[Country]countryInfo{
	Australia:     {"AUS", "036", "Australia", []Continent{Oceania}},
	Brazil:        {"BRA", "076", "Brazil", []Continent{SouthAmerica}},
	Canada:        {"CAN", "124", "Canada", []Continent{NorthAmerica}},
	China:         {"CHN", "156", "China", []Continent{Asia}},
	Egypt:         {"EGY", "818", "Egypt", []Continent{Africa, Asia}},
	France:        {"FRA", "250", "France", []Continent{Europe}},
	Germany:       {"DEU", "276", "Germany", []Continent{Europe}},
	India:         {"IND", "356", "India", []Continent{Asia}},
	Italy:         {"ITA", "380", "Italy", []Continent{Europe}},
	Japan:         {"JPN", "392", "Japan", []Continent{Asia}},
	Mexico:        {"MEX", "484", "Mexico", []Continent{NorthAmerica}},
	Netherlands:   {"NLD", "528", "Netherlands", []Continent{Europe}},
	Russia:        {"RUS", "643", "Russia", []Continent{Europe, Asia}},
	SouthAfrica:   {"ZAF", "710", "South Africa", []Continent{Africa}},
	SouthKorea:    {"KOR", "410", "South Korea", []Continent{Asia}},
	Spain:         {"ESP", "724", "Spain", []Continent{Europe}},
	Switzerland:   {"CHE", "756", "Switzerland", []Continent{Europe}},
	UnitedKingdom: {"GBR", "826", "United Kingdom", []Continent{Europe}},
	UnitedStates:  {"USA", "840", "United States of America", []Continent{NorthAmerica}},
}

// alpha3Index maps alpha-3 codes back to countries. Built once during
// initialization; read-only afterward.
var alpha3Index = func() map[string]Country {
	ix := make(map[string]Country, len(countries))
	for c, info := range countries {
		ix[info.alpha3] = c
	}
	return ix
}()

// IsZero is true when no country has been set.
func (c Country) IsZero() bool { return c == "" }

// Alpha2 returns the ISO 3166-1 alpha-2 code. This is the same as the
// constant's value.
func (c Country) Alpha2() string { return string(c) }

// Alpha3 returns the ISO 3166-1 alpha-3 code, or the empty string for an
// unknown country.
func (c Country) Alpha3() string { return countries[c].alpha3 }

// Numeric returns the three-digit ISO 3166-1 numeric code as a string, or
// the empty string for an unknown country.
func (c Country) Numeric() string { return countries[c].numeric }

// Name returns the English short name of the country, or the empty string
// for an unknown country.
func (c Country) Name() string { return countries[c].name }

// Continents returns the continents the country spans. Most countries span
// one; transcontinental countries (e.g., Russia) span two. The returned
// slice is a copy and may be modified by the caller.
func (c Country) Continents() []Continent {
	src := countries[c].continents
	if src == nil {
		return nil
	}
	out := make([]Continent, len(src))
	copy(out, src)
	return out
}

// String returns the alpha-2 code.
func (c Country) String() string { return string(c) }

// LookupCountry finds a Country by ISO 3166-1 alpha-2 or alpha-3 code,
// case-insensitively. It returns a *contact.NotFoundError when the code
// names no country known to this library.
func LookupCountry(code string) (Country, error) {
	up := strings.ToUpper(strings.TrimSpace(code))
	switch len(up) {
	case 2:
		c := Country(up)
		if _, ok := countries[c]; ok {
			return c, nil
		}
	case 3:
		if c, ok := alpha3Index[up]; ok {
			return c, nil
		}
	}
	return "", &contact.NotFoundError{Kind: "country", Value: code}
}
