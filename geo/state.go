package geo

import (
	"sort"
	"strings"

	contact "github.com/zostay/go-contact"
)

// State identifies a US state (or the District of Columbia) by its USPS
// abbreviation. The zero value is not a valid state and may be used to mean
// "no state set".
type State string

// The fifty states and the District of Columbia.
const (
	Alabama       State = "AL"
	Alaska        State = "AK"
	Arizona       State = "AZ"
	Arkansas      State = "AR"
	California    State = "CA"
	Colorado      State = "CO"
	Connecticut   State = "CT"
	Delaware      State = "DE"
	Florida       State = "FL"
	Georgia       State = "GA"
	Hawaii        State = "HI"
	Idaho         State = "ID"
	Illinois      State = "IL"
	Indiana       State = "IN"
	Iowa          State = "IA"
	Kansas        State = "KS"
	Kentucky      State = "KY"
	Louisiana     State = "LA"
	Maine         State = "ME"
	Maryland      State = "MD"
	Massachusetts State = "MA"
	Michigan      State = "MI"
	Minnesota     State = "MN"
	Mississippi   State = "MS"
	Missouri      State = "MO"
	Montana       State = "MT"
	Nebraska      State = "NE"
	Nevada        State = "NV"
	NewHampshire  State = "NH"
	NewJersey     State = "NJ"
	NewMexico     State = "NM"
	NewYork       State = "NY"
	NorthCarolina State = "NC"
	NorthDakota   State = "ND"
	Ohio          State = "OH"
	Oklahoma      State = "OK"
	Oregon        State = "OR"
	Pennsylvania  State = "PA"
	RhodeIsland   State = "RI"
	SouthCarolina State = "SC"
	SouthDakota   State = "SD"
	Tennessee     State = "TN"
	Texas         State = "TX"
	Utah          State = "UT"
	Vermont       State = "VT"
	Virginia      State = "VA"
	Washington    State = "WA"
	WestVirginia  State = "WV"
	Wisconsin     State = "WI"
	Wyoming       State = "WY"

	DistrictOfColumbia State = "DC"
)

var stateNames = map[State]string{
	Alabama:            "Alabama",
	Alaska:             "Alaska",
	Arizona:            "Arizona",
	Arkansas:           "Arkansas",
	California:         "California",
	Colorado:           "Colorado",
	Connecticut:        "Connecticut",
	Delaware:           "Delaware",
	Florida:            "Florida",
	Georgia:            "Georgia",
	Hawaii:             "Hawaii",
	Idaho:              "Idaho",
	Illinois:           "Illinois",
	Indiana:            "Indiana",
	Iowa:               "Iowa",
	Kansas:             "Kansas",
	Kentucky:           "Kentucky",
	Louisiana:          "Louisiana",
	Maine:              "Maine",
	Maryland:           "Maryland",
	Massachusetts:      "Massachusetts",
	Michigan:           "Michigan",
	Minnesota:          "Minnesota",
	Mississippi:        "Mississippi",
	Missouri:           "Missouri",
	Montana:            "Montana",
	Nebraska:           "Nebraska",
	Nevada:             "Nevada",
	NewHampshire:       "New Hampshire",
	NewJersey:          "New Jersey",
	NewMexico:          "New Mexico",
	NewYork:            "New York",
	NorthCarolina:      "North Carolina",
	NorthDakota:        "North Dakota",
	Ohio:               "Ohio",
	Oklahoma:           "Oklahoma",
	Oregon:             "Oregon",
	Pennsylvania:       "Pennsylvania",
	RhodeIsland:        "Rhode Island",
	SouthCarolina:      "South Carolina",
	SouthDakota:        "South Dakota",
	Tennessee:          "Tennessee",
	Texas:              "Texas",
	Utah:               "Utah",
	Vermont:            "Vermont",
	Virginia:           "Virginia",
	Washington:         "Washington",
	WestVirginia:       "West Virginia",
	Wisconsin:          "Wisconsin",
	Wyoming:            "Wyoming",
	DistrictOfColumbia: "District of Columbia",
}

// nameIndex maps lowercased full names back to states. Built once during
// initialization; read-only afterward.
var nameIndex = func() map[string]State {
	ix := make(map[string]State, len(stateNames))
	for st, name := range stateNames {
		ix[strings.ToLower(name)] = st
	}
	return ix
}()

// IsZero is true when no state has been set.
func (s State) IsZero() bool { return s == "" }

// Abbreviation returns the USPS abbreviation for the state. This is the
// same as the constant's value.
func (s State) Abbreviation() string { return string(s) }

// Name returns the full name of the state, or the empty string if s is not
// one of the defined constants.
func (s State) Name() string { return stateNames[s] }

// String returns the USPS abbreviation.
func (s State) String() string { return string(s) }

// States returns every defined State sorted by abbreviation. The returned
// slice is freshly allocated on each call.
func States() []State {
	out := make([]State, 0, len(stateNames))
	for st := range stateNames {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LookupState finds a State by USPS abbreviation, case-insensitively. It
// returns a *contact.NotFoundError when the abbreviation names no state.
func LookupState(abbr string) (State, error) {
	st := State(strings.ToUpper(strings.TrimSpace(abbr)))
	if _, ok := stateNames[st]; !ok {
		return "", &contact.NotFoundError{Kind: "state", Value: abbr}
	}
	return st, nil
}

// LookupStateName finds a State by its full name, case-insensitively. It
// returns a *contact.NotFoundError when the name names no state.
func LookupStateName(name string) (State, error) {
	st, ok := nameIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", &contact.NotFoundError{Kind: "state", Value: name}
	}
	return st, nil
}
