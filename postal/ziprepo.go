package postal

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// zipRange is an inclusive range of five digit ZIP codes, held as their
// numeric values.
type zipRange struct {
	lo, hi int
}

// stateZipRanges is the standard USPS assignment of ZIP code ranges to the
// fifty states and the District of Columbia. A few states carry more than
// one range (New York's Holtsville 005xx block, Georgia's and Texas's
// second blocks). The ranges must not overlap; buildZipIndex enforces that
// when the lookup table is built.
var stateZipRanges = map[geo.State][]zipRange{
	geo.Alabama:            {{35000, 36999}},
	geo.Alaska:             {{99500, 99999}},
	geo.Arizona:            {{85000, 86599}},
	geo.Arkansas:           {{71600, 72999}},
	geo.California:         {{90000, 96199}},
	geo.Colorado:           {{80000, 81699}},
	geo.Connecticut:        {{6000, 6999}},
	geo.Delaware:           {{19700, 19999}},
	geo.DistrictOfColumbia: {{20000, 20599}},
	geo.Florida:            {{32000, 34999}},
	geo.Georgia:            {{30000, 31999}, {39800, 39999}},
	geo.Hawaii:             {{96700, 96899}},
	geo.Idaho:              {{83200, 83899}},
	geo.Illinois:           {{60000, 62999}},
	geo.Indiana:            {{46000, 47999}},
	geo.Iowa:               {{50000, 52899}},
	geo.Kansas:             {{66000, 67999}},
	geo.Kentucky:           {{40000, 42799}},
	geo.Louisiana:          {{70000, 71599}},
	geo.Maine:              {{3900, 4999}},
	geo.Maryland:           {{20600, 21999}},
	geo.Massachusetts:      {{1000, 2799}},
	geo.Michigan:           {{48000, 49999}},
	geo.Minnesota:          {{55000, 56799}},
	geo.Mississippi:        {{38600, 39799}},
	geo.Missouri:           {{63000, 65899}},
	geo.Montana:            {{59000, 59999}},
	geo.Nebraska:           {{68000, 69399}},
	geo.Nevada:             {{88900, 89899}},
	geo.NewHampshire:       {{3000, 3899}},
	geo.NewJersey:          {{7000, 8999}},
	geo.NewMexico:          {{87000, 88499}},
	geo.NewYork:            {{500, 599}, {10000, 14999}},
	geo.NorthCarolina:      {{27000, 28999}},
	geo.NorthDakota:        {{58000, 58899}},
	geo.Ohio:               {{43000, 45999}},
	geo.Oklahoma:           {{73000, 74999}},
	geo.Oregon:             {{97000, 97999}},
	geo.Pennsylvania:       {{15000, 19699}},
	geo.RhodeIsland:        {{2800, 2999}},
	geo.SouthCarolina:      {{29000, 29999}},
	geo.SouthDakota:        {{57000, 57799}},
	geo.Tennessee:          {{37000, 38599}},
	geo.Texas:              {{75000, 79999}, {88500, 88599}},
	geo.Utah:               {{84000, 84799}},
	geo.Vermont:            {{5000, 5999}},
	geo.Virginia:           {{22000, 24699}},
	geo.Washington:         {{98000, 99499}},
	geo.WestVirginia:       {{24700, 26899}},
	geo.Wisconsin:          {{53000, 54999}},
	geo.Wyoming:            {{82000, 83199}},
}

// zipAssignment pairs a range with its state for the sorted lookup table.
type zipAssignment struct {
	zipRange
	st geo.State
}

// zipIndex builds the sorted assignment table exactly once, on first use.
// The table is never mutated after being built.
var zipIndex = sync.OnceValue(buildZipIndex)

func buildZipIndex() []zipAssignment {
	out := make([]zipAssignment, 0, len(stateZipRanges)+4)
	for st, ranges := range stateZipRanges {
		for _, r := range ranges {
			out = append(out, zipAssignment{r, st})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })

	// Overlapping ranges would make ZIP-to-state lookup ambiguous. The
	// table is static, so an overlap is a programming error surfaced at
	// build time.
	for i := 1; i < len(out); i++ {
		if out[i].lo <= out[i-1].hi {
			panic(fmt.Sprintf("postal: ZIP ranges for %s and %s overlap", out[i-1].st, out[i].st))
		}
	}
	return out
}

// StateForZip returns the state a ZIP code's base five digits fall within.
// It fails with a *contact.InvalidInputError when z is the zero Zip or
// when the ZIP falls outside every known state range.
func StateForZip(z Zip) (geo.State, error) {
	if z.IsZero() {
		return "", &contact.InvalidInputError{
			Value:      "",
			Constraint: "a ZIP code is required to look up a state",
		}
	}

	// the code is always five digits by construction
	n, err := strconv.Atoi(z.Code())
	if err != nil {
		return "", &contact.InvalidInputError{
			Value:      z.Code(),
			Constraint: "ZIP code is not numeric",
		}
	}

	ix := zipIndex()
	i := sort.Search(len(ix), func(i int) bool { return ix[i].hi >= n })
	if i < len(ix) && ix[i].lo <= n {
		return ix[i].st, nil
	}
	return "", &contact.InvalidInputError{
		Value:      z.Code(),
		Constraint: "state for ZIP code not found",
	}
}
