package phone

import (
	"fmt"
	"sort"
	"sync"

	contact "github.com/zostay/go-contact"
	"github.com/zostay/go-contact/geo"
)

// stateAreaCodes is the hand-curated assignment of NANP area codes to the
// fifty states and the District of Columbia. Overlay and split codes
// introduced after an area code's home state never move it to a different
// state, so each code appears under exactly one state; buildAreaCodeIndex
// enforces that when the lookup tables are built.
var stateAreaCodes = map[geo.State][]string{
	geo.Alabama:            {"205", "251", "256", "334", "938"},
	geo.Alaska:             {"907"},
	geo.Arizona:            {"480", "520", "602", "623", "928"},
	geo.Arkansas:           {"479", "501", "870"},
	geo.California:         {"209", "213", "310", "408", "415", "510", "530", "559", "619", "626", "650", "661", "707", "714", "760", "805", "818", "831", "858", "909", "916", "925", "949", "951"},
	geo.Colorado:           {"303", "719", "720", "970"},
	geo.Connecticut:        {"203", "475", "860", "959"},
	geo.Delaware:           {"302"},
	geo.DistrictOfColumbia: {"202"},
	geo.Florida:            {"239", "305", "321", "352", "386", "407", "561", "727", "754", "772", "786", "813", "850", "863", "904", "941", "954"},
	geo.Georgia:            {"229", "404", "470", "478", "678", "706", "770", "912"},
	geo.Hawaii:             {"808"},
	geo.Idaho:              {"208"},
	geo.Illinois:           {"217", "224", "309", "312", "331", "618", "630", "708", "773", "779", "815", "847", "872"},
	geo.Indiana:            {"219", "260", "317", "574", "765", "812"},
	geo.Iowa:               {"319", "515", "563", "641", "712"},
	geo.Kansas:             {"316", "620", "785", "913"},
	geo.Kentucky:           {"270", "502", "606", "859"},
	geo.Louisiana:          {"225", "318", "337", "504", "985"},
	geo.Maine:              {"207"},
	geo.Maryland:           {"240", "301", "410", "443"},
	geo.Massachusetts:      {"339", "351", "413", "508", "617", "774", "781", "857", "978"},
	geo.Michigan:           {"231", "248", "269", "313", "517", "586", "616", "734", "810", "906", "947", "989"},
	geo.Minnesota:          {"218", "320", "507", "612", "651", "763", "952"},
	geo.Mississippi:        {"228", "601", "662", "769"},
	geo.Missouri:           {"314", "417", "573", "636", "660", "816"},
	geo.Montana:            {"406"},
	geo.Nebraska:           {"308", "402", "531"},
	geo.Nevada:             {"702", "725", "775"},
	geo.NewHampshire:       {"603"},
	geo.NewJersey:          {"201", "551", "609", "732", "848", "856", "862", "908", "973"},
	geo.NewMexico:          {"505", "575"},
	geo.NewYork:            {"212", "315", "347", "516", "518", "585", "607", "631", "646", "716", "718", "845", "914", "917", "929"},
	geo.NorthCarolina:      {"252", "336", "704", "828", "910", "919", "980"},
	geo.NorthDakota:        {"701"},
	geo.Ohio:               {"216", "234", "330", "419", "440", "513", "567", "614", "740", "937"},
	geo.Oklahoma:           {"405", "539", "580", "918"},
	geo.Oregon:             {"458", "503", "541", "971"},
	geo.Pennsylvania:       {"215", "267", "412", "484", "570", "610", "717", "724", "814", "878"},
	geo.RhodeIsland:        {"401"},
	geo.SouthCarolina:      {"803", "843", "864"},
	geo.SouthDakota:        {"605"},
	geo.Tennessee:          {"423", "615", "731", "865", "901", "931"},
	geo.Texas:              {"210", "214", "254", "281", "325", "361", "409", "430", "432", "469", "512", "682", "713", "806", "817", "830", "832", "903", "915", "936", "940", "956", "972", "979"},
	geo.Utah:               {"385", "435", "801"},
	geo.Vermont:            {"802"},
	geo.Virginia:           {"276", "434", "540", "571", "703", "757", "804"},
	geo.Washington:         {"206", "253", "360", "425", "509", "564"},
	geo.WestVirginia:       {"304", "681"},
	geo.Wisconsin:          {"262", "414", "608", "715", "920"},
	geo.Wyoming:            {"307"},
}

// areaCodeIndex holds the lookup tables built from stateAreaCodes. Both
// directions are materialized so that code-to-state lookup is a single map
// access rather than a scan of every state.
type areaCodeIndex struct {
	byState map[geo.State][]AreaCode
	byCode  map[AreaCode]geo.State
}

// areaCodes builds the index exactly once, on first use. The tables are
// never mutated after being built.
var areaCodes = sync.OnceValue(buildAreaCodeIndex)

func buildAreaCodeIndex() *areaCodeIndex {
	ix := &areaCodeIndex{
		byState: make(map[geo.State][]AreaCode, len(stateAreaCodes)),
		byCode:  make(map[AreaCode]geo.State),
	}
	for st, codes := range stateAreaCodes {
		acs := make([]AreaCode, 0, len(codes))
		for _, code := range codes {
			ac := AreaCode{code}
			if prev, ok := ix.byCode[ac]; ok {
				// A code assigned to two states would make reverse lookup
				// ambiguous. The table is static, so this is a programming
				// error surfaced at build time, not a runtime condition.
				panic(fmt.Sprintf("phone: area code %s is assigned to both %s and %s", code, prev, st))
			}
			ix.byCode[ac] = st
			acs = append(acs, ac)
		}
		sort.Slice(acs, func(i, j int) bool { return acs[i].Compare(acs[j]) < 0 })
		ix.byState[st] = acs
	}
	return ix
}

// AreaCodes returns the area codes assigned to a state, sorted. It fails
// with a *contact.InvalidInputError when st is the zero State and a
// *contact.NotFoundError when the state has no assignment in the table.
// The returned slice is a copy and may be modified by the caller.
func AreaCodes(st geo.State) ([]AreaCode, error) {
	if st.IsZero() {
		return nil, &contact.InvalidInputError{
			Value:      "",
			Constraint: "a state is required to look up area codes",
		}
	}
	acs, ok := areaCodes().byState[st]
	if !ok {
		return nil, &contact.NotFoundError{Kind: "area codes", Value: st.String()}
	}
	out := make([]AreaCode, len(acs))
	copy(out, acs)
	return out, nil
}

// StateFor returns the state an area code is assigned to. It fails with a
// *contact.InvalidInputError when ac is the zero AreaCode and a
// *contact.NotFoundError when no state carries the code.
func StateFor(ac AreaCode) (geo.State, error) {
	if ac.IsZero() {
		return "", &contact.InvalidInputError{
			Value:      "",
			Constraint: "an area code is required to look up a state",
		}
	}
	st, ok := areaCodes().byCode[ac]
	if !ok {
		return "", &contact.NotFoundError{Kind: "state", Value: ac.String()}
	}
	return st, nil
}
