package locations

import "strings"

// TamilNaduID is the only state shipped in the launch catalog.
const TamilNaduID = "tn_state"

var states = []State{
	{ID: TamilNaduID, Name: "Tamil Nadu"},
}

var districtNames = []string{
	"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
	"Dindigul", "Erode", "Kallakurichi", "Kancheepuram", "Karur", "Krishnagiri",
	"Madurai", "Mayiladuthurai", "Nagapattinam", "Kanyakumari", "Namakkal",
	"Perambalur", "Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga",
	"Tenkasi", "Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli",
	"Tirupathur", "Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore",
	"Viluppuram", "Virudhunagar", "The Nilgiris",
}

var villages = []Village{
	{ID: "v_yercaud", Name: "Yercaud", DistrictID: "salem"},
	{ID: "v_yerimalai", Name: "Yerimalai", DistrictID: "salem"},
	{ID: "v_yercaud_hills", Name: "Yercaud Hills", DistrictID: "salem"},
	{ID: "v_attur", Name: "Attur", DistrictID: "salem"},
	{ID: "v_omular", Name: "Omalur", DistrictID: "salem"},
	{ID: "v_mettur", Name: "Mettur", DistrictID: "salem"},
	{ID: "v_adyar", Name: "Adyar", DistrictID: "chennai"},
	{ID: "v_mylapore", Name: "Mylapore", DistrictID: "chennai"},
	{ID: "v_guindy", Name: "Guindy", DistrictID: "chennai"},
	{ID: "v_coonoor", Name: "Coonoor", DistrictID: "the-nilgiris"},
	{ID: "v_ooty", Name: "Ooty", DistrictID: "the-nilgiris"},
	{ID: "v_pollachi", Name: "Pollachi", DistrictID: "coimbatore"},
	{ID: "v_mettupalayam", Name: "Mettupalayam", DistrictID: "coimbatore"},
}

// DistrictID derives the stable identifier for a district name.
func DistrictID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// States returns the catalog states.
func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// Districts returns every district in catalog order.
func Districts() []District {
	out := make([]District, 0, len(districtNames))
	for _, name := range districtNames {
		out = append(out, District{ID: DistrictID(name), Name: name, StateID: TamilNaduID})
	}
	return out
}

// DistrictByID looks up a district.
func DistrictByID(id string) (District, bool) {
	for _, name := range districtNames {
		if DistrictID(name) == id {
			return District{ID: id, Name: name, StateID: TamilNaduID}, true
		}
	}
	return District{}, false
}

// VillagesIn returns the villages of a district, preserving catalog order.
func VillagesIn(districtID string) []Village {
	var out []Village
	for _, v := range villages {
		if v.DistrictID == districtID {
			out = append(out, v)
		}
	}
	return out
}

// VillageByID looks up a village.
func VillageByID(id string) (Village, bool) {
	for _, v := range villages {
		if v.ID == id {
			return v, true
		}
	}
	return Village{}, false
}
