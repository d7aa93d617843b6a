// Package locations holds the static place catalog used during
// registration: states, their districts, and sample villages. The catalog is
// reference data only; nothing mutates it after startup.
package locations

// State is a top-level region.
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// District belongs to a state.
type District struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StateID string `json:"stateId"`
}

// Village belongs to a district.
type Village struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DistrictID string `json:"districtId"`
}
