package catalog

// Row categories, first CSV column.
const (
	CategoryDiet       = "Diet"
	CategorySupplement = "Supplement"
	CategoryInfo       = "Info"
)

// Role classifies how a diet row is used downstream. It is assigned once at
// load time so nothing re-derives behaviour from name substrings later.
type Role string

const (
	// RoleStaple rows are bulk-cooked and summed by the batch aggregator.
	RoleStaple Role = "staple"
	// RoleGarnish rows are side items, never summed into the shopping total.
	RoleGarnish Role = "garnish"
	// RoleFixed rows carry no aggregation behaviour (display only).
	RoleFixed Role = "fixed"
)

// Row is one ingredient line of the roadmap catalog. The core treats the
// catalog as read-only; it is rebuilt wholesale on reload.
type Row struct {
	Category    string  `json:"category"`
	Section     string  `json:"section"`
	Item        string  `json:"item"`
	AxelSpec    string  `json:"axel"`
	PriscaSpec  string  `json:"prisca"`
	Note        string  `json:"note,omitempty"`
	Role        Role    `json:"role"`
	CookedRatio float64 `json:"cooked_ratio,omitempty"` // 0 = served as listed
}

// Spec returns the raw gram specification for a person key ("axel" or
// "prisca"); unknown keys read as empty.
func (r Row) Spec(person string) string {
	switch person {
	case "axel":
		return r.AxelSpec
	case "prisca":
		return r.PriscaSpec
	}
	return ""
}
