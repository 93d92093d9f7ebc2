package catalog

// CustomerType is the kind of business the brief is written for.
type CustomerType string

const (
	Cafe        CustomerType = "cafe"
	Hotell      CustomerType = "hotell"
	Museum      CustomerType = "museum"
	Skole       CustomerType = "skole"
	Gym         CustomerType = "gym"
	Dyreklinikk CustomerType = "dyreklinikk"
)

// CustomerTypes lists every customer type in selector order.
var CustomerTypes = []CustomerType{Cafe, Hotell, Museum, Skole, Gym, Dyreklinikk}

var defaultCustomerNames = map[CustomerType]string{
	Cafe:        "Lys & Brød",
	Hotell:      "Hotel Nordlys",
	Museum:      "Nordlys Museum",
	Skole:       "Bjørnholt videregående skole",
	Gym:         "Nordlys Treningssenter",
	Dyreklinikk: "Oslo Dyreklinikk",
}

var customerLabels = map[CustomerType]string{
	Cafe:        "Café",
	Hotell:      "Hotell",
	Museum:      "Museum",
	Skole:       "Skole",
	Gym:         "Treningssenter",
	Dyreklinikk: "Dyreklinikk",
}

// Valid reports whether t is one of the known customer types.
func (t CustomerType) Valid() bool {
	_, ok := defaultCustomerNames[t]
	return ok
}

// DefaultName returns the customer name pre-filled for the type.
func (t CustomerType) DefaultName() string {
	return defaultCustomerNames[t]
}

// Label returns the display label of the type.
func (t CustomerType) Label() string {
	return customerLabels[t]
}

// IsDefaultName reports whether name equals the default name of any
// customer type.
func IsDefaultName(name string) bool {
	for _, n := range defaultCustomerNames {
		if n == name {
			return true
		}
	}
	return false
}

// ParseCustomerType returns the customer type with the given tag.
func ParseCustomerType(s string) (CustomerType, bool) {
	t := CustomerType(s)
	return t, t.Valid()
}
