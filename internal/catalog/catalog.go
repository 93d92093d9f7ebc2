// Package catalog holds the static content of the IHP03-01 exam form:
// question prompts, customer types and curriculum reference text.
package catalog

// Tab identifies one of the three views of the form.
type Tab string

const (
	TabFagprove   Tab = "fagprove"
	TabKompetanse Tab = "kompetanse"
	TabInfo       Tab = "info"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabFagprove, TabKompetanse, TabInfo}

// Title returns the heading used for the tab's printed document.
func (t Tab) Title() string {
	switch t {
	case TabFagprove:
		return "Fagprøve (kreativ brief – full)"
	case TabKompetanse:
		return "Kompetansebevis (kjerneelement)"
	case TabInfo:
		return "Informasjon (kompetansemål, kjerneelementer, vurdering)"
	}
	return ""
}

// Label returns the short name shown on the tab button.
func (t Tab) Label() string {
	switch t {
	case TabFagprove:
		return "Fagprøve"
	case TabKompetanse:
		return "Kompetansebevis"
	case TabInfo:
		return "Informasjon"
	}
	return string(t)
}

// ParseTab returns the tab with the given identifier.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Agency is the fictional advertising agency the candidate works for.
const Agency = "Trim AS"

// FilePrefix is prepended to every exported document name.
const FilePrefix = "ihp03"

// Question is one locked prompt of an assessment variant.
type Question struct {
	Key    string
	Title  string
	Prompt string
}

// Section groups questions the way the form shows them.
type Section struct {
	Heading   string
	Questions []Question
}

// Variant describes one assessment: its question catalog and the
// customer types its selector offers.
type Variant struct {
	ID            Tab
	Heading       string
	Focus         string
	CustomerTypes []CustomerType
	Sections      []Section
	// AIDisclosure is set when every question carries a note about which
	// generative tool was used.
	AIDisclosure bool
}

// Questions returns the questions of all sections in display order.
func (v *Variant) Questions() []Question {
	var out []Question
	for _, s := range v.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

// Keys returns the fixed answer keys of the variant in display order.
func (v *Variant) Keys() []string {
	qs := v.Questions()
	keys := make([]string, len(qs))
	for i, q := range qs {
		keys[i] = q.Key
	}
	return keys
}

// Question looks up a question by key.
func (v *Variant) Question(key string) (Question, bool) {
	for _, s := range v.Sections {
		for _, q := range s.Questions {
			if q.Key == key {
				return q, true
			}
		}
	}
	return Question{}, false
}

// Offers reports whether the variant's selector lists the customer type.
func (v *Variant) Offers(t CustomerType) bool {
	for _, ct := range v.CustomerTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// DefaultCustomerType is the first type the selector lists.
func (v *Variant) DefaultCustomerType() CustomerType {
	return v.CustomerTypes[0]
}

// Lookup returns the variant for an assessment tab. The info tab has no
// variant.
func Lookup(t Tab) (*Variant, bool) {
	switch t {
	case TabFagprove:
		return Fagprove, true
	case TabKompetanse:
		return Kompetanse, true
	}
	return nil, false
}

// Variants lists both assessment variants.
func Variants() []*Variant {
	return []*Variant{Fagprove, Kompetanse}
}
