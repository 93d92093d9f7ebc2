// Package exam holds the candidate's answer state: the shared header, one
// record per assessment variant, and the session that keeps them in sync
// with the persistent store.
package exam

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ihp-exam/internal/catalog"
)

// Storage keys. The version suffix changes whenever the persisted shape
// does; values under older keys are ignored.
const (
	KeyShared     = "ihp03_trim_shared_v3"
	KeyFagprove   = "ihp03_trim_fag_v3"
	KeyKompetanse = "ihp03_trim_komp_v3"
)

// DateLayout is the layout of Header.Date.
const DateLayout = "2006-01-02"

// StorageKey returns the key the variant's record is persisted under.
func StorageKey(v *catalog.Variant) string {
	if v.ID == catalog.TabKompetanse {
		return KeyKompetanse
	}
	return KeyFagprove
}

// Header is shared by both variants.
type Header struct {
	CandidateName string `json:"candidateName"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks the header fields.
func (h *Header) Validate() error {
	validate := validator.New()
	return validate.Struct(h)
}

// Record is the candidate's answers to one assessment variant.
type Record struct {
	CustomerType catalog.CustomerType `json:"customerType"`
	CustomerName string               `json:"customerName"`
	Answers      map[string]string    `json:"answers"`
	AIDisclosure map[string]string    `json:"aiDisclosure,omitempty"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	out.Answers = cloneMap(r.Answers)
	out.AIDisclosure = cloneMap(r.AIDisclosure)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Defaults returns the initial record of a variant: the first offered
// customer type, its default name and an empty answer for every key.
func Defaults(v *catalog.Variant) Record {
	t := v.DefaultCustomerType()
	r := Record{
		CustomerType: t,
		CustomerName: t.DefaultName(),
		Answers:      emptyAnswers(v),
	}
	if v.AIDisclosure {
		r.AIDisclosure = emptyAnswers(v)
	}
	return r
}

func emptyAnswers(v *catalog.Variant) map[string]string {
	keys := v.Keys()
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = ""
	}
	return m
}

// Normalize repairs r so it holds exactly the variant's keys. Missing
// entries become "", unknown entries are dropped, and a customer type the
// variant does not offer is replaced by the default type.
func Normalize(v *catalog.Variant, r Record) Record {
	out := Record{
		CustomerType: r.CustomerType,
		CustomerName: r.CustomerName,
		Answers:      fitKeys(v, r.Answers),
	}
	if v.AIDisclosure {
		out.AIDisclosure = fitKeys(v, r.AIDisclosure)
	}
	if !v.Offers(out.CustomerType) {
		out.CustomerType = v.DefaultCustomerType()
	}
	return out
}

func fitKeys(v *catalog.Variant, in map[string]string) map[string]string {
	out := emptyAnswers(v)
	for k := range out {
		if s, ok := in[k]; ok {
			out[k] = s
		}
	}
	return out
}

// SyncCustomerName applies the derived-name rule after a customer type
// change. A blank name, or one equal to the default name of any customer
// type, is replaced by the default of r.CustomerType. A custom name is
// kept.
func SyncCustomerName(r Record) Record {
	trimmed := strings.TrimSpace(r.CustomerName)
	if trimmed == "" || catalog.IsDefaultName(trimmed) {
		r.CustomerName = r.CustomerType.DefaultName()
	}
	return r
}
