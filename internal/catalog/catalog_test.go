package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerTables_Total(t *testing.T) {
	for _, ct := range CustomerTypes {
		t.Run(string(ct), func(t *testing.T) {
			assert.True(t, ct.Valid())
			assert.NotEmpty(t, ct.DefaultName(), "every type needs a default name")
			assert.NotEmpty(t, ct.Label(), "every type needs a label")
		})
	}
	assert.Len(t, defaultCustomerNames, len(CustomerTypes))
	assert.Len(t, customerLabels, len(CustomerTypes))
}

func TestCustomerDefaultNames_Distinct(t *testing.T) {
	seen := map[string]CustomerType{}
	for _, ct := range CustomerTypes {
		prev, dup := seen[ct.DefaultName()]
		assert.False(t, dup, "%s shares its default name with %s", ct, prev)
		seen[ct.DefaultName()] = ct
	}
}

func TestIsDefaultName(t *testing.T) {
	assert.True(t, IsDefaultName("Hotel Nordlys"))
	assert.True(t, IsDefaultName("Oslo Dyreklinikk"))
	assert.False(t, IsDefaultName("Joe's Diner"))
	assert.False(t, IsDefaultName(""))
	assert.False(t, IsDefaultName(" Hotel Nordlys"))
}

func TestParseCustomerType(t *testing.T) {
	ct, ok := ParseCustomerType("museum")
	assert.True(t, ok)
	assert.Equal(t, Museum, ct)

	_, ok = ParseCustomerType("bakery")
	assert.False(t, ok)
}

func TestVariants_KeysUniqueAndFixed(t *testing.T) {
	tests := []struct {
		variant *Variant
		count   int
	}{
		{Fagprove, 27},
		{Kompetanse, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant.ID), func(t *testing.T) {
			keys := tt.variant.Keys()
			assert.Len(t, keys, tt.count)

			seen := map[string]bool{}
			for _, k := range keys {
				assert.False(t, seen[k], "duplicate key %s", k)
				seen[k] = true
			}
		})
	}
}

func TestVariants_DisjointKeys(t *testing.T) {
	full := map[string]bool{}
	for _, k := range Fagprove.Keys() {
		full[k] = true
	}
	for _, k := range Kompetanse.Keys() {
		assert.False(t, full[k], "key %s appears in both variants", k)
	}
}

func TestVariants_OfferedTypesAreKnown(t *testing.T) {
	for _, v := range Variants() {
		require.NotEmpty(t, v.CustomerTypes)
		for _, ct := range v.CustomerTypes {
			assert.True(t, ct.Valid(), "%s offers unknown type %s", v.ID, ct)
		}
		assert.Equal(t, Cafe, v.DefaultCustomerType())
	}
	assert.False(t, Kompetanse.Offers(Gym))
	assert.True(t, Fagprove.Offers(Gym))
}

func TestLookup(t *testing.T) {
	v, ok := Lookup(TabFagprove)
	require.True(t, ok)
	assert.Same(t, Fagprove, v)

	_, ok = Lookup(TabInfo)
	assert.False(t, ok)
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, ok := ParseTab(string(tab))
		assert.True(t, ok)
		assert.Equal(t, tab, got)
		assert.NotEmpty(t, tab.Title())
	}

	_, ok := ParseTab("summary")
	assert.False(t, ok)
}

func TestVariant_Question(t *testing.T) {
	q, ok := Fagprove.Question("pitch")
	require.True(t, ok)
	assert.Equal(t, "Pitch", q.Title)

	_, ok = Fagprove.Question("design")
	assert.False(t, ok)
}
