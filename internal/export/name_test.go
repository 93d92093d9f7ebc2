package export

import (
	"testing"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kari Nordmann", "kari-nordmann"},
		{"  Ola   Nordmann  ", "ola-nordmann"},
		{"Ærlig Øystein Ås", "rlig-ystein-s"},
		{"anne--marie", "anne-marie"},
		{"-x-", "x"},
		{"Per_2026!", "per-2026"},
		{"ÆØÅ", FallbackName},
		{"", FallbackName},
		{"---", FallbackName},
		{"!!!", FallbackName},
		{"already-safe-123", "already-safe-123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SafeName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, got)
		})
	}
}

func TestSafeName_Idempotent(t *testing.T) {
	for _, in := range []string{"Kari Nordmann", "", "Ærlig Øystein", "a--b"} {
		once := SafeName(in)
		assert.Equal(t, once, SafeName(once))
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "ihp03-fagprove-kari-nordmann.pdf", FileName(catalog.TabFagprove, "kari-nordmann"))
	assert.Equal(t, "ihp03-info-kandidat.pdf", FileName(catalog.TabInfo, SafeName("")))
}
