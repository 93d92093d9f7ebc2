package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSchemas(t *testing.T) {
	for _, name := range []string{Header, Fagprove, Kompetanse} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name())
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("nope.schema.json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestHeaderSchema(t *testing.T) {
	s := MustLoad(Header)

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"candidateName":"Kari","date":"2026-03-01"}`, false},
		{"empty date", `{"candidateName":"","date":""}`, false},
		{"missing date", `{"candidateName":"Kari"}`, true},
		{"wrong type", `{"candidateName":42,"date":"2026-03-01"}`, true},
		{"bad date format", `{"candidateName":"Kari","date":"01.03.2026"}`, true},
		{"array", `[]`, true},
		{"string", `"hello"`, true},
		{"null", `null`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.doc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordSchema_FieldErrors(t *testing.T) {
	s := MustLoad(Kompetanse)

	err := s.Validate(`{"customerType":"bowling","customerName":"X","answers":{"design":1}}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
	assert.Contains(t, ve.Error(), "validation failed")
}

func TestSchema_MalformedJSON(t *testing.T) {
	s := MustLoad(Fagprove)
	assert.Error(t, s.Validate(`{"customerType": "cafe"`))
}
