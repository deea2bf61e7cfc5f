package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"Bytes", []byte("abc"), "abc"},
		{"Float", float64(12), "12"},
		{"FloatFraction", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"PlainTrimmed", "  core-sw1 ", "core-sw1"},
		{"DisplayValue", map[string]any{"display_value": " Boston ", "value": "abc123"}, "Boston"},
		{"ValueOnly", map[string]any{"value": "10.0.0.1"}, "10.0.0.1"},
		{"EmptyObject", map[string]any{}, ""},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestNormalizeBool(t *testing.T) {
	assert.Equal(t, "true", NormalizeBool("True"))
	assert.Equal(t, "true", NormalizeBool("true"))
	assert.Equal(t, "false", NormalizeBool("False"))
	assert.Equal(t, "false", NormalizeBool("false"))
	assert.Equal(t, "TRUE", NormalizeBool("TRUE"))
	assert.Equal(t, "Operational", NormalizeBool("Operational"))
}
