package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"true", TRUE},
		{"Y", TRUE},
		{"false", FALSE},
		{"N", FALSE},
		{"null", NULL},
		{"y", IDENT},
		{"Point", IDENT},
		{"my_var", IDENT},
		{"r2d2", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupIdent(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestIsBareName(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"x", true},
		{"_class", true},
		{"Point3D", true},
		{"", false},
		{"3d", false},
		{"a b", false},
		{"a-b", false},
		{"$x", false},
		{"é", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, IsBareName(tt.input))
		})
	}
}

func TestIsSpace(t *testing.T) {
	for _, ch := range []byte(" \t\n\r\v\f") {
		require.True(t, IsSpace(ch), "%q", ch)
	}
	for _, ch := range []byte("a,{}/0") {
		require.False(t, IsSpace(ch), "%q", ch)
	}
}
