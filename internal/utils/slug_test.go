package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Acme Inc", "acme-inc"},
		{"accents stripped", "Café Société", "cafe-societe"},
		{"symbols collapse", "Hello, World!!", "hello-world"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  #Acme#  ", "acme"},
		{"digits kept", "Project 42", "project-42"},
		{"already a slug", "acme-inc", "acme-inc"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
