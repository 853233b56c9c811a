package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Zip", "application/zip", ApplicationZIP, true},
		{"HTML with charset", "text/html; charset=utf-8", TextHTML, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationZIP, false},
		{"Invalid MIME", "not a mime", ApplicationZIP, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestIsText(t *testing.T) {
	tests := []struct {
		detected string
		want     bool
	}{
		{"text/plain; charset=utf-8", true},
		{"text/plain; charset=utf-16le", true},
		{"text/csv", true},
		{"text/tab-separated-values", true},
		{"text/html; charset=utf-8", false},
		{"application/zip", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.detected, func(t *testing.T) {
			require.Equal(t, tt.want, IsText(tt.detected))
		})
	}
}
