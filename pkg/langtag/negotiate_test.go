package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langstring/pkg/langtag"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		want      string
		wantOK    bool
	}{
		{
			name:      "exact match",
			header:    "fr",
			available: []string{"en", "fr"},
			want:      "fr",
			wantOK:    true,
		},
		{
			name:      "highest quality wins",
			header:    "de;q=0.5,fr;q=0.9",
			available: []string{"de", "fr"},
			want:      "fr",
			wantOK:    true,
		},
		{
			name:      "regional preference falls back to base",
			header:    "pt-BR,en;q=0.5",
			available: []string{"en", "pt"},
			want:      "pt",
			wantOK:    true,
		},
		{
			name:      "base preference matches regional availability",
			header:    "en",
			available: []string{"fr", "en-GB"},
			want:      "en-GB",
			wantOK:    true,
		},
		{
			name:      "case insensitive",
			header:    "EN-us",
			available: []string{"en-US"},
			want:      "en-US",
			wantOK:    true,
		},
		{
			name:      "exact beats base at same preference",
			header:    "en-GB",
			available: []string{"en-US", "en-GB"},
			want:      "en-GB",
			wantOK:    true,
		},
		{
			name:      "zero quality excluded",
			header:    "fr;q=0",
			available: []string{"fr"},
			wantOK:    false,
		},
		{
			name:      "wildcard ignored",
			header:    "*",
			available: []string{"en"},
			wantOK:    false,
		},
		{
			name:      "no match",
			header:    "ja",
			available: []string{"en", "fr"},
			wantOK:    false,
		},
		{
			name:      "empty header",
			header:    "",
			available: []string{"en"},
			wantOK:    false,
		},
		{
			name:      "nothing available",
			header:    "en",
			available: nil,
			wantOK:    false,
		},
		{
			name:      "malformed quality treated as one",
			header:    "de;q=abc,fr;q=0.9",
			available: []string{"fr", "de"},
			want:      "de",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := langtag.Negotiate(tt.header, tt.available)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
