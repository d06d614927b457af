package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"  The Hare  ", "the hare"},
		{"The   Hare\tand the\nTortoise", "the hare and the tortoise"},
		{"Honesty is the Best Policy", "honesty is the best policy"},
		{"passer-by", "passer-by"},
		{"Atlanta's", "atlanta's"},
		{"Café Résumé", "café résumé"},
		{"", ""},
		{" \t\n ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.input), "input %q", tt.input)
	}
}
