package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeTicker verifies canonicalization of raw ticker input.
func TestNormalizeTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "lowercase", raw: "bbca", expected: "BBCA"},
		{name: "mixed case", raw: "BbCa", expected: "BBCA"},
		{name: "surrounding whitespace", raw: "  BBCA  ", expected: "BBCA"},
		{name: "lowercase with whitespace", raw: " bbca\t", expected: "BBCA"},
		{name: "already normalized", raw: "BMRI", expected: "BMRI"},
		{name: "internal whitespace preserved", raw: " brk b ", expected: "BRK B"},
		{name: "empty string", raw: "", expected: ""},
		{name: "whitespace only", raw: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeTicker(tt.raw))
		})
	}
}

// TestNormalizeTicker_Idempotent verifies normalizing twice equals normalizing once.
func TestNormalizeTicker_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"bbca", "BbCa", "  BBCA  ", "", "  ", "brk b", "7203.t"}
	for _, raw := range inputs {
		once := NormalizeTicker(raw)
		assert.Equal(t, once, NormalizeTicker(once), "normalize should be idempotent for %q", raw)
	}
}
