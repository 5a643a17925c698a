package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"0", 0},
		{".5k", 500},
		{"4.7k", 4700},
		{"100u", 1e-4},
		{"1m", 1e-3},
		{"1M", 1e-3}, // SPICE reads M as milli
		{"1meg", 1e6},
		{"1MEG", 1e6},
		{"2.2n", 2.2e-9},
		{"47p", 4.7e-11},
		{"1f", 1e-15},
		{"1T", 1e12},
		{"1g", 1e9},
		{"-5m", -5e-3},
		{"1e3", 1000},
		{"2.5E-4", 2.5e-4},
		{"10ms", 0.01},
		{"5s", 5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, math.Abs(tt.want)*1e-12)
		})
	}
}

func TestParseValueRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "10x", "k10", "10 k", "--5", "1.2.3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseValue(in)
			assert.Error(t, err)
		})
	}
}
