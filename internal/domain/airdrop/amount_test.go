package airdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"$1,200", 1200, true},
		{"~2.5k", 2500, true},
		{"$1.2B", 1.2e9, true},
		{"1,234,567 XP", 1234567, true},
		{"5m users", 5e6, true},
		{"12 months", 12, true},
		{".5k", 500, true},
		{"TBA", 0, false},
		{"", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestSortByAmount(t *testing.T) {
	list := []Airdrop{
		{ID: "none"},
		{ID: "small", EstimatedVal: ptr("$300")},
		{ID: "text", EstimatedVal: ptr("unknown")},
		{ID: "big", EstimatedVal: ptr("$2k")},
	}

	SortByAmount(list, EstimatedValue, true)
	assert.Equal(t, []string{"big", "small", "none", "text"}, ids(list))

	SortByAmount(list, EstimatedValue, false)
	assert.Equal(t, []string{"small", "big", "none", "text"}, ids(list))
}

func ids(list []Airdrop) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}
