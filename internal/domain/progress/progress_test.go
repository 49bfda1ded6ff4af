package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "one of three", completed: 1, total: 3, want: 33},
		{name: "two of three", completed: 2, total: 3, want: 67},
		{name: "half rounds up", completed: 1, total: 8, want: 13},
		{name: "all done", completed: 4, total: 4, want: 100},
		{name: "nothing done", completed: 0, total: 5, want: 0},
		{name: "no items", completed: 0, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.completed, tt.total))
		})
	}
}

func TestOf(t *testing.T) {
	done := func(b bool) bool { return b }

	s := Of([]bool{true, false, false}, done)
	assert.Equal(t, Summary{Completed: 1, Total: 3, Percent: 33}, s)

	assert.Equal(t, Summary{}, Of([]bool{}, done))
	assert.Equal(t, Summary{}, Of[bool](nil, done))
}
