// Package progress computes completion of steps and tasks. The value is
// derived on every read and never stored.
package progress

import "math"

type Summary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// Percent returns round(100 * completed / total), or 0 when total is 0.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// Of counts items for which done reports true.
func Of[T any](items []T, done func(T) bool) Summary {
	completed := 0
	for _, it := range items {
		if done(it) {
			completed++
		}
	}
	return Summary{
		Completed: completed,
		Total:     len(items),
		Percent:   Percent(completed, len(items)),
	}
}
