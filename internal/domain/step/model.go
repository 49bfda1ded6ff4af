package step

import (
	"strings"
	"time"

	"dropops/internal/domain/progress"
)

// Step is one checklist item of an airdrop.
type Step struct {
	ID          string    `json:"id"`
	AirdropID   string    `json:"airdrop_id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type Patch struct {
	Title       *string `json:"title,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

func (p Patch) Apply(s *Step) {
	if p.Title != nil {
		s.Title = strings.TrimSpace(*p.Title)
	}
	if p.IsCompleted != nil {
		s.IsCompleted = *p.IsCompleted
	}
}

// Progress считает выполненные шаги.
func Progress(steps []Step) progress.Summary {
	return progress.Of(steps, func(s Step) bool { return s.IsCompleted })
}

// Titles drops blank entries and trims the rest.
func Titles(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
