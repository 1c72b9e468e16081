package ai

import (
	"context"

	"github.com/spigell/proforientation/internal/careertest"
)

// Advice is a personalised note generated for a scored test.
type Advice struct {
	Summary   string   `json:"summary"`
	NextSteps []string `json:"next_steps,omitempty"`
	Raw       string   `json:"-"`
}

type Advisor interface {
	Advise(ctx context.Context, report *careertest.Report) (*Advice, error)
}
