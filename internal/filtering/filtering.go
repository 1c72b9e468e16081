package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/headhunter"
	"github.com/spigell/proforientation/internal/logger"
)

// Filter represents a single filtering step applied to vacancies.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(ctx context.Context, v *headhunter.Vacancies) (Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, l *zap.Logger) *Filtering {
	return &Filtering{steps: steps, logger: logger.WithFields(l)}
}

// Run applies the enabled filters in order. Vacancies are filtered in place.
func (f *Filtering) Run(ctx context.Context, v *headhunter.Vacancies) error {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		info, err := step.Apply(ctx, v)
		if err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
	}

	return nil
}

// Describe returns status entries for the configured filters.
func (f *Filtering) Describe() []Status {
	statuses := make([]Status, 0, len(f.steps))
	for _, step := range f.steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
