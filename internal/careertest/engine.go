package careertest

import (
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/logger"
)

// Engine scores finalized answer sheets. It keeps no state between calls.
type Engine struct {
	tieBreaker TieBreaker
	logger     *zap.Logger
}

type Option func(*Engine)

// WithTieBreaker sets the policy for equal maximum category scores.
func WithTieBreaker(tb TieBreaker) Option {
	return func(e *Engine) {
		if tb != nil {
			e.tieBreaker = tb
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.WithFields(l)
	}
}

// NewEngine builds an engine. Without options ties go to the first category in table order.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tieBreaker: FirstTieBreaker{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report is the full scoring breakdown handed to presenters.
type Report struct {
	Totals          ScaleTotals     `json:"-"`
	Scales          map[string]int  `json:"scales"`
	CategoryScores  []CategoryScore `json:"category_scores"`
	Tied            []Category      `json:"tied,omitempty"`
	Stability       Stability       `json:"-"`
	StabilityTier   string          `json:"stability"`
	Result          TestResult      `json:"result"`
	Recommendations []string        `json:"recommendations"`
}

// Score returns the result of a complete answer sheet.
func (e *Engine) Score(a Answers) (*TestResult, error) {
	report, err := e.Report(a)
	if err != nil {
		return nil, err
	}

	result := report.Result
	return &result, nil
}

// Report scores a complete answer sheet and returns every intermediate value.
func (e *Engine) Report(a Answers) (*Report, error) {
	if err := Validate(a, true); err != nil {
		e.logger.Debug("rejecting answers", zap.Error(err))
		return nil, err
	}

	totals, err := Aggregate(a)
	if err != nil {
		return nil, err
	}

	scores, err := CategoryScores(a)
	if err != nil {
		return nil, err
	}

	tied := Tied(scores)
	category := SelectCategory(scores, e.tieBreaker)
	stability := InterpretStability(totals.Get(EmotionalStability))

	result := TestResult{
		Category:    category,
		Description: stability.Description(),
	}

	report := &Report{
		Totals:          totals,
		Scales:          totals.Map(),
		CategoryScores:  scores,
		Stability:       stability,
		StabilityTier:   stability.String(),
		Result:          result,
		Recommendations: Recommend(category),
	}
	if len(tied) > 1 {
		report.Tied = tied
	}

	fields := logger.ResultFields(string(category), stability.String())
	fields = append(fields, zap.Int("tied", len(tied)), zap.Any("scales", report.Scales))
	e.logger.Debug("test scored", fields...)

	return report, nil
}
