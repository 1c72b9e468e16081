package quiz

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
)

var (
	ErrInvalidAnswer = errors.New("answer is out of range")
	ErrCompleted     = errors.New("all questions are answered")
	ErrIncomplete    = errors.New("test is not complete")
	ErrFinalized     = errors.New("answers are already finalized")
	ErrNothingToUndo = errors.New("no answered questions")
)

type scorer interface {
	Report(a careertest.Answers) (*careertest.Report, error)
}

// Session collects answers one by one and finalizes them exactly once per attempt.
type Session struct {
	engine  scorer
	logger  *zap.Logger
	answers careertest.Answers
	next    int
	attempt int
	report  *careertest.Report
}

// New starts a session. A nil logger is replaced with a no-op logger.
func New(engine scorer, l *zap.Logger) *Session {
	return &Session{
		engine:  engine,
		logger:  logger.WithFields(l),
		answers: careertest.NewAnswers(nil),
		attempt: 1,
	}
}

// Resume starts a session from previously collected answers. Answers stop at
// the first unanswered position.
func Resume(engine scorer, l *zap.Logger, partial []int) (*Session, error) {
	s := New(engine, l)
	for _, v := range partial {
		if v == careertest.Unanswered {
			break
		}
		if err := s.Answer(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (careertest.Question, bool) {
	return careertest.QuestionAt(s.next)
}

// Answer records the answer to the current question.
func (s *Session) Answer(value int) error {
	if s.report != nil {
		return ErrFinalized
	}
	if s.next >= careertest.QuestionCount {
		return ErrCompleted
	}
	if value < careertest.MinAnswer || value > careertest.MaxAnswer {
		return fmt.Errorf("%w: %d", ErrInvalidAnswer, value)
	}

	s.answers[s.next] = value
	s.next++

	return nil
}

// Back clears the last answer so the question can be answered again.
func (s *Session) Back() error {
	if s.report != nil {
		return ErrFinalized
	}
	if s.next == 0 {
		return ErrNothingToUndo
	}

	s.next--
	s.answers[s.next] = careertest.Unanswered

	return nil
}

// Progress returns the number of answered questions and the total.
func (s *Session) Progress() (int, int) {
	return s.next, careertest.QuestionCount
}

// Answers returns a snapshot of the sheet with unanswered positions set to zero.
func (s *Session) Answers() careertest.Answers {
	return careertest.NewAnswers(s.answers)
}

// Attempt returns the 1-based number of the current attempt.
func (s *Session) Attempt() int {
	return s.attempt
}

// Finalize scores the collected answers. It may be called once all questions
// are answered and returns the same report on repeated calls.
func (s *Session) Finalize() (*careertest.Report, error) {
	if s.report != nil {
		return s.report, nil
	}
	if s.next < careertest.QuestionCount {
		return nil, fmt.Errorf("%w: %d of %d answered", ErrIncomplete, s.next, careertest.QuestionCount)
	}

	report, err := s.engine.Report(s.answers)
	if err != nil {
		return nil, fmt.Errorf("scoring answers: %w", err)
	}

	s.report = report
	s.logger.Info("test finalized",
		append(logger.ResultFields(string(report.Result.Category), report.StabilityTier),
			zap.Int("attempt", s.attempt))...,
	)

	return report, nil
}

// Result returns the finalized result of the current attempt, if any.
func (s *Session) Result() (*careertest.TestResult, bool) {
	if s.report == nil {
		return nil, false
	}
	result := s.report.Result
	return &result, true
}

// Retake discards the answers and result of the current attempt.
func (s *Session) Retake() {
	s.answers = careertest.NewAnswers(nil)
	s.next = 0
	s.report = nil
	s.attempt++

	s.logger.Debug("retaking test", zap.Int("attempt", s.attempt))
}
