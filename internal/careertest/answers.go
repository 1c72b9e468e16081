package careertest

import (
	"errors"
	"fmt"
)

const (
	// MinAnswer and MaxAnswer bound a Likert response.
	MinAnswer = 1
	MaxAnswer = 5
	// Unanswered marks a position that has not been answered yet.
	Unanswered = 0
)

// ErrInvalidInput is returned for answer sets that must not be scored.
var ErrInvalidInput = errors.New("invalid input")

// Answers is an ordered answer sheet aligned with Questions.
type Answers []int

// NewAnswers copies partial into a full-length sheet. Missing entries are Unanswered.
// Entries past QuestionCount are dropped.
func NewAnswers(partial []int) Answers {
	a := make(Answers, QuestionCount)
	copy(a, partial)
	return a
}

// Answered returns the number of positions holding a Likert response.
func (a Answers) Answered() int {
	n := 0
	for _, v := range a {
		if v != Unanswered {
			n++
		}
	}
	return n
}

// Complete reports whether every position holds a Likert response.
func (a Answers) Complete() bool {
	return len(a) == QuestionCount && a.Answered() == QuestionCount
}

// Sum returns the sum of all answers.
func (a Answers) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Validate checks the sheet shape and value range. A finalized sheet must not
// contain unanswered positions.
func Validate(a Answers, finalized bool) error {
	if len(a) != QuestionCount {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidInput, QuestionCount, len(a))
	}

	lower := Unanswered
	if finalized {
		lower = MinAnswer
	}

	for i, v := range a {
		if v < lower || v > MaxAnswer {
			if v == Unanswered {
				return fmt.Errorf("%w: question %d is not answered", ErrInvalidInput, i+1)
			}
			return fmt.Errorf("%w: answer %d to question %d is out of range [%d,%d]", ErrInvalidInput, v, i+1, lower, MaxAnswer)
		}
	}

	return nil
}

// ScaleTotals holds the sum of every scale block.
type ScaleTotals [scaleCount]int

// Get returns the total for a scale.
func (t ScaleTotals) Get(s Scale) int {
	if s < 0 || int(s) >= scaleCount {
		return 0
	}
	return t[s]
}

// Sum returns the sum of all scale totals.
func (t ScaleTotals) Sum() int {
	total := 0
	for _, v := range t {
		total += v
	}
	return total
}

// Map returns the totals keyed by scale name.
func (t ScaleTotals) Map() map[string]int {
	out := make(map[string]int, scaleCount)
	for _, s := range Scales() {
		out[s.String()] = t[s]
	}
	return out
}

// Aggregate sums the answers by fixed position: each scale owns ten
// consecutive questions. Unanswered positions count as zero.
func Aggregate(a Answers) (ScaleTotals, error) {
	var totals ScaleTotals
	if err := Validate(a, false); err != nil {
		return totals, err
	}

	for i, v := range a {
		totals[i/ScaleSize] += v
	}

	return totals, nil
}

// block returns the answers of a single scale.
func (a Answers) block(s Scale) []int {
	start := int(s) * ScaleSize
	return a[start : start+ScaleSize]
}
