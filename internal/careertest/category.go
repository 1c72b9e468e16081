package careertest

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Category is a career inclination label. The label text is part of the
// stored result format and must not change.
type Category string

const (
	CreativityArt       Category = "Творчество и искусство"
	NatureEcology       Category = "Природа и экология"
	InformationWork     Category = "Работа с информацией"
	TechnologyMachinery Category = "Техника и механизмы"
	PeopleWork          Category = "Работа с людьми"
)

// categoryOrder is the table order. Category k is scored from inclination
// answers k and k+5.
var categoryOrder = [...]Category{
	CreativityArt,
	NatureEcology,
	InformationWork,
	TechnologyMachinery,
	PeopleWork,
}

// Categories returns all categories in table order.
func Categories() []Category {
	return slices.Clone(categoryOrder[:])
}

// Known reports whether c is one of the fixed category labels.
func (c Category) Known() bool {
	return slices.Contains(categoryOrder[:], c)
}

// CategoryScore is the inclination score of a single category.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
}

// CategoryScores computes the score of every category from the inclination block.
func CategoryScores(a Answers) ([]CategoryScore, error) {
	if err := Validate(a, false); err != nil {
		return nil, err
	}

	inclination := a.block(Inclination)
	half := len(categoryOrder)

	scores := make([]CategoryScore, 0, len(categoryOrder))
	for k, c := range categoryOrder {
		scores = append(scores, CategoryScore{
			Category: c,
			Score:    inclination[k] + inclination[k+half],
		})
	}

	return scores, nil
}

// TieBreaker chooses one category among those sharing the maximum score.
// tied is never empty and keeps table order.
type TieBreaker interface {
	Pick(tied []Category) Category
}

// FirstTieBreaker picks the earliest tied category in table order.
type FirstTieBreaker struct{}

func (FirstTieBreaker) Pick(tied []Category) Category {
	return tied[0]
}

// LexicalTieBreaker picks the tied category whose label sorts first.
type LexicalTieBreaker struct{}

func (LexicalTieBreaker) Pick(tied []Category) Category {
	return slices.MinFunc(tied, func(a, b Category) int {
		return strings.Compare(string(a), string(b))
	})
}

// RandomTieBreaker picks uniformly among tied categories using its own source.
type RandomTieBreaker struct {
	Rand *rand.Rand
}

// NewRandomTieBreaker returns a RandomTieBreaker backed by a PCG source seeded with seed.
func NewRandomTieBreaker(seed uint64) *RandomTieBreaker {
	return &RandomTieBreaker{Rand: rand.New(rand.NewPCG(seed, seed))}
}

func (r *RandomTieBreaker) Pick(tied []Category) Category {
	if r == nil || r.Rand == nil {
		return tied[0]
	}
	return tied[r.Rand.IntN(len(tied))]
}

// TieBreakerByName maps a configuration value to a TieBreaker.
// seed is only used by "random".
func TieBreakerByName(name string, seed uint64) (TieBreaker, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "first":
		return FirstTieBreaker{}, nil
	case "lexical":
		return LexicalTieBreaker{}, nil
	case "random":
		return NewRandomTieBreaker(seed), nil
	default:
		return nil, fmt.Errorf("unknown tie-break policy: %q", name)
	}
}

// Tied returns the categories sharing the maximum score, in input order.
func Tied(scores []CategoryScore) []Category {
	if len(scores) == 0 {
		return nil
	}

	best := scores[0].Score
	for _, s := range scores[1:] {
		best = max(best, s.Score)
	}

	tied := make([]Category, 0, len(scores))
	for _, s := range scores {
		if s.Score == best {
			tied = append(tied, s.Category)
		}
	}

	return tied
}

// SelectCategory returns the category with the maximum score. A nil tie
// breaker behaves like FirstTieBreaker. Empty scores yield "".
func SelectCategory(scores []CategoryScore, tb TieBreaker) Category {
	tied := Tied(scores)
	switch len(tied) {
	case 0:
		return ""
	case 1:
		return tied[0]
	}

	if tb == nil {
		tb = FirstTieBreaker{}
	}
	return tb.Pick(tied)
}
