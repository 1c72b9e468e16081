package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/proforientation/internal/careertest"
)

var ErrEmpty = errors.New("answer sheet is empty")

// Sheet is a batch of answers collected outside the interactive quiz.
type Sheet struct {
	User    string `mapstructure:"user"`
	Answers []int  `mapstructure:"answers"`
}

// Load reads a sheet from a yaml, json or toml file. Answers may be given as a
// list of numbers or as a single string accepted by Parse.
func Load(path string) (*Sheet, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading answer sheet %q: %w", path, err)
	}

	return decode(v.AllSettings())
}

func decode(raw map[string]any) (*Sheet, error) {
	if inline, ok := raw["answers"].(string); ok {
		answers, err := Parse(inline)
		if err != nil {
			return nil, err
		}
		raw["answers"] = answers
	}

	var s Sheet
	cfg := &mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding answer sheet: %w", err)
	}

	if len(s.Answers) == 0 {
		return nil, ErrEmpty
	}

	s.User = strings.TrimSpace(s.User)
	return &s, nil
}

// Parse reads answers separated by commas, semicolons or whitespace.
// A run of digits without separators is read one digit per answer.
func Parse(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}

	answers := make([]int, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: answer %d (%q) is not a number", careertest.ErrInvalidInput, i+1, field)
		}
		answers = append(answers, v)
	}

	if len(answers) == 0 {
		return nil, ErrEmpty
	}

	return answers, nil
}

// AnswerSet returns a copy of the answers. The length is preserved so that
// scoring can reject sheets of the wrong size.
func (s *Sheet) AnswerSet() careertest.Answers {
	out := make(careertest.Answers, len(s.Answers))
	copy(out, s.Answers)
	return out
}
