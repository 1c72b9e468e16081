package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spigell/proforientation/internal/ai"
	"github.com/spigell/proforientation/internal/careertest"
)

const (
	outputText    = "text"
	outputJSON    = "json"
	outputEncoded = "encoded"
)

type presentation struct {
	Encoded         string                `json:"encoded"`
	Report          *careertest.Report    `json:"report,omitempty"`
	Result          careertest.TestResult `json:"result"`
	Recommendations []string              `json:"recommendations"`
	Advice          *ai.Advice            `json:"advice,omitempty"`
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputEncoded:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text, json or encoded)", format)
	}
}

// present writes a result. report and advice are optional: decoded results
// have no report.
func present(w io.Writer, format string, result careertest.TestResult, report *careertest.Report, advice *ai.Advice) error {
	p := presentation{
		Encoded:         careertest.Encode(result),
		Report:          report,
		Result:          result,
		Recommendations: result.Recommendations(),
		Advice:          advice,
	}

	switch format {
	case outputEncoded:
		_, err := fmt.Fprintln(w, p.Encoded)
		return err
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	default:
		return presentText(w, p)
	}
}

func presentText(w io.Writer, p presentation) error {
	var b strings.Builder

	category := string(p.Result.Category)
	if category == "" {
		category = "-"
	}
	fmt.Fprintf(&b, "Направление: %s\n", category)

	if p.Report != nil {
		if len(p.Report.Tied) > 1 {
			tied := make([]string, 0, len(p.Report.Tied))
			for _, c := range p.Report.Tied {
				tied = append(tied, string(c))
			}
			fmt.Fprintf(&b, "Равные баллы: %s\n", strings.Join(tied, ", "))
		}
		b.WriteString("Баллы по направлениям:\n")
		for _, s := range p.Report.CategoryScores {
			fmt.Fprintf(&b, "  %-24s %2d\n", s.Category, s.Score)
		}
		b.WriteString("Шкалы:\n")
		for _, s := range careertest.Scales() {
			fmt.Fprintf(&b, "  %-24s %2d\n", s, p.Report.Totals.Get(s))
		}
	}

	if p.Result.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Result.Description)
	}

	b.WriteString("\nРекомендуемые профессии:\n")
	if len(p.Recommendations) == 0 {
		b.WriteString("  нет рекомендаций для этого результата\n")
	}
	for _, title := range p.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", title)
	}

	if p.Advice != nil {
		fmt.Fprintf(&b, "\nСовет:\n  %s\n", p.Advice.Summary)
		for _, step := range p.Advice.NextSteps {
			fmt.Fprintf(&b, "  * %s\n", step)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
