package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/ai"
	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
	"github.com/spigell/proforientation/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	maxNextSteps        = 5
)

func NewAdvisor(generator contentGenerator, maxLogLength int, l *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		logger:    logger.WithFields(l),
		maxLogLen: maxLogLength,
	}
}

var _ ai.Advisor = (*Advisor)(nil)

func (a *Advisor) Advise(ctx context.Context, report *careertest.Report) (*ai.Advice, error) {
	if report == nil {
		return nil, errors.New("test report is required")
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	prompt := buildPrompt(string(reportJSON), report.Recommendations)

	a.logger.Debug("gemini generate content request",
		zap.String("category", string(report.Result.Category)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

func buildPrompt(reportJSON string, recommendations []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Report:\n{{REPORT_JSON}}\n\nJobs:\n{{RECOMMENDATIONS}}\n\nJSON Response:"
	}

	jobs := "- нет"
	if len(recommendations) > 0 {
		jobs = "- " + strings.Join(recommendations, "\n- ")
	}

	prompt := strings.ReplaceAll(template, "{{REPORT_JSON}}", reportJSON)
	prompt = strings.ReplaceAll(prompt, "{{RECOMMENDATIONS}}", jobs)
	return prompt
}

func parseResponse(raw string) (*ai.Advice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	summary := coerceString(data["summary"])
	if summary == "" {
		return nil, errors.New("gemini response has no summary")
	}

	return &ai.Advice{
		Summary:   summary,
		NextSteps: coerceStrings(data["next_steps"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	var items []any
	switch val := v.(type) {
	case []any:
		items = val
	case string:
		items = []any{val}
	default:
		return nil
	}

	steps := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			steps = append(steps, s)
		}
		if len(steps) == maxNextSteps {
			break
		}
	}
	return steps
}
