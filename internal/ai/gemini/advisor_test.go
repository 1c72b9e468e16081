package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testReport(t *testing.T) *careertest.Report {
	t.Helper()

	answers := make(careertest.Answers, careertest.QuestionCount)
	for i := range answers {
		answers[i] = 3
	}
	answers[4], answers[9] = 5, 5

	report, err := careertest.NewEngine().Report(answers)
	if err != nil {
		t.Fatalf("scoring: %v", err)
	}
	return report
}

func TestAdvisorAdvise(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"summary\": \"Вам подходит работа с людьми\", \"next_steps\": [\"Запишитесь волонтёром\", \"\", \"Попробуйте вожатым\"]}\n```"}
	advisor := NewAdvisor(stub, 0, zap.NewNop())

	advice, err := advisor.Advise(context.Background(), testReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Summary != "Вам подходит работа с людьми" {
		t.Fatalf("unexpected summary: %q", advice.Summary)
	}
	if len(advice.NextSteps) != 2 {
		t.Fatalf("expected empty steps to be dropped, got %v", advice.NextSteps)
	}
	if advice.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}

	if !strings.Contains(stub.lastPrompt, string(careertest.PeopleWork)) {
		t.Fatalf("expected category in prompt")
	}
	if !strings.Contains(stub.lastPrompt, "- Учитель\n- Психолог") {
		t.Fatalf("expected recommendations list in prompt: %s", stub.lastPrompt)
	}
	if strings.Contains(stub.lastPrompt, "{{") {
		t.Fatalf("expected all placeholders to be replaced")
	}
}

func TestAdvisorErrors(t *testing.T) {
	t.Parallel()

	advisor := NewAdvisor(&stubGenerator{err: errors.New("quota")}, 10, nil)
	if _, err := advisor.Advise(context.Background(), testReport(t)); err == nil {
		t.Fatalf("expected generator error")
	}

	if _, err := advisor.Advise(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil report")
	}

	advisor = NewAdvisor(&stubGenerator{response: `{"next_steps": []}`}, 10, nil)
	if _, err := advisor.Advise(context.Background(), testReport(t)); err == nil {
		t.Fatalf("expected error for missing summary")
	}

	advisor = NewAdvisor(&stubGenerator{response: "not json"}, 10, nil)
	if _, err := advisor.Advise(context.Background(), testReport(t)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseResponseCoercesSteps(t *testing.T) {
	t.Parallel()

	advice, err := parseResponse(`{"summary": "ok", "next_steps": "один шаг"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(advice.NextSteps) != 1 || advice.NextSteps[0] != "один шаг" {
		t.Fatalf("unexpected steps: %v", advice.NextSteps)
	}

	advice, err = parseResponse(`{"summary": "ok", "next_steps": ["1","2","3","4","5","6","7"]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(advice.NextSteps) != maxNextSteps {
		t.Fatalf("expected steps to be capped at %d, got %d", maxNextSteps, len(advice.NextSteps))
	}
}

func TestBuildPromptWithoutRecommendations(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt("{}", nil)
	if !strings.Contains(prompt, "- нет") {
		t.Fatalf("expected placeholder for missing recommendations")
	}
}
