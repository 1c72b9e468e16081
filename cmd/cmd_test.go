package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/ai"
	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/headhunter"
	"github.com/spigell/proforientation/internal/store"
)

func flatReport(t *testing.T) *careertest.Report {
	t.Helper()

	answers := make(careertest.Answers, careertest.QuestionCount)
	for i := range answers {
		answers[i] = 3
	}

	engine, err := newEngine(&Config{TieBreak: "first"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := engine.Report(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return report
}

func TestNewEngineRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	if _, err := newEngine(&Config{TieBreak: "coin"}, nil); err == nil {
		t.Fatalf("expected error for unknown tie-break policy")
	}
}

func TestPresentText(t *testing.T) {
	t.Parallel()

	report := flatReport(t)
	advice := &ai.Advice{Summary: "Попробуй кружок рисования", NextSteps: []string{"Собери портфолио"}}

	var out bytes.Buffer
	if err := present(&out, outputText, report.Result, report, advice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Направление: " + string(careertest.CreativityArt),
		"Равные баллы:",
		"Графический дизайнер",
		careertest.StabilityModerate.Description(),
		"Собери портфолио",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestPresentUnknownCategory(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	result := careertest.Decode("Космонавтика|||описание")
	if err := present(&out, outputText, result, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "нет рекомендаций") {
		t.Fatalf("expected empty recommendations note, got:\n%s", out.String())
	}
}

func TestPresentEncodedAndJSON(t *testing.T) {
	t.Parallel()

	report := flatReport(t)

	var encoded bytes.Buffer
	if err := present(&encoded, outputEncoded, report.Result, report, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(encoded.String()); careertest.Decode(got) != report.Result {
		t.Fatalf("encoded output does not round trip: %q", got)
	}

	var raw bytes.Buffer
	if err := present(&raw, outputJSON, report.Result, report, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded presentation
	if err := json.Unmarshal(raw.Bytes(), &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Result != report.Result || len(decoded.Recommendations) != 4 {
		t.Fatalf("unexpected json output: %+v", decoded)
	}

	if err := validateOutput("xml"); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestRecommendedTitles(t *testing.T) {
	t.Parallel()

	config := &Config{Store: filepath.Join(t.TempDir(), "results.json")}

	titles, err := recommendedTitles(config, string(careertest.NatureEcology), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if titles[0] != "Помощник ветеринара" {
		t.Fatalf("unexpected titles: %v", titles)
	}

	if _, err := recommendedTitles(config, "", nil); err == nil {
		t.Fatalf("expected error without category and user")
	}

	config.User = "masha"
	if _, err := recommendedTitles(config, "", nil); err == nil {
		t.Fatalf("expected error without a stored result")
	}

	result := careertest.TestResult{Category: careertest.PeopleWork}
	if _, err := store.New(config.Store, nil).Save("masha", result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	titles, err = recommendedTitles(config, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if titles[0] != "Учитель" {
		t.Fatalf("unexpected titles: %v", titles)
	}

	if _, err := recommendedTitles(config, "Космонавтика", nil); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestWriteHistory(t *testing.T) {
	t.Parallel()

	records := []*store.Record{{
		User:    "petya",
		Result:  careertest.Encode(careertest.TestResult{Category: careertest.InformationWork, Description: "x"}),
		TakenAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}}

	var out bytes.Buffer
	if err := writeHistory(&out, records, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "petya\t"+string(careertest.InformationWork)) {
		t.Fatalf("unexpected history: %q", out.String())
	}
}

func TestWriteSuggestions(t *testing.T) {
	t.Parallel()

	suggestions := []*headhunter.Suggestion{{
		Title: "Флорист",
		Vacancies: &headhunter.Vacancies{Items: []*headhunter.Vacancy{{
			ID:       "1",
			Name:     "Флорист-стажер",
			Employer: headhunter.Employer{ID: "e1", Name: "Цветы"},
			Salary:   &headhunter.Salary{From: 25000, Currency: "RUR"},
		}}},
	}}

	var out bytes.Buffer
	if err := writeSuggestions(&out, suggestions, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Флорист: 1") || !strings.Contains(out.String(), "от 25000 RUR") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	out.Reset()
	if err := writeSuggestions(&out, suggestions, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Цветы (e1)") {
		t.Fatalf("expected employer report, got %q", out.String())
	}
}

func TestResumeString(t *testing.T) {
	t.Parallel()

	if got := resumeString([]int{5, 4, 1}); got != "5,4,1" {
		t.Fatalf("unexpected resume string %q", got)
	}
	if got := resumeString(nil); got != "" {
		t.Fatalf("expected empty resume string, got %q", got)
	}
}
