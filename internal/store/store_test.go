package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spigell/proforientation/internal/careertest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New(filepath.Join(t.TempDir(), "data", "results.json"), nil)
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestSaveAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	result := careertest.TestResult{
		Category:    careertest.PeopleWork,
		Description: careertest.StabilityModerate.Description(),
	}

	saved, err := s.Save(" masha ", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Result != careertest.Encode(result) {
		t.Fatalf("expected encoded result, got %q", saved.Result)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "Работа с людьми|||") {
		t.Fatalf("expected delimited result in file, got %s", data)
	}

	got, err := s.Get("masha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Decoded() != result {
		t.Fatalf("expected %+v, got %+v", result, got.Decoded())
	}
}

func TestSaveRetakeSupersedes(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	first := careertest.TestResult{Category: careertest.CreativityArt, Description: "a"}
	second := careertest.TestResult{Category: careertest.NatureEcology, Description: "b"}

	if _, err := s.Save("masha", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Save("petya", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Save("masha", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].User != "masha" || records[0].Decoded() != second {
		t.Fatalf("expected newest masha record first, got %+v", records[0])
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Get("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.Save("  ", careertest.TestResult{}); err == nil {
		t.Fatalf("expected error for empty user")
	}
}

func TestLegacyRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	legacy := `{"results": [{"user": "old", "result": "Техника и механизмы", "taken_at": "2024-01-01T00:00:00Z"}]}`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, err := New(path, nil).Get("old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded := record.Decoded()
	if decoded.Category != careertest.TechnologyMachinery || decoded.Description != "" {
		t.Fatalf("unexpected legacy decode: %+v", decoded)
	}
}

func TestEmptyAndBrokenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := New(empty, nil).List()
	if err != nil || len(records) != 0 {
		t.Fatalf("expected empty store, got %v %v", records, err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := New(broken, nil).List(); err == nil {
		t.Fatalf("expected parse error")
	}
}
