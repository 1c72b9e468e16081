package headhunter

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type fakeAPI struct {
	mu      sync.Mutex
	queries []string
	pages   int
	gzip    bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.RawQuery)
	f.mu.Unlock()

	if r.URL.Path != SearchPath {
		http.NotFound(w, r)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	text := r.URL.Query().Get("text")

	body := map[string]any{
		"items": []map[string]any{{
			"id":       fmt.Sprintf("%s-%d", text, page),
			"name":     text,
			"has_test": page == 1,
			"salary":   map[string]any{"from": 30000, "currency": "RUR"},
			"employer": map[string]any{"id": "e1", "name": "Acme"},
			"area":     map[string]any{"id": "1", "name": "Москва"},
		}},
		"found":    f.pages,
		"pages":    f.pages,
		"page":     page,
		"per_page": 1,
	}

	w.Header().Set("Content-Type", "application/json")
	if f.gzip {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_ = json.NewEncoder(gz).Encode(body)
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c := New(zap.NewNop(), "")
	c.APIURL = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestSearchPaginates(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: 3, gzip: true}
	c := newTestClient(t, api)

	vacancies, err := c.Search(context.Background(), &SearchParams{Text: "Флорист"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vacancies.Len() != 3 {
		t.Fatalf("expected 3 vacancies, got %d", vacancies.Len())
	}

	v := vacancies.FindByID("Флорист-1")
	if v == nil {
		t.Fatalf("expected vacancy from the second page")
	}
	if !v.HasTest || v.Employer.Name != "Acme" || v.Area.Name != "Москва" {
		t.Fatalf("unexpected decoded vacancy: %+v", v)
	}
	if v.SalaryString() != "от 30000 RUR" {
		t.Fatalf("unexpected salary: %q", v.SalaryString())
	}
}

func TestSearchRespectsMaxPages(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: 5}
	c := newTestClient(t, api)
	c.MaxPages = 2

	vacancies, err := c.Search(context.Background(), &SearchParams{Text: "Электрик"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vacancies.Len() != 2 {
		t.Fatalf("expected 2 vacancies, got %d", vacancies.Len())
	}
}

func TestSearchTitles(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: 1}
	c := newTestClient(t, api)

	titles := []string{"Учитель", "Психолог"}
	suggestions, err := c.SearchTitles(context.Background(), titles, SearchParams{Areas: []int{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 2 || suggestions[0].Title != "Учитель" || suggestions[1].Title != "Психолог" {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}

	for _, q := range api.queries {
		if !slicesContainsQuery(q, "experience", noExperience) {
			t.Fatalf("expected default experience filter in %q", q)
		}
		if !slicesContainsQuery(q, "area", "1") {
			t.Fatalf("expected area filter in %q", q)
		}
	}
}

func TestSearchBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := New(nil, "token")
	c.APIURL = srv.URL

	if _, err := c.SearchTitles(context.Background(), []string{"Бухгалтер"}, SearchParams{}); err == nil {
		t.Fatalf("expected error for bad status")
	}
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	q := buildParams(&SearchParams{
		Text:       "Аниматор",
		Areas:      []int{1, 2},
		Schedules:  []string{"flexible", ""},
		OnlySalary: true,
		Period:     0,
	})

	if q.Get("text") != "Аниматор" {
		t.Fatalf("unexpected text: %q", q.Get("text"))
	}
	if !slices.Equal(q["area"], []string{"1", "2"}) {
		t.Fatalf("unexpected areas: %v", q["area"])
	}
	if !slices.Equal(q["schedule"], []string{"flexible"}) {
		t.Fatalf("unexpected schedules: %v", q["schedule"])
	}
	if q.Get("only_with_salary") != "true" {
		t.Fatalf("expected only_with_salary flag")
	}
	if q.Has("period") || q.Has("experience") {
		t.Fatalf("zero values must not be sent: %v", q)
	}
}

func TestVacanciesExclude(t *testing.T) {
	t.Parallel()

	v := &Vacancies{Items: []*Vacancy{
		{ID: "1", HasTest: true},
		{ID: "2", Employer: Employer{ID: "bad"}},
		{ID: "3", Archived: true},
		{ID: "4"},
	}}

	if got := v.ExcludeWithTest(); !slices.Equal(got, []string{"1"}) {
		t.Fatalf("unexpected with-test exclusion: %v", got)
	}
	if got := v.ExcludeEmployers([]string{"bad"}); !slices.Equal(got, []string{"2"}) {
		t.Fatalf("unexpected employer exclusion: %v", got)
	}
	if got := v.ExcludeArchived(); !slices.Equal(got, []string{"3"}) {
		t.Fatalf("unexpected archived exclusion: %v", got)
	}
	if v.Len() != 1 || v.Items[0].ID != "4" {
		t.Fatalf("unexpected remaining vacancies: %+v", v.Items)
	}
}

func TestReportByEmployer(t *testing.T) {
	t.Parallel()

	v := &Vacancies{Items: []*Vacancy{{
		ID:           "1",
		Name:         "Флорист",
		Employer:     Employer{ID: "emp1", Name: "Цветы"},
		AlternateURL: "https://example.com",
		Salary:       &Salary{From: 20000, To: 30000, Currency: "RUR"},
	}}}

	entries := v.ReportByEmployer()["Цветы (emp1)"]
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["salary"] != "20000-30000 RUR" {
		t.Fatalf("unexpected salary: %q", entries[0]["salary"])
	}
}

func slicesContainsQuery(raw, key, value string) bool {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return false
	}
	return slices.Contains(values[key], value)
}
