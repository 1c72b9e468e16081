package headhunter

import (
	"fmt"
	"slices"
)

type Vacancies struct {
	Items []*Vacancy
}

type Named struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Salary struct {
	From     int    `json:"from,omitempty"`
	To       int    `json:"to,omitempty"`
	Currency string `json:"currency,omitempty"`
	Gross    bool   `json:"gross,omitempty"`
}

type Employer struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Trusted      bool   `json:"trusted,omitempty"`
}

type Snippet struct {
	Requirement    string `json:"requirement,omitempty"`
	Responsibility string `json:"responsibility,omitempty"`
}

type Vacancy struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Area         Named    `json:"area,omitempty"`
	HasTest      bool     `json:"has_test,omitempty"`
	Salary       *Salary  `json:"salary,omitempty"`
	Experience   Named    `json:"experience,omitempty"`
	Schedule     Named    `json:"schedule,omitempty"`
	Employment   Named    `json:"employment,omitempty"`
	Employer     Employer `json:"employer,omitempty"`
	AlternateURL string   `json:"alternate_url,omitempty"`
	Archived     bool     `json:"archived,omitempty"`
	Snippet      Snippet  `json:"snippet,omitempty"`
	PublishedAt  string   `json:"published_at,omitempty"`
}

// SalaryString renders the salary range, or an empty string when hidden.
func (va *Vacancy) SalaryString() string {
	s := va.Salary
	if s == nil {
		return ""
	}

	switch {
	case s.From > 0 && s.To > 0:
		return fmt.Sprintf("%d-%d %s", s.From, s.To, s.Currency)
	case s.From > 0:
		return fmt.Sprintf("от %d %s", s.From, s.Currency)
	case s.To > 0:
		return fmt.Sprintf("до %d %s", s.To, s.Currency)
	default:
		return ""
	}
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

func (v *Vacancies) FindByID(id string) *Vacancy {
	for _, vacancy := range v.Items {
		if vacancy.ID == id {
			return vacancy
		}
	}
	return nil
}

// ExcludeFunc removes every vacancy matching drop, keeping order. It returns
// the removed vacancy ids.
func (v *Vacancies) ExcludeFunc(drop func(*Vacancy) bool) []string {
	var excluded []string
	v.Items = slices.DeleteFunc(v.Items, func(vacancy *Vacancy) bool {
		if drop(vacancy) {
			excluded = append(excluded, vacancy.ID)
			return true
		}
		return false
	})
	return excluded
}

func (v *Vacancies) ExcludeWithTest() []string {
	return v.ExcludeFunc(func(vacancy *Vacancy) bool { return vacancy.HasTest })
}

func (v *Vacancies) ExcludeArchived() []string {
	return v.ExcludeFunc(func(vacancy *Vacancy) bool { return vacancy.Archived })
}

func (v *Vacancies) ExcludeEmployers(ids []string) []string {
	return v.ExcludeFunc(func(vacancy *Vacancy) bool {
		return slices.Contains(ids, vacancy.Employer.ID)
	})
}

// ReportByEmployer groups vacancies by "<employer> (<id>)".
func (v *Vacancies) ReportByEmployer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, vacancy := range v.Items {
		key := fmt.Sprintf("%s (%s)", vacancy.Employer.Name, vacancy.Employer.ID)
		report[key] = append(report[key], map[string]string{
			"name":                 vacancy.Name,
			"url":                  vacancy.AlternateURL,
			"area":                 vacancy.Area.Name,
			"salary":               vacancy.SalaryString(),
			"brief requirement":    vacancy.Snippet.Requirement,
			"brief responsibility": vacancy.Snippet.Responsibility,
		})
	}
	return report
}
