package filtering

import (
	"context"
	"strings"

	"github.com/spigell/proforientation/internal/headhunter"
)

type excludeStep struct {
	name    string
	enabled bool
	exclude func(v *headhunter.Vacancies) []string
}

func (f *excludeStep) Name() string { return f.name }

func (f *excludeStep) IsEnabled() bool { return f.enabled }

func (f *excludeStep) Apply(_ context.Context, v *headhunter.Vacancies) (Step, error) {
	initial := v.Len()
	excluded := f.exclude(v)
	return Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

// NewWithTest creates a filter that removes vacancies requiring a test task.
func NewWithTest() Filter {
	return &excludeStep{
		name:    "with_test",
		enabled: true,
		exclude: (*headhunter.Vacancies).ExcludeWithTest,
	}
}

// NewArchived creates a filter that removes archived vacancies.
func NewArchived() Filter {
	return &excludeStep{
		name:    "archived",
		enabled: true,
		exclude: (*headhunter.Vacancies).ExcludeArchived,
	}
}

type employersFilter struct {
	excludeStep
	employers []string
}

// NewExcludedEmployers creates a filter that removes vacancies of the given employer ids.
// It is disabled when no employers are configured.
func NewExcludedEmployers(employers []string) Filter {
	ids := make([]string, 0, len(employers))
	for _, e := range employers {
		if e = strings.TrimSpace(e); e != "" {
			ids = append(ids, e)
		}
	}

	f := &employersFilter{employers: ids}
	f.excludeStep = excludeStep{
		name:    "employers",
		enabled: len(ids) > 0,
		exclude: func(v *headhunter.Vacancies) []string {
			return v.ExcludeEmployers(ids)
		},
	}
	return f
}

func (f *employersFilter) Status() Status {
	details := map[string]string{}
	if len(f.employers) > 0 {
		details["employers"] = strings.Join(f.employers, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: details}
}
