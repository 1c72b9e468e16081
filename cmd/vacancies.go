package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/filtering"
	"github.com/spigell/proforientation/internal/headhunter"
	"github.com/spigell/proforientation/internal/secrets"
	"github.com/spigell/proforientation/internal/store"
)

const PromptAllTitles = "Все профессии"

var vacanciesCmd = &cobra.Command{
	Use:   "vacancies",
	Short: "Search hh.ru vacancies for the recommended professions",
	Long: `Vacancies takes the direction from --category or from the stored result of
--user and searches hh.ru for every recommended profession.`,
	Run: func(cmd *cobra.Command, _ []string) {
		l, config := setup()

		category, _ := cmd.Flags().GetString("category")
		all, _ := cmd.Flags().GetBool("all")
		asJSON, _ := cmd.Flags().GetBool("as-json")

		titles, err := recommendedTitles(config, category, l)
		if err != nil {
			l.Fatal("getting recommended professions", zap.Error(err))
		}

		if !all {
			if titles, err = pickTitles(titles); err != nil {
				l.Fatal("exiting", zap.Error(err))
			}
		}

		hh, err := newHeadhunter(config.Vacancies, l)
		if err != nil {
			l.Fatal("creating a headhunter client", zap.Error(err))
		}

		suggestions, err := searchVacancies(cmd.Context(), hh, config.Vacancies, titles, l)
		if err != nil {
			l.Fatal("searching vacancies", zap.Error(err))
		}

		if err := writeSuggestions(cmd.OutOrStdout(), suggestions, asJSON); err != nil {
			l.Fatal("writing vacancies", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(vacanciesCmd)

	vacanciesCmd.Flags().StringP("category", "c", "", "direction to search for instead of the stored result")
	vacanciesCmd.Flags().BoolP("all", "y", false, "search every recommended profession without asking")
	vacanciesCmd.Flags().Bool("as-json", false, "print vacancies grouped by employer as json")
}

func recommendedTitles(config *Config, category string, l *zap.Logger) ([]string, error) {
	c := careertest.Category(strings.TrimSpace(category))

	if c == "" {
		if config.User == "" {
			return nil, errors.New("either --category or --user is required")
		}
		record, err := newStore(config, l).Get(config.User)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: take the test first", err)
			}
			return nil, err
		}
		c = record.Decoded().Category
	}

	titles := careertest.Recommend(c)
	if len(titles) == 0 {
		return nil, fmt.Errorf("no recommended professions for %q", c)
	}

	return titles, nil
}

func pickTitles(titles []string) ([]string, error) {
	prompt := promptui.Select{
		Label: "Какую профессию искать?",
		Items: append([]string{PromptAllTitles}, titles...),
	}

	_, choice, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	if choice == PromptAllTitles {
		return titles, nil
	}
	return []string{choice}, nil
}

func newHeadhunter(config *VacanciesConfig, l *zap.Logger) (*headhunter.Client, error) {
	// Vacancy search is public, the token only raises rate limits.
	var token string
	if config.TokenFile != "" {
		var err error
		token, err = secrets.Load(secrets.Source{Name: "headhunter token", File: config.TokenFile})
		if err != nil {
			return nil, err
		}
	}

	hh := headhunter.New(l, token)
	if config.UserAgent != "" {
		hh.UserAgent = config.UserAgent
	}
	hh.MaxPages = config.MaxPages

	return hh, nil
}

func searchVacancies(ctx context.Context, hh *headhunter.Client, config *VacanciesConfig, titles []string, l *zap.Logger) ([]*headhunter.Suggestion, error) {
	suggestions, err := hh.SearchTitles(ctx, titles, *config.Search)
	if err != nil {
		return nil, err
	}

	filters := filtering.New([]filtering.Filter{
		filtering.NewWithTest(),
		filtering.NewArchived(),
		filtering.NewExcludedEmployers(config.ExcludeEmployers),
	}, l)

	for _, status := range filters.Describe() {
		l.Debug("filter configured", zap.String("name", status.Name), zap.Bool("enabled", status.Enabled), zap.Any("details", status.Details))
	}

	for _, s := range suggestions {
		if err := filters.Run(ctx, s.Vacancies); err != nil {
			return nil, fmt.Errorf("filtering %q: %w", s.Title, err)
		}
		l.Info("vacancies left", zap.String("title", s.Title), zap.Int("count", s.Vacancies.Len()))
	}

	return suggestions, nil
}

func writeSuggestions(w io.Writer, suggestions []*headhunter.Suggestion, asJSON bool) error {
	if asJSON {
		report := make(map[string]map[string][]map[string]string, len(suggestions))
		for _, s := range suggestions {
			report[s.Title] = s.Vacancies.ReportByEmployer()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	var b strings.Builder
	for _, s := range suggestions {
		fmt.Fprintf(&b, "%s: %d\n", s.Title, s.Vacancies.Len())
		for _, v := range s.Vacancies.Items {
			fmt.Fprintf(&b, "  %s | %s | %s | %s\n", v.Name, v.Employer.Name, v.SalaryString(), v.AlternateURL)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
