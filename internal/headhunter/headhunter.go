package headhunter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/logger"
)

const (
	apiURL    = "https://api.hh.ru"
	userAgent = "spigell/proforientation (spigelly@gmail.com)"
	// Max value for search per page.
	perPage = "100"
	// Experience filter for applicants without work history.
	noExperience = "noExperience"
)

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	// MaxPages limits pagination per search. Zero means all pages.
	MaxPages int
}

// New creates a client for the hh.ru API. Vacancy search works without a token.
func New(l *zap.Logger, token string) *Client {
	return &Client{
		token:  strings.TrimSpace(token),
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger.WithFields(l),
		UserAgent: userAgent,
	}
}

func (c *Client) Search(ctx context.Context, params *SearchParams) (*Vacancies, error) {
	return c.search(ctx, params)
}

// Suggestion groups the vacancies found for one recommended job title.
type Suggestion struct {
	Title     string
	Vacancies *Vacancies
}

// SearchTitles runs one search per job title using params as a template.
// Titles are searched in order. An empty experience filter defaults to
// vacancies that need no work history.
func (c *Client) SearchTitles(ctx context.Context, titles []string, params SearchParams) ([]*Suggestion, error) {
	if params.Experience == "" {
		params.Experience = noExperience
	}

	suggestions := make([]*Suggestion, 0, len(titles))
	for _, title := range titles {
		p := params
		p.Text = title

		vacancies, err := c.search(ctx, &p)
		if err != nil {
			return nil, fmt.Errorf("searching %q: %w", title, err)
		}

		c.logger.Debug("vacancies found", zap.String("title", title), zap.Int("count", vacancies.Len()))
		suggestions = append(suggestions, &Suggestion{Title: title, Vacancies: vacancies})
	}

	return suggestions, nil
}
