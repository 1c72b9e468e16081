package headhunter

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

const (
	SearchPath = "/vacancies"
)

// SearchParams maps to the hh.ru vacancy search query. hhparam is the query
// key; fields without it are not sent.
type SearchParams struct {
	Text        string   `hhparam:"text" mapstructure:"-"`
	Areas       []int    `hhparam:"area" mapstructure:"area"`
	Experience  string   `hhparam:"experience" mapstructure:"experience"`
	Employment  []string `hhparam:"employment" mapstructure:"employment"`
	Schedules   []string `hhparam:"schedule" mapstructure:"schedule"`
	OrderBy     string   `hhparam:"order_by" mapstructure:"order-by"`
	SearchField string   `hhparam:"search_field" mapstructure:"search-field"`
	OnlySalary  bool     `hhparam:"only_with_salary" mapstructure:"only-with-salary"`
	PerPage     string   `hhparam:"per_page" mapstructure:"per-page"`
	Period      uint     `hhparam:"period" mapstructure:"period"`
}

func (c *Client) search(ctx context.Context, params *SearchParams) (*Vacancies, error) {
	var vacancies []*Vacancy

	// Set per_page max as possible. It should be faster.
	if params.PerPage == "" {
		params.PerPage = perPage
	}

	q := buildParams(params)
	apiURLSearch := fmt.Sprintf("%s%s", c.APIURL, SearchPath)

	items, err := c.GetItems(ctx, apiURLSearch, q)
	if err != nil {
		return nil, err
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &vacancies,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding vacancies: %w", err)
	}

	return &Vacancies{
		Items: vacancies,
	}, nil
}

func buildParams(params *SearchParams) url.Values {
	q := url.Values{}
	value := reflect.ValueOf(params).Elem()

	for _, field := range reflect.VisibleFields(value.Type()) {
		key := field.Tag.Get("hhparam")
		if key == "" {
			continue
		}

		switch v := value.FieldByIndex(field.Index).Interface().(type) {
		case []int:
			for _, item := range v {
				q.Add(key, strconv.Itoa(item))
			}
		case []string:
			for _, item := range v {
				if item != "" {
					q.Add(key, item)
				}
			}
		case bool:
			if v {
				q.Set(key, "true")
			}
		default:
			s := fmt.Sprintf("%v", v)
			if s != "" && s != "0" {
				q.Set(key, s)
			}
		}
	}

	return q
}
