package careertest

import "strings"

// Delimiter separates the category from the description in a stored result.
const Delimiter = "|||"

// TestResult is the outcome of a finalized test.
type TestResult struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Recommendations returns the job titles for the result category.
func (r TestResult) Recommendations() []string {
	return Recommend(r.Category)
}

// Encode renders the result in its stored form "<category>|||<description>".
func Encode(r TestResult) string {
	return string(r.Category) + Delimiter + r.Description
}

// Decode parses a stored result. Strings without a delimiter are legacy
// category-only results and decode with an empty description.
func Decode(s string) TestResult {
	category, description, found := strings.Cut(s, Delimiter)
	if !found {
		return TestResult{Category: Category(s)}
	}

	return TestResult{Category: Category(category), Description: description}
}

func (r TestResult) String() string {
	return Encode(r)
}
