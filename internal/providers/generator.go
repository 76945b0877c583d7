package providers

import "context"

// Generator renders canonical markup into a complete HTML page through a
// generative model.
type Generator interface {
	Name() string
	Generate(ctx context.Context, tokens TokenSource, markup string) Outcome[string]
}

// Sampling defaults used by both generators.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// pageOutcome trims code fences from generated text and rejects an empty page.
func pageOutcome(text string) Outcome[string] {
	page := StripFences(text)
	if page == "" {
		return Failure[string](ErrEmptyResult)
	}
	return Success(page)
}
