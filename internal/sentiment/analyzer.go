// Package sentiment classifies check-in text and produces wellness
// suggestions, either through an OpenAI-compatible model or a local keyword
// heuristic.
package sentiment

import (
	"context"

	"github.com/yourname/serenedesk/internal"
)

// Analyzer is the sentiment/suggestion client consumed by the check-in flow.
// Implementations return errors wrapping internal.ErrExternalService when
// the backend fails; field-level oddities in a well-formed response are left
// for the entry store to normalize.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, text string) (internal.Classification, error)
	GenerateSuggestions(ctx context.Context, text string, c internal.Classification) (internal.Suggestions, error)
}
