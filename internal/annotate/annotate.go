// Package annotate defines the optional NLP augmentation capability.
// The rule engine depends only on the Annotator interface; when no
// provider is configured the no-op implementation keeps behavior
// identical, just with reduced precision.
package annotate

import (
	"context"

	"github.com/ithute/ithute/internal/model"
)

// HintKind classifies an annotation hint
type HintKind string

const (
	HintPerson HintKind = "person"
	HintPOS    HintKind = "pos"
)

// Hint is one named-entity or part-of-speech suggestion for the input
type Hint struct {
	Text   string       `json:"text"`
	Kind   HintKind     `json:"kind"`
	Gender model.Gender `json:"gender,omitempty"`
	Tag    string       `json:"tag,omitempty"`
}

// Annotator supplies external annotation hints for a text. Errors and
// absence must both degrade gracefully: callers treat a failed or empty
// annotation the same as no annotation at all.
type Annotator interface {
	Name() string
	Annotate(ctx context.Context, text string, lang model.Language) ([]Hint, error)
}

// Noop is the always-empty annotator used when no provider is configured
type Noop struct{}

func (Noop) Name() string { return "noop" }

func (Noop) Annotate(ctx context.Context, text string, lang model.Language) ([]Hint, error) {
	return nil, nil
}

// New selects an annotator from configuration. An empty endpoint means
// the no-op provider.
func New(cfg model.AnnotatorConfig) Annotator {
	if cfg.Endpoint == "" {
		return Noop{}
	}
	return NewHTTPAnnotator(cfg)
}
