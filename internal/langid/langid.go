// Package langid scores input text against per-language marker particles
// and gendered-noun lexicon hits to pick a language tag. It always
// returns a tag; ties fall back to the configured default.
package langid

import (
	"strings"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
)

const (
	particleWeight = 1
	lexiconWeight  = 2
)

// Detector identifies the language of short passages
type Detector struct {
	store       *lexicon.Store
	defaultLang model.Language
}

// NewDetector creates a detector over the given lexicons
func NewDetector(store *lexicon.Store, defaultLang model.Language) *Detector {
	return &Detector{store: store, defaultLang: defaultLang}
}

// Detect returns the language with the strictly higher score. A tie,
// including empty input, resolves to the default language.
func (d *Detector) Detect(text string) model.Language {
	tn := d.score(text, model.LanguageSetswana)
	zu := d.score(text, model.LanguageIsiZulu)

	switch {
	case zu > tn:
		return model.LanguageIsiZulu
	case tn > zu:
		return model.LanguageSetswana
	default:
		return d.defaultLang
	}
}

func (d *Detector) score(text string, lang model.Language) int {
	tab := d.store.Table(lang)
	if tab == nil {
		return 0
	}
	lower := strings.ToLower(text)
	padded := " " + lower + " "

	score := 0
	for _, marker := range tab.MarkerParticles {
		score += particleWeight * strings.Count(padded, " "+marker+" ")
	}
	for _, gender := range []model.Gender{model.GenderMale, model.GenderFemale} {
		for term := range tab.GenderedNouns[gender] {
			score += lexiconWeight * strings.Count(lower, term)
		}
	}
	return score
}
