// Package classify assigns a single bias-type label to a detection
// result. Scoring is transparent and additive: each category gains a
// point per matched keyword and a fixed bonus per rule firing whose
// rule has an affinity for it; the highest total wins, with a fixed
// priority order breaking ties.
package classify

import (
	"strings"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

// affinityBonus is what one rule firing adds to its affiliated
// category, worth two keyword hits.
const affinityBonus = 2

// tiePriority orders categories for tie-breaking, highest first
var tiePriority = []model.CategoryLabel{
	model.CategoryGender,
	model.CategoryOccupational,
	model.CategoryGenderedWording,
	model.CategoryPronominalization,
}

// keywordTable lists the category-indicative surface terms mined from
// the ground-truth corpus. Single words match by stem; multi-word
// phrases match as substrings of the lowercased input.
var keywordTable = map[model.CategoryLabel][]string{
	model.CategoryOccupational: {
		"motshameki", "morutišana", "motlhankedi", "thotse", "selepe", "manamagadi",
		"mma seapei", "mosala gae", "poo", "lesaka", "dinke", "mabogo",
		"ubunjiniyela", "ifisiksi", "ezobuciko", "isayensi", "ikhompyutha",
		"ezemidlalo", "ezomnotho", "ukufunda", "bangcono", "akufanele",
		"monna", "mosadi", "abesilisa", "abesifazane", "amantombazane", "amakhwenkwe",
	},
	model.CategoryGender: {
		"mosetsana", "mosimane", "intombazane", "umfana",
	},
	model.CategoryGenderedWording: {
		"segametsi", "mme", "mmagwana", "motsadi", "ga a nyala mosadi",
		"owesifazane", "owesilisa",
	},
	model.CategoryPronominalization: {
		"khumoetsile", "kgosietsile", "lerapo", "lobola", "magadi",
	},
}

// ruleAffinity maps each rule to the category its firing is evidence
// for. R4 and R7 are absent: R4 is routed per-finding to the category
// owning the gendered noun inside its span, and R7 carries no category
// signal beyond its keywords.
var ruleAffinity = map[model.RuleID]model.CategoryLabel{
	model.RuleSubjectStereotype:    model.CategoryOccupational,
	model.RuleContrastiveRoles:     model.CategoryOccupational,
	model.RuleGenderMarking:        model.CategoryOccupational,
	model.RuleDiminutive:           model.CategoryGender,
	model.RuleAsymmetricalOrdering: model.CategoryGenderedWording,
	model.RuleNamedEntity:          model.CategoryGender,
}

// Classifier scores detection results against the category taxonomy
type Classifier struct {
	store *lexicon.Store
}

// NewClassifier creates a classifier over the given lexicons
func NewClassifier(store *lexicon.Store) *Classifier {
	return &Classifier{store: store}
}

// Classify returns the category for a set of findings over the text, or
// ("", false) when there are no findings at all. Findings with an
// all-zero score still classify, as General Bias.
func (c *Classifier) Classify(text string, lang model.Language, findings []model.Finding) (model.CategoryLabel, bool) {
	if len(findings) == 0 {
		return "", false
	}

	tab := c.store.Table(lang)
	scores := make(map[model.CategoryLabel]int, len(keywordTable))
	lower := strings.ToLower(text)
	stems := c.stemSet(text, tab)

	for cat, keywords := range keywordTable {
		for _, kw := range keywords {
			if strings.ContainsRune(kw, ' ') {
				if strings.Contains(lower, kw) {
					scores[cat]++
				}
				continue
			}
			stem := c.keywordStem(kw, tab)
			if _, ok := stems[stem]; ok && stem != "" {
				scores[cat]++
			}
		}
	}

	for _, f := range findings {
		if cat, ok := ruleAffinity[f.Rule]; ok {
			scores[cat] += affinityBonus
			continue
		}
		if f.Rule == model.RuleGeneralization {
			scores[c.nounCategory(f.Span, tab)] += affinityBonus
		}
	}

	best := model.CategoryLabel("")
	bestScore := 0
	for _, cat := range tiePriority {
		if scores[cat] > bestScore {
			best, bestScore = cat, scores[cat]
		}
	}
	if bestScore == 0 {
		return model.CategoryGeneralBias, true
	}
	return best, true
}

// nounCategory finds which category's keyword table owns a gendered
// noun inside the span, defaulting to Gender.
func (c *Classifier) nounCategory(span string, tab *lexicon.Table) model.CategoryLabel {
	stems := c.stemSet(span, tab)
	for _, cat := range tiePriority {
		for _, kw := range keywordTable[cat] {
			if strings.ContainsRune(kw, ' ') {
				continue
			}
			s := c.keywordStem(kw, tab)
			if _, ok := stems[s]; ok && s != "" {
				return cat
			}
		}
	}
	return model.CategoryGender
}

func (c *Classifier) stemSet(text string, tab *lexicon.Table) map[string]struct{} {
	if tab == nil {
		return map[string]struct{}{}
	}
	return morph.StemSet(morph.Tokenize(text, tab.AllPrefixes()))
}

func (c *Classifier) keywordStem(kw string, tab *lexicon.Table) string {
	if tab == nil {
		return ""
	}
	return tab.Stem(kw)
}
