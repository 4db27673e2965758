// Package lexicon holds the static per-language tables the detection
// rules consult: gendered nouns and titles, neutral equivalents,
// stereotyped actions, occupations, pejoratives, generalization markers,
// contrast conjunctions and prefix tables. A Store is immutable after
// construction and safe for concurrent use.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

// ActionCategory classifies a stereotyped action
type ActionCategory string

const (
	ActionDomestic      ActionCategory = "domestic"
	ActionAcademic      ActionCategory = "academic_leadership"
	ActionPhysicalLabor ActionCategory = "physical_labor"
)

// Action is one stereotyped role/verb/phrase
type Action struct {
	Phrase   string
	Category ActionCategory
}

// OccupationForm pairs a gender-marked occupation compound with the
// neutral form that should replace it
type OccupationForm struct {
	Marked  string
	Neutral string
}

// NounEntry is a gendered noun resolved through its stem
type NounEntry struct {
	Term    string
	Gender  model.Gender
	Meaning string
	Plural  bool
}

// TitleEntry is a gendered honorific resolved through its stem
type TitleEntry struct {
	Term   string
	Gender model.Gender
}

// Table is the full lexicon for one language
type Table struct {
	Language model.Language

	GenderedNouns map[model.Gender]map[string]string
	PluralForms   map[string]bool
	Titles        map[model.Gender][]string

	NeutralSingular string
	NeutralPlural   string
	NeutralEveryone string

	Actions             []Action
	Occupations         map[string]string
	GenderedOccupations []OccupationForm

	Pejoratives         []string
	FeminineAdjectives  []string
	MasculineAdjectives []string

	GeneralizationMarkers []string
	ContrastConjunctions  []string
	InfantilizingPatterns []string

	// MarkerParticles feed the language identifier only
	MarkerParticles []string

	// Prefix tables, noun-class before verb before particle; the
	// preprocessor picks the longest match across all three.
	NounClassPrefixes []string
	VerbPrefixes      []string
	ParticlePrefixes  []string

	// BiasedNames maps given names that co-occur with stereotypes in the
	// source corpus to the gender they code for
	BiasedNames map[string]model.Gender

	nounStems  map[string]NounEntry
	titleStems map[string]TitleEntry
	pejStems   map[string]string
	prefixes   []string
}

// Store bundles the per-language tables
type Store struct {
	tables map[model.Language]*Table
}

// NewStore builds a store from tables, indexing stems and validating
// that no (language, gender, term) duplicates exist.
func NewStore(tables ...*Table) (*Store, error) {
	s := &Store{tables: make(map[model.Language]*Table, len(tables))}
	for _, t := range tables {
		if err := t.build(); err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", t.Language.Name(), err)
		}
		s.tables[t.Language] = t
	}
	return s, nil
}

// Table returns the lexicon for a language, or nil if unsupported
func (s *Store) Table(lang model.Language) *Table {
	return s.tables[lang]
}

// Languages lists the languages the store covers
func (s *Store) Languages() []model.Language {
	out := make([]model.Language, 0, len(s.tables))
	for _, l := range []model.Language{model.LanguageSetswana, model.LanguageIsiZulu} {
		if _, ok := s.tables[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// AllPrefixes returns the combined ordered prefix list for the
// preprocessor: noun-class first, then verb, then particle prefixes.
func (t *Table) AllPrefixes() []string {
	return t.prefixes
}

// LookupNounStem resolves a token stem against the gendered-noun index
func (t *Table) LookupNounStem(stem string) (NounEntry, bool) {
	e, ok := t.nounStems[stem]
	return e, ok
}

// LookupTitleStem resolves a token stem against the gendered-title index
func (t *Table) LookupTitleStem(stem string) (TitleEntry, bool) {
	e, ok := t.titleStems[stem]
	return e, ok
}

// LookupPejorativeStem resolves a token stem against the pejorative index
func (t *Table) LookupPejorativeStem(stem string) (string, bool) {
	p, ok := t.pejStems[stem]
	return p, ok
}

// Stem reduces a term to its stem using this table's prefix list
func (t *Table) Stem(term string) string {
	_, stem := morph.StripPrefix(term, t.prefixes)
	return stem
}

func (t *Table) build() error {
	t.prefixes = nil
	t.prefixes = append(t.prefixes, t.NounClassPrefixes...)
	t.prefixes = append(t.prefixes, t.VerbPrefixes...)
	t.prefixes = append(t.prefixes, t.ParticlePrefixes...)

	seen := make(map[string]bool)
	t.nounStems = make(map[string]NounEntry)
	for _, gender := range []model.Gender{model.GenderMale, model.GenderFemale} {
		for term, meaning := range t.GenderedNouns[gender] {
			key := string(gender) + ":" + strings.ToLower(term)
			if seen[key] {
				return fmt.Errorf("duplicate gendered noun %q (%s)", term, gender)
			}
			seen[key] = true
			lower := strings.ToLower(term)
			stem := t.Stem(term)
			// Singular/plural variants share a stem; keep the
			// lexicographically first term so index contents do not
			// depend on map iteration order.
			if prev, ok := t.nounStems[stem]; !ok || lower < prev.Term {
				t.nounStems[stem] = NounEntry{
					Term:    lower,
					Gender:  gender,
					Meaning: meaning,
					Plural:  t.PluralForms[lower],
				}
			}
		}
	}

	t.titleStems = make(map[string]TitleEntry)
	for _, gender := range []model.Gender{model.GenderMale, model.GenderFemale} {
		for _, title := range t.Titles[gender] {
			lower := strings.ToLower(title)
			stem := t.Stem(title)
			if prev, ok := t.titleStems[stem]; !ok || lower < prev.Term {
				t.titleStems[stem] = TitleEntry{
					Term:   lower,
					Gender: gender,
				}
			}
		}
	}

	t.pejStems = make(map[string]string)
	for _, p := range t.Pejoratives {
		t.pejStems[t.Stem(p)] = strings.ToLower(p)
	}

	return nil
}
