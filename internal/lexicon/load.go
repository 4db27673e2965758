package lexicon

import (
	"fmt"
	"os"

	"github.com/ithute/ithute/internal/model"
	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a lexicon override file. Entries are
// merged over the built-in tables; lists append, maps override per key.
type fileFormat struct {
	Languages map[string]languageFile `yaml:"languages"`
}

type languageFile struct {
	GenderedNouns map[string]map[string]string `yaml:"gendered_nouns"`
	PluralForms   []string                     `yaml:"plural_forms"`
	Titles        map[string][]string          `yaml:"titles"`
	Neutral       struct {
		Singular string `yaml:"singular"`
		Plural   string `yaml:"plural"`
		Everyone string `yaml:"everyone"`
	} `yaml:"neutral"`
	Actions               map[string][]string `yaml:"actions"`
	Occupations           map[string]string   `yaml:"occupations"`
	GenderedOccupations   map[string]string   `yaml:"gendered_occupations"`
	Pejoratives           []string            `yaml:"pejoratives"`
	GeneralizationMarkers []string            `yaml:"generalization_markers"`
	ContrastConjunctions  []string            `yaml:"contrast_conjunctions"`
	InfantilizingPatterns []string            `yaml:"infantilizing_patterns"`
	MarkerParticles       []string            `yaml:"marker_particles"`
	BiasedNames           map[string]string   `yaml:"biased_names"`
}

// Load builds a store from the built-in lexicons plus an optional YAML
// override file. An empty path returns the defaults unchanged.
func Load(path string) (*Store, error) {
	tn := setswanaTable()
	zu := isizuluTable()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read lexicon file: %w", err)
		}
		var f fileFormat
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse lexicon file: %w", err)
		}
		for code, lf := range f.Languages {
			lang, ok := model.NormalizeLanguage(code)
			if !ok {
				return nil, fmt.Errorf("lexicon file: unknown language %q", code)
			}
			var target *Table
			switch lang {
			case model.LanguageSetswana:
				target = tn
			case model.LanguageIsiZulu:
				target = zu
			}
			if err := mergeLanguage(target, lf); err != nil {
				return nil, fmt.Errorf("lexicon file (%s): %w", code, err)
			}
		}
	}

	return NewStore(tn, zu)
}

func mergeLanguage(t *Table, lf languageFile) error {
	for genderKey, terms := range lf.GenderedNouns {
		gender, err := parseGender(genderKey)
		if err != nil {
			return err
		}
		if t.GenderedNouns[gender] == nil {
			t.GenderedNouns[gender] = make(map[string]string)
		}
		for term, meaning := range terms {
			t.GenderedNouns[gender][term] = meaning
		}
	}
	for _, term := range lf.PluralForms {
		t.PluralForms[term] = true
	}
	for genderKey, titles := range lf.Titles {
		gender, err := parseGender(genderKey)
		if err != nil {
			return err
		}
		t.Titles[gender] = append(t.Titles[gender], titles...)
	}
	if lf.Neutral.Singular != "" {
		t.NeutralSingular = lf.Neutral.Singular
	}
	if lf.Neutral.Plural != "" {
		t.NeutralPlural = lf.Neutral.Plural
	}
	if lf.Neutral.Everyone != "" {
		t.NeutralEveryone = lf.Neutral.Everyone
	}
	for catKey, phrases := range lf.Actions {
		cat, err := parseActionCategory(catKey)
		if err != nil {
			return err
		}
		for _, phrase := range phrases {
			t.Actions = append(t.Actions, Action{Phrase: phrase, Category: cat})
		}
	}
	for term, gloss := range lf.Occupations {
		t.Occupations[term] = gloss
	}
	for marked, neutral := range lf.GenderedOccupations {
		t.GenderedOccupations = append(t.GenderedOccupations, OccupationForm{Marked: marked, Neutral: neutral})
	}
	t.Pejoratives = append(t.Pejoratives, lf.Pejoratives...)
	t.GeneralizationMarkers = append(t.GeneralizationMarkers, lf.GeneralizationMarkers...)
	t.ContrastConjunctions = append(t.ContrastConjunctions, lf.ContrastConjunctions...)
	t.InfantilizingPatterns = append(t.InfantilizingPatterns, lf.InfantilizingPatterns...)
	t.MarkerParticles = append(t.MarkerParticles, lf.MarkerParticles...)
	for name, genderKey := range lf.BiasedNames {
		gender, err := parseGender(genderKey)
		if err != nil {
			return err
		}
		t.BiasedNames[name] = gender
	}
	return nil
}

func parseGender(s string) (model.Gender, error) {
	switch s {
	case "male":
		return model.GenderMale, nil
	case "female":
		return model.GenderFemale, nil
	case "neutral":
		return model.GenderNeutral, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

func parseActionCategory(s string) (ActionCategory, error) {
	switch s {
	case "domestic":
		return ActionDomestic, nil
	case "academic_leadership":
		return ActionAcademic, nil
	case "physical_labor":
		return ActionPhysicalLabor, nil
	default:
		return "", fmt.Errorf("unknown action category %q", s)
	}
}
