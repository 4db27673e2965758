package rewrite

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
	"github.com/ithute/ithute/internal/rules"
)

// Apply runs the chosen template over the text. The identity template
// returns the input verbatim; callers that selected it despite having
// findings are expected to flag the result as unimproved.
func Apply(id TemplateID, text string, tab *lexicon.Table, tokens []morph.Token, subjects []rules.Subject, actions []rules.ActionMatch) string {
	switch id {
	case TemplateInclusive:
		return applyInclusive(text, tab, subjects, actions)
	case TemplateNeutral:
		return applyNeutral(text, tab, tokens)
	case TemplateUnmark:
		return applyUnmark(text, tab, tokens)
	case TemplateEveryone:
		return applyEveryone(text, tab, tokens)
	case TemplateSwap:
		return applySwap(text, subjects)
	case TemplateScrub:
		return applyScrub(text, tab, tokens)
	default:
		return text
	}
}

// applyInclusive merges the first female and male subjects into one
// disjunctive construction over the first two actions.
func applyInclusive(text string, tab *lexicon.Table, subjects []rules.Subject, actions []rules.ActionMatch) string {
	var female, male string
	for _, s := range subjects {
		switch s.Gender {
		case model.GenderFemale:
			if female == "" {
				female = s.Token.Lower()
			}
		case model.GenderMale:
			if male == "" {
				male = s.Token.Lower()
			}
		}
	}
	if female == "" || male == "" || len(actions) < 2 {
		tokens := morph.Tokenize(text, tab.AllPrefixes())
		return applyNeutral(text, tab, tokens)
	}

	v1, v2 := actions[0].Phrase, actions[1].Phrase
	if tab.Language == model.LanguageIsiZulu {
		return capitalize(female) + " no " + male + " bangakwazi ukwenza u" + v1 + " noma u" + v2 + "."
	}
	return capitalize(female) + " le " + male + " ba ka " + v1 + " kgotsa ba " + v2 + "."
}

// applyNeutral substitutes every gendered-noun occurrence with the
// language's neutral term, plural where the original was plural. When a
// plural form was substituted, stray singular subject concords are
// promoted to the plural concord.
func applyNeutral(text string, tab *lexicon.Table, tokens []morph.Token) string {
	gendered := make(map[string]bool)
	for _, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
		for term := range tab.GenderedNouns[g] {
			gendered[strings.ToLower(term)] = true
		}
	}

	var reps []replacement
	pluralUsed := false
	for _, t := range tokens {
		if t.IsPunct || !gendered[t.Lower()] {
			continue
		}
		neutral := tab.NeutralSingular
		if tab.PluralForms[t.Lower()] {
			neutral = tab.NeutralPlural
			pluralUsed = true
		}
		reps = append(reps, replacement{start: t.Start, end: t.End, text: capitalizeLike(t.Surface, neutral)})
	}

	out := applyReplacements(text, reps)
	if pluralUsed {
		out = pluralizeConcords(out, tab.Language)
	}
	return out
}

// applyUnmark strips gender marking from occupation compounds, leaving
// the bare occupational term.
func applyUnmark(text string, tab *lexicon.Table, tokens []morph.Token) string {
	var reps []replacement
	for _, form := range tab.GenderedOccupations {
		for _, sp := range rules.MatchPhrase(tokens, form.Marked) {
			reps = append(reps, replacement{
				start: sp.Start,
				end:   sp.End,
				text:  capitalizeLike(text[sp.Start:sp.End], form.Neutral),
			})
		}
	}
	return applyReplacements(text, reps)
}

// applyEveryone replaces the first gendered noun with the universal
// quantifier phrase and drops the generalization markers.
func applyEveryone(text string, tab *lexicon.Table, tokens []morph.Token) string {
	gendered := make(map[string]bool)
	for _, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
		for term := range tab.GenderedNouns[g] {
			gendered[strings.ToLower(term)] = true
		}
	}

	var reps []replacement
	for _, t := range tokens {
		if !t.IsPunct && gendered[t.Lower()] {
			reps = append(reps, replacement{
				start: t.Start,
				end:   t.End,
				text:  capitalizeLike(t.Surface, tab.NeutralEveryone),
			})
			break
		}
	}
	for _, marker := range tab.GeneralizationMarkers {
		for _, sp := range rules.MatchPhrase(tokens, marker) {
			reps = append(reps, replacement{start: sp.Start, end: sp.End})
		}
	}
	return collapseSpaces(applyReplacements(text, reps))
}

// applySwap exchanges the first male and first female surfaces so the
// female term leads.
func applySwap(text string, subjects []rules.Subject) string {
	var male, female *rules.Subject
	for i := range subjects {
		switch {
		case subjects[i].Gender == model.GenderMale && male == nil:
			male = &subjects[i]
		case subjects[i].Gender == model.GenderFemale && female == nil:
			female = &subjects[i]
		}
	}
	if male == nil || female == nil || male.Token.Start >= female.Token.Start {
		return text
	}
	reps := []replacement{
		{start: male.Token.Start, end: male.Token.End, text: capitalizeLike(male.Token.Surface, female.Token.Lower())},
		{start: female.Token.Start, end: female.Token.End, text: capitalizeLike(female.Token.Surface, male.Token.Lower())},
	}
	return applyReplacements(text, reps)
}

// applyScrub neutralizes gendered nouns and removes pejorative terms
func applyScrub(text string, tab *lexicon.Table, tokens []morph.Token) string {
	out := applyNeutral(text, tab, tokens)

	var reps []replacement
	for _, t := range morph.Tokenize(out, tab.AllPrefixes()) {
		if t.IsPunct {
			continue
		}
		if _, ok := tab.LookupPejorativeStem(t.Stem); ok {
			reps = append(reps, replacement{start: t.Start, end: t.End})
		}
	}
	return collapseSpaces(applyReplacements(out, reps))
}

type replacement struct {
	start int
	end   int
	text  string
}

// applyReplacements rewrites text with the given span substitutions.
// Spans are applied left to right; where two overlap, the earlier
// (longer on ties) one wins.
func applyReplacements(text string, reps []replacement) string {
	if len(reps) == 0 {
		return text
	}
	sort.SliceStable(reps, func(i, j int) bool {
		if reps[i].start != reps[j].start {
			return reps[i].start < reps[j].start
		}
		return reps[i].end > reps[j].end
	})

	var b strings.Builder
	pos := 0
	for _, r := range reps {
		if r.start < pos {
			continue
		}
		b.WriteString(text[pos:r.start])
		b.WriteString(r.text)
		pos = r.end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// pluralizeConcords promotes singular subject concords ("o" in
// Setswana, "u" in isiZulu) to the plural "ba" after a plural subject
// substitution.
func pluralizeConcords(text string, lang model.Language) string {
	singular := "o"
	if lang == model.LanguageIsiZulu {
		singular = "u"
	}
	words := strings.Fields(text)
	for i, w := range words {
		if w == singular {
			words[i] = "ba"
		}
	}
	return strings.Join(words, " ")
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// capitalizeLike copies the leading-capital shape of the original word
// onto the replacement.
func capitalizeLike(original, replacement string) string {
	r, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(r) {
		return capitalize(replacement)
	}
	return replacement
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
