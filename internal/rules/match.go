package rules

import (
	"sort"
	"strings"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

// Subject is a gendered noun or title located in the token stream
type Subject struct {
	Token   morph.Token
	Gender  model.Gender
	Meaning string
	Plural  bool
	IsTitle bool
}

// ActionMatch is a stereotyped action phrase located in the text
type ActionMatch struct {
	Phrase   string
	Category lexicon.ActionCategory
	Start    int
	End      int
}

// Span is a byte range over the analyzed text
type Span struct {
	Start int
	End   int
}

// maxPhraseGap is the widest run of joining characters (space or hyphen)
// allowed between words of a multi-word phrase
const maxPhraseGap = 2

// MatchPhrase finds every occurrence of a (possibly multi-word or
// hyphenated) phrase in the token stream. Words must match
// case-insensitively and appear consecutively with no intervening
// punctuation token. Returned spans are byte offsets over the input.
func MatchPhrase(tokens []morph.Token, phrase string) []Span {
	words := splitPhrase(phrase)
	if len(words) == 0 {
		return nil
	}

	var out []Span
	for i := 0; i+len(words) <= len(tokens); i++ {
		if !tokensMatch(tokens[i:i+len(words)], words) {
			continue
		}
		out = append(out, Span{Start: tokens[i].Start, End: tokens[i+len(words)-1].End})
	}
	return out
}

func tokensMatch(tokens []morph.Token, words []string) bool {
	for j, w := range words {
		t := tokens[j]
		if t.IsPunct || t.Lower() != w {
			return false
		}
		if j > 0 && t.Start-tokens[j-1].End > maxPhraseGap {
			return false
		}
	}
	return true
}

func splitPhrase(phrase string) []string {
	f := strings.FieldsFunc(strings.ToLower(phrase), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return f
}

// findSubjects locates gendered nouns and titles by stem lookup,
// preserving left-to-right order.
func findSubjects(tokens []morph.Token, tab *lexicon.Table) []Subject {
	var subjects []Subject
	for _, t := range tokens {
		if t.IsPunct {
			continue
		}
		if e, ok := tab.LookupNounStem(t.Stem); ok {
			subjects = append(subjects, Subject{
				Token:   t,
				Gender:  e.Gender,
				Meaning: e.Meaning,
				Plural:  tab.PluralForms[t.Lower()],
			})
			continue
		}
		if e, ok := tab.LookupTitleStem(t.Stem); ok {
			subjects = append(subjects, Subject{
				Token:   t,
				Gender:  e.Gender,
				IsTitle: true,
			})
		}
	}
	return subjects
}

// findActions locates stereotyped action phrases. Where a longer and a
// shorter phrase match at the same offset ("apea dijo" and "apea"), only
// the longest match is kept.
func findActions(tokens []morph.Token, tab *lexicon.Table) []ActionMatch {
	byStart := make(map[int]ActionMatch)
	for _, a := range tab.Actions {
		for _, sp := range MatchPhrase(tokens, a.Phrase) {
			prev, ok := byStart[sp.Start]
			if !ok || sp.End > prev.End {
				byStart[sp.Start] = ActionMatch{
					Phrase:   a.Phrase,
					Category: a.Category,
					Start:    sp.Start,
					End:      sp.End,
				}
			}
		}
	}

	starts := make([]int, 0, len(byStart))
	for s := range byStart {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	out := make([]ActionMatch, 0, len(starts))
	for _, s := range starts {
		out = append(out, byStart[s])
	}
	return out
}

// sentenceBounds returns byte ranges for each sentence, split on
// sentence-terminating punctuation tokens.
func sentenceBounds(text string, tokens []morph.Token) []Span {
	var bounds []Span
	start := 0
	for _, t := range tokens {
		if t.IsPunct && (t.Surface == "." || t.Surface == "!" || t.Surface == "?") {
			bounds = append(bounds, Span{Start: start, End: t.End})
			start = t.End
		}
	}
	if start < len(text) {
		bounds = append(bounds, Span{Start: start, End: len(text)})
	}
	return bounds
}

func sameSentence(bounds []Span, a, b int) bool {
	for _, s := range bounds {
		if a >= s.Start && a < s.End {
			return b >= s.Start && b < s.End
		}
	}
	return false
}
