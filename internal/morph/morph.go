// Package morph tokenizes input text and strips recognized noun-class and
// verb prefixes so lexicon lookups can match inflected forms by stem
// equality. Offsets are byte offsets into the NFC-normalized input;
// diacritics are meaningful and never removed.
package morph

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Token is one unit of the preprocessed input. Punctuation is preserved
// as its own token so later spans stay exact.
type Token struct {
	Surface string
	Prefix  string
	Stem    string
	Start   int
	End     int
	IsPunct bool
}

// Lower returns the lowercased surface form
func (t Token) Lower() string {
	return strings.ToLower(t.Surface)
}

// NFC canonicalizes the input to Unicode NFC form. Matching is
// diacritic-sensitive, so combining sequences must be in one canonical
// shape before any lookup.
func NFC(text string) string {
	return norm.NFC.String(text)
}

// sentence-terminating and clause punctuation kept as tokens
func isPunctRune(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize splits text into word and punctuation tokens with byte
// offsets, stripping the longest matching prefix from each word token.
// The prefix list should come from the language's lexicon table, ordered
// noun-class before verb prefixes; longest match wins regardless of kind.
func Tokenize(text string, prefixes []string) []Token {
	sorted := sortByLength(prefixes)

	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := decodeRune(text[i:])
		switch {
		case isWordRune(r):
			start := i
			for i < len(text) {
				r2, s2 := decodeRune(text[i:])
				if !isWordRune(r2) {
					break
				}
				i += s2
			}
			surface := text[start:i]
			prefix, stem := stripSorted(surface, sorted)
			tokens = append(tokens, Token{
				Surface: surface,
				Prefix:  prefix,
				Stem:    stem,
				Start:   start,
				End:     i,
			})
		case isPunctRune(r):
			tokens = append(tokens, Token{
				Surface: text[i : i+size],
				Stem:    text[i : i+size],
				Start:   i,
				End:     i + size,
				IsPunct: true,
			})
			i += size
		default:
			i += size
		}
	}
	return tokens
}

// StripPrefix removes the longest known prefix from a word and returns
// (prefix, stem), both lowercased. A prefix never consumes the whole
// word; if nothing matches, prefix is empty and stem is the lowered word.
func StripPrefix(word string, prefixes []string) (string, string) {
	return stripSorted(word, sortByLength(prefixes))
}

func stripSorted(word string, sorted []string) (string, string) {
	lower := strings.ToLower(word)
	for _, p := range sorted {
		if len(lower) > len(p) && strings.HasPrefix(lower, p) {
			return p, lower[len(p):]
		}
	}
	return "", lower
}

func sortByLength(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.ToLower(strings.TrimSuffix(p, "-"))
		if p != "" {
			out = append(out, p)
		}
	}
	// Longest first so "izin-" wins over "i-"; stable keeps the
	// noun-class-before-verb table order for equal lengths.
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// Words filters a token list down to its word tokens
func Words(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		if !t.IsPunct {
			out = append(out, t)
		}
	}
	return out
}

// StemSet returns the set of word-token stems, for overlap scoring
func StemSet(tokens []Token) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tokens {
		if !t.IsPunct {
			set[t.Stem] = struct{}{}
		}
	}
	return set
}
