// Package retrieve ranks the ground-truth exemplar corpus against an
// input text so the generative correction prompt can be seeded with the
// closest known (biased, bias-free) pairs.
package retrieve

import (
	"sort"

	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

// DefaultTopK is how many exemplars seed the prompt when the
// configuration does not say otherwise.
const DefaultTopK = 2

// Retriever scores corpus exemplars by stem overlap with the input
type Retriever struct {
	store  *lexicon.Store
	corpus []model.Exemplar
	topK   int
}

// NewRetriever creates a retriever over a fixed corpus. The corpus
// order is significant: ties rank by insertion order.
func NewRetriever(store *lexicon.Store, corpus []model.Exemplar, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{store: store, corpus: corpus, topK: topK}
}

// Retrieve returns up to topK exemplars matching the language and
// category, ordered by descending Jaccard similarity of stem sets. An
// empty result is valid: the caller falls back to a zero-shot prompt.
func (r *Retriever) Retrieve(text string, lang model.Language, category model.CategoryLabel) []model.Exemplar {
	tab := r.store.Table(lang)
	if tab == nil {
		return nil
	}
	inputStems := morph.StemSet(morph.Tokenize(text, tab.AllPrefixes()))

	type candidate struct {
		ex    model.Exemplar
		score float64
		order int
	}
	var candidates []candidate
	for i, ex := range r.corpus {
		if ex.Language != lang || ex.Category != category {
			continue
		}
		exStems := morph.StemSet(morph.Tokenize(ex.BiasedText, tab.AllPrefixes()))
		candidates = append(candidates, candidate{
			ex:    ex,
			score: jaccard(inputStems, exStems),
			order: i,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].order < candidates[j].order
	})

	n := r.topK
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]model.Exemplar, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.ex)
	}
	return out
}

// jaccard computes |a∩b| / |a∪b| over stem sets; two empty sets score 0
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
