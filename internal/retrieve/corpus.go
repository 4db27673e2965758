package retrieve

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ithute/ithute/internal/model"
)

type corpusRecord struct {
	ID           string `json:"id"`
	Language     string `json:"language"`
	Category     string `json:"bias_category"`
	BiasedText   string `json:"biased_text"`
	BiasFreeText string `json:"bias_free_text"`
	Domain       string `json:"domain"`
}

// LoadCorpus reads a ground-truth corpus file. Both shapes the source
// datasets use are accepted: a JSON object keyed by exemplar id, or a
// bare JSON array of records. Records with an unknown language tag are
// skipped; unknown categories fold into General Bias.
func LoadCorpus(path string) ([]model.Exemplar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var records []corpusRecord
	var asArray []corpusRecord
	if err := json.Unmarshal(data, &asArray); err == nil {
		records = asArray
	} else {
		var asMap map[string]corpusRecord
		if err := json.Unmarshal(data, &asMap); err != nil {
			return nil, fmt.Errorf("parse corpus %s: %w", path, err)
		}
		keys := make([]string, 0, len(asMap))
		for k := range asMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rec := asMap[k]
			if rec.ID == "" {
				rec.ID = k
			}
			records = append(records, rec)
		}
	}

	out := make([]model.Exemplar, 0, len(records))
	for _, rec := range records {
		lang, ok := model.NormalizeLanguage(rec.Language)
		if !ok {
			continue
		}
		out = append(out, model.Exemplar{
			ID:           rec.ID,
			Language:     lang,
			Category:     model.NormalizeCategory(rec.Category),
			BiasedText:   rec.BiasedText,
			BiasFreeText: rec.BiasFreeText,
			Domain:       rec.Domain,
		})
	}
	return out, nil
}

// BuiltinCorpus is the compiled-in fallback used when no corpus file is
// configured. It intentionally has no isiZulu Gendered Wording entries;
// retrieval for that slice returns empty and the prompt goes zero-shot.
func BuiltinCorpus() []model.Exemplar {
	return []model.Exemplar{
		{
			ID:           "tn-occ-1",
			Language:     model.LanguageSetswana,
			Category:     model.CategoryOccupational,
			BiasedText:   "Monna thotse o a nama",
			BiasFreeText: "Motho mongwe le mongwe ke thotse o a anama",
			Domain:       "educational",
		},
		{
			ID:           "tn-occ-2",
			Language:     model.LanguageSetswana,
			Category:     model.CategoryOccupational,
			BiasedText:   "Mosadi o apaya dijo mme monna o bala dibuka",
			BiasFreeText: "Batho ba apaya dijo e bile ba bala dibuka",
			Domain:       "household",
		},
		{
			ID:           "tn-gen-1",
			Language:     model.LanguageSetswana,
			Category:     model.CategoryGender,
			BiasedText:   "Mosetsana o tshwanetse go nna mo gae",
			BiasFreeText: "Ngwana mongwe le mongwe a ka itlhophela",
			Domain:       "social",
		},
		{
			ID:           "tn-wording-1",
			Language:     model.LanguageSetswana,
			Category:     model.CategoryGenderedWording,
			BiasedText:   "Mme o tlhokomela bana ka metlha",
			BiasFreeText: "Motsadi o tlhokomela bana",
			Domain:       "household",
		},
		{
			ID:           "tn-pron-1",
			Language:     model.LanguageSetswana,
			Category:     model.CategoryPronominalization,
			BiasedText:   "Kgosietsile o tla nna moeteledipele",
			BiasFreeText: "Ngwana mongwe le mongwe a ka nna moeteledipele",
			Domain:       "cultural",
		},
		{
			ID:           "zu-occ-1",
			Language:     model.LanguageIsiZulu,
			Category:     model.CategoryOccupational,
			BiasedText:   "Umfazi upheka ukudla kanti indoda ifunda incwadi",
			BiasFreeText: "Abantu bapheka ukudla futhi bafunda izincwadi",
			Domain:       "household",
		},
		{
			ID:           "zu-occ-2",
			Language:     model.LanguageIsiZulu,
			Category:     model.CategoryOccupational,
			BiasedText:   "Umama udokotela uyasiza esibhedlela",
			BiasFreeText: "Udokotela uyasiza esibhedlela",
			Domain:       "occupational",
		},
		{
			ID:           "zu-gen-1",
			Language:     model.LanguageIsiZulu,
			Category:     model.CategoryGender,
			BiasedText:   "Intombazane ayikwazi ukufunda isayensi",
			BiasFreeText: "Wonke umuntu angafunda isayensi",
			Domain:       "educational",
		},
	}
}
