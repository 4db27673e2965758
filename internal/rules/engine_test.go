package rules

import (
	"testing"

	"github.com/ithute/ithute/internal/annotate"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

func detect(t *testing.T, text string, lang model.Language) []model.Finding {
	t.Helper()
	store := lexicon.DefaultStore()
	engine := NewEngine(store)
	tokens := morph.Tokenize(text, store.Table(lang).AllPrefixes())
	findings, err := engine.Detect(text, lang, tokens, nil)
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	checkSpans(t, text, findings)
	return findings
}

func checkSpans(t *testing.T, text string, findings []model.Finding) {
	t.Helper()
	for _, f := range findings {
		if f.Start < 0 || f.End <= f.Start || f.End > len(text) {
			t.Errorf("%s: invalid span %d-%d over %d bytes", f.Rule, f.Start, f.End, len(text))
			continue
		}
		if f.Span != text[f.Start:f.End] {
			t.Errorf("%s: span %q does not match text[%d:%d]=%q",
				f.Rule, f.Span, f.Start, f.End, text[f.Start:f.End])
		}
	}
}

func rulesFired(findings []model.Finding) map[model.RuleID]int {
	fired := make(map[model.RuleID]int)
	for _, f := range findings {
		fired[f.Rule]++
	}
	return fired
}

func TestSubjectStereotype(t *testing.T) {
	text := "Mosetsana o apea dijo"
	findings := detect(t, text, model.LanguageSetswana)

	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Rule != model.RuleSubjectStereotype {
		t.Errorf("expected R1, got %s", f.Rule)
	}
	if f.Span != "Mosetsana o apea dijo" {
		t.Errorf("unexpected span %q", f.Span)
	}
	if f.Reason != "Female subject assigned domestic work." {
		t.Errorf("unexpected reason %q", f.Reason)
	}
}

func TestSubjectStereotypeMaleAcademic(t *testing.T) {
	findings := detect(t, "Mosimane o bala buka", model.LanguageSetswana)
	fired := rulesFired(findings)
	if fired[model.RuleSubjectStereotype] != 1 {
		t.Fatalf("expected one R1 finding, got %+v", findings)
	}
	if findings[0].Reason != "Male subject assigned intellectual/leadership work." {
		t.Errorf("unexpected reason %q", findings[0].Reason)
	}
}

func TestSubjectStereotypeIgnoresNeutralPairing(t *testing.T) {
	// Female subject with academic action is not a stereotyped pairing
	findings := detect(t, "Mosetsana o bala buka", model.LanguageSetswana)
	if fired := rulesFired(findings); fired[model.RuleSubjectStereotype] != 0 {
		t.Errorf("did not expect R1 for female+academic: %+v", findings)
	}
}

func TestContrastiveRoles(t *testing.T) {
	text := "Mosetsana o apea dijo fa mosimane a bala buka"
	findings := detect(t, text, model.LanguageSetswana)
	fired := rulesFired(findings)

	// Both stereotyped pairings fire R1 individually, and the contrastive
	// construction fires R2 once.
	if fired[model.RuleSubjectStereotype] != 2 {
		t.Errorf("expected R1 twice, got %d", fired[model.RuleSubjectStereotype])
	}
	if fired[model.RuleContrastiveRoles] != 1 {
		t.Errorf("expected R2 once, got %d", fired[model.RuleContrastiveRoles])
	}
	for _, f := range findings {
		if f.Rule == model.RuleContrastiveRoles && f.Span != text {
			t.Errorf("expected R2 span to cover the full construction, got %q", f.Span)
		}
	}
}

func TestContrastiveRolesNeedsConjunction(t *testing.T) {
	findings := detect(t, "Mosetsana o apea dijo mosimane o bala buka", model.LanguageSetswana)
	if fired := rulesFired(findings); fired[model.RuleContrastiveRoles] != 0 {
		t.Errorf("did not expect R2 without a contrast conjunction: %+v", findings)
	}
}

func TestGenderMarking(t *testing.T) {
	text := "Umama udokotela uyasiza esibhedlela"
	findings := detect(t, text, model.LanguageIsiZulu)

	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Rule != model.RuleGenderMarking {
		t.Errorf("expected R3, got %s", f.Rule)
	}
	if f.Span != "Umama udokotela" {
		t.Errorf("unexpected span %q", f.Span)
	}
}

func TestGeneralization(t *testing.T) {
	findings := detect(t, "Basadi ga ba kgone go laola.", model.LanguageSetswana)
	fired := rulesFired(findings)
	if fired[model.RuleGeneralization] != 1 {
		t.Fatalf("expected one R4 finding, got %+v", findings)
	}
	for _, f := range findings {
		if f.Rule == model.RuleGeneralization {
			if f.Reason != `Generalized claim about females using "ga ba kgone".` {
				t.Errorf("unexpected reason %q", f.Reason)
			}
		}
	}
}

func TestGeneralizationRequiresSameSentence(t *testing.T) {
	// Subject and marker in different sentences must not pair up
	findings := detect(t, "Basadi ba teng. Ga ba kgone go tsamaya.", model.LanguageSetswana)
	if fired := rulesFired(findings); fired[model.RuleGeneralization] != 0 {
		t.Errorf("did not expect R4 across sentence boundary: %+v", findings)
	}
}

func TestDiminutive(t *testing.T) {
	findings := detect(t, "Basetsana ba bagolo ba dira tiro.", model.LanguageSetswana)
	fired := rulesFired(findings)
	if fired[model.RuleDiminutive] != 1 {
		t.Fatalf("expected one R5 finding, got %+v", findings)
	}
	for _, f := range findings {
		if f.Rule == model.RuleDiminutive && f.Span != "Basetsana ba bagolo" {
			t.Errorf("unexpected span %q", f.Span)
		}
	}
}

func TestAsymmetricalOrdering(t *testing.T) {
	findings := detect(t, "Banna le basadi ba bereka.", model.LanguageSetswana)
	fired := rulesFired(findings)
	if fired[model.RuleAsymmetricalOrdering] != 1 {
		t.Fatalf("expected one R6 finding, got %+v", findings)
	}
	for _, f := range findings {
		if f.Rule == model.RuleAsymmetricalOrdering && f.Span != "Banna le basadi" {
			t.Errorf("unexpected span %q", f.Span)
		}
	}
}

func TestAsymmetricalOrderingFemaleFirstClean(t *testing.T) {
	findings := detect(t, "Basadi le banna ba bereka.", model.LanguageSetswana)
	if fired := rulesFired(findings); fired[model.RuleAsymmetricalOrdering] != 0 {
		t.Errorf("did not expect R6 for female-first ordering: %+v", findings)
	}
}

func TestPejorative(t *testing.T) {
	findings := detect(t, "Owesifazane isiwula.", model.LanguageIsiZulu)
	fired := rulesFired(findings)
	if fired[model.RulePejorative] != 1 {
		t.Fatalf("expected one R7 finding, got %+v", findings)
	}
}

func TestNamedEntityFromLexicon(t *testing.T) {
	findings := detect(t, "Thandi o apea dijo.", model.LanguageSetswana)
	fired := rulesFired(findings)
	if fired[model.RuleNamedEntity] != 1 {
		t.Fatalf("expected one R8 finding, got %+v", findings)
	}
	// No gendered noun is present, so R1 must stay quiet
	if fired[model.RuleSubjectStereotype] != 0 {
		t.Errorf("did not expect R1 for a bare name: %+v", findings)
	}
}

func TestNamedEntityFromHints(t *testing.T) {
	store := lexicon.DefaultStore()
	engine := NewEngine(store)
	text := "Naledi o apea dijo."
	tokens := morph.Tokenize(text, store.Table(model.LanguageSetswana).AllPrefixes())

	findings, err := engine.Detect(text, model.LanguageSetswana, tokens, nil)
	if err != nil {
		t.Fatal(err)
	}
	if fired := rulesFired(findings); fired[model.RuleNamedEntity] != 0 {
		t.Fatalf("unknown name must not fire without hints: %+v", findings)
	}

	hints := []annotate.Hint{{Text: "Naledi", Kind: annotate.HintPerson, Gender: model.GenderFemale}}
	findings, err = engine.Detect(text, model.LanguageSetswana, tokens, hints)
	if err != nil {
		t.Fatal(err)
	}
	if fired := rulesFired(findings); fired[model.RuleNamedEntity] != 1 {
		t.Errorf("expected R8 with a person hint, got %+v", findings)
	}
}

func TestCleanSentencesProduceNoFindings(t *testing.T) {
	clean := map[model.Language][]string{
		model.LanguageSetswana: {
			"Pula e a na gompieno.",
			"Motho o apea dijo",
			"Basadi le banna ba bereka mmogo.",
		},
		model.LanguageIsiZulu: {
			"Udokotela uyasiza esibhedlela",
			"Abantu bapheka ukudla",
		},
	}
	for lang, texts := range clean {
		for _, text := range texts {
			if findings := detect(t, text, lang); len(findings) != 0 {
				t.Errorf("%s %q: expected no findings, got %+v", lang, text, findings)
			}
		}
	}
}

func TestDetectUnsupportedLanguage(t *testing.T) {
	engine := NewEngine(lexicon.DefaultStore())
	if _, err := engine.Detect("text", model.Language("fr"), nil, nil); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestDetectNeverReturnsNil(t *testing.T) {
	findings := detect(t, "", model.LanguageSetswana)
	if findings == nil {
		t.Error("findings slice must not be nil")
	}
}

func TestDetectDeterministic(t *testing.T) {
	text := "Mosetsana o apea dijo fa mosimane a bala buka"
	first := detect(t, text, model.LanguageSetswana)
	for i := 0; i < 5; i++ {
		again := detect(t, text, model.LanguageSetswana)
		if len(again) != len(first) {
			t.Fatalf("run %d: finding count changed: %d vs %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Errorf("run %d: finding %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestMatchPhrase(t *testing.T) {
	tokens := morph.Tokenize("umama udokotela, umama unesi", []string{"um", "u"})

	spans := MatchPhrase(tokens, "umama udokotela")
	if len(spans) != 1 {
		t.Fatalf("expected 1 match, got %d", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 15 {
		t.Errorf("unexpected span %+v", spans[0])
	}

	if got := MatchPhrase(tokens, "umama"); len(got) != 2 {
		t.Errorf("expected 2 single-word matches, got %d", len(got))
	}

	// The comma token breaks adjacency
	if got := MatchPhrase(tokens, "udokotela umama"); len(got) != 0 {
		t.Errorf("expected no match across punctuation, got %d", len(got))
	}
}

func TestMatchPhraseGapLimit(t *testing.T) {
	tokens := morph.Tokenize("umama    udokotela", nil)
	if got := MatchPhrase(tokens, "umama udokotela"); len(got) != 0 {
		t.Errorf("expected no match across a wide gap, got %d", len(got))
	}
}

func TestFindActionsKeepsLongestMatch(t *testing.T) {
	store := lexicon.DefaultStore()
	tab := store.Table(model.LanguageSetswana)
	tokens := morph.Tokenize("o apea dijo", tab.AllPrefixes())
	actions := findActions(tokens, tab)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action after dedupe, got %d: %+v", len(actions), actions)
	}
	if actions[0].Phrase != "apea dijo" {
		t.Errorf("expected longest phrase to win, got %q", actions[0].Phrase)
	}
}
