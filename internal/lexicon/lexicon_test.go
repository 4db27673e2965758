package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ithute/ithute/internal/model"
)

func TestDefaultStoreCoversBothLanguages(t *testing.T) {
	store := DefaultStore()
	langs := store.Languages()
	if len(langs) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(langs))
	}
	if langs[0] != model.LanguageSetswana || langs[1] != model.LanguageIsiZulu {
		t.Errorf("unexpected language order: %v", langs)
	}
	if store.Table(model.LanguageSetswana) == nil {
		t.Error("expected Setswana table")
	}
	if store.Table(model.LanguageIsiZulu) == nil {
		t.Error("expected isiZulu table")
	}
	if store.Table(model.Language("fr")) != nil {
		t.Error("expected nil table for unsupported language")
	}
}

func TestLookupNounStem(t *testing.T) {
	tab := DefaultStore().Table(model.LanguageSetswana)

	stem := tab.Stem("mosetsana")
	if stem != "setsana" {
		t.Fatalf("Stem(mosetsana) = %q, want 'setsana'", stem)
	}
	e, ok := tab.LookupNounStem(stem)
	if !ok {
		t.Fatal("expected noun entry for stem 'setsana'")
	}
	if e.Gender != model.GenderFemale {
		t.Errorf("expected female gender, got %s", e.Gender)
	}

	// Singular and plural forms share the stem through prefix stripping
	if tab.Stem("basetsana") != stem {
		t.Errorf("expected basetsana to share stem with mosetsana")
	}

	if _, ok := tab.LookupNounStem("pula"); ok {
		t.Error("did not expect noun entry for 'pula'")
	}
}

func TestLookupTitleStem(t *testing.T) {
	tab := DefaultStore().Table(model.LanguageSetswana)
	e, ok := tab.LookupTitleStem(tab.Stem("mme"))
	if !ok {
		t.Fatal("expected title entry for 'mme'")
	}
	if e.Gender != model.GenderFemale {
		t.Errorf("expected female title, got %s", e.Gender)
	}
}

func TestLookupPejorativeStem(t *testing.T) {
	tab := DefaultStore().Table(model.LanguageIsiZulu)
	stem := tab.Stem("isiwula")
	if stem != "wula" {
		t.Fatalf("Stem(isiwula) = %q, want 'wula'", stem)
	}
	term, ok := tab.LookupPejorativeStem(stem)
	if !ok {
		t.Fatal("expected pejorative entry for stem 'wula'")
	}
	if term != "isiwula" {
		t.Errorf("expected canonical term 'isiwula', got %q", term)
	}
}

func TestStemIndexDeterministic(t *testing.T) {
	// Colliding forms must resolve to the same entry on every build
	for i := 0; i < 10; i++ {
		tab := DefaultStore().Table(model.LanguageSetswana)
		e, ok := tab.LookupNounStem("setsana")
		if !ok {
			t.Fatal("expected entry for stem 'setsana'")
		}
		if e.Term != "basetsana" {
			t.Fatalf("run %d: expected lexicographically first term 'basetsana', got %q", i, e.Term)
		}
	}
}

func TestAllPrefixesOrder(t *testing.T) {
	tab := DefaultStore().Table(model.LanguageIsiZulu)
	prefixes := tab.AllPrefixes()
	if len(prefixes) == 0 {
		t.Fatal("expected non-empty prefix list")
	}
	// Noun-class prefixes come first in the combined list
	if prefixes[0] != "um" {
		t.Errorf("expected noun-class prefix first, got %q", prefixes[0])
	}
}

func TestLoadWithoutPath(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Languages()) != 2 {
		t.Errorf("expected builtin tables, got %d languages", len(store.Languages()))
	}
}

func TestLoadMergesOverrideFile(t *testing.T) {
	content := `languages:
  tn:
    gendered_nouns:
      female:
        mohumagadi: "queen/lady"
    pejoratives:
      - sethoto
    neutral:
      singular: motho
  zu:
    biased_names:
      zanele: female
`
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tn := store.Table(model.LanguageSetswana)
	if _, ok := tn.LookupNounStem(tn.Stem("mohumagadi")); !ok {
		t.Error("expected merged noun 'mohumagadi'")
	}
	if _, ok := tn.LookupPejorativeStem(tn.Stem("sethoto")); !ok {
		t.Error("expected merged pejorative 'sethoto'")
	}
	// Builtins survive the merge
	if _, ok := tn.LookupNounStem(tn.Stem("mosetsana")); !ok {
		t.Error("expected builtin noun to survive merge")
	}

	zu := store.Table(model.LanguageIsiZulu)
	if zu.BiasedNames["zanele"] != model.GenderFemale {
		t.Error("expected merged biased name 'zanele'")
	}
}

func TestLoadRejectsUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte("languages:\n  fr:\n    pejoratives: [bete]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown language tag")
	}
}

func TestLoadRejectsUnknownGender(t *testing.T) {
	content := "languages:\n  tn:\n    gendered_nouns:\n      other:\n        x: y\n"
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown gender key")
	}
}
