package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ithute/ithute/internal/model"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(model.DefaultConfig())
	if err != nil {
		t.Fatalf("pipeline init failed: %v", err)
	}
	return p
}

func TestAnalyzeStereotype(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Mosetsana o apea dijo", "")
	if err != nil {
		t.Fatal(err)
	}

	if !result.DetectedBias {
		t.Fatal("expected bias detection")
	}
	if result.Language != model.LanguageSetswana {
		t.Errorf("expected Setswana, got %s", result.Language)
	}
	if result.Category != model.CategoryOccupational {
		t.Errorf("expected Occupational, got %q", result.Category)
	}
	if len(result.Findings) != 1 || result.Findings[0].Rule != model.RuleSubjectStereotype {
		t.Errorf("unexpected findings %+v", result.Findings)
	}
	if result.TemplateRewrite != "Motho o apea dijo" {
		t.Errorf("unexpected template rewrite %q", result.TemplateRewrite)
	}
	if result.SuggestedRewrite != result.TemplateRewrite {
		t.Errorf("without an LLM the suggestion equals the template, got %q", result.SuggestedRewrite)
	}
	if result.RewriteSource != model.RewriteSourceTemplate {
		t.Errorf("expected template source, got %q", result.RewriteSource)
	}
	if result.TemplateWarning {
		t.Error("a real rewrite must not carry the identity warning")
	}
	if len(result.Exemplars) != 2 {
		t.Errorf("expected 2 retrieved exemplars, got %d", len(result.Exemplars))
	}
}

func TestAnalyzeContrastive(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Mosetsana o apea dijo fa mosimane a bala buka", "")
	if err != nil {
		t.Fatal(err)
	}
	if !result.DetectedBias {
		t.Fatal("expected bias detection")
	}
	want := "Mosetsana le mosimane ba ka apea dijo kgotsa ba bala buka."
	if result.TemplateRewrite != want {
		t.Errorf("got %q, want %q", result.TemplateRewrite, want)
	}
}

func TestAnalyzeGenderMarkingWithHint(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Umama udokotela uyasiza esibhedlela", "zulu")
	if err != nil {
		t.Fatal(err)
	}
	if result.Language != model.LanguageIsiZulu {
		t.Errorf("expected hinted language zu, got %s", result.Language)
	}
	if result.TemplateRewrite != "Udokotela uyasiza esibhedlela" {
		t.Errorf("unexpected rewrite %q", result.TemplateRewrite)
	}
}

func TestAnalyzeCleanText(t *testing.T) {
	p := newTestPipeline(t)
	text := "Pula e a na gompieno."
	result, err := p.Analyze(context.Background(), text, "")
	if err != nil {
		t.Fatal(err)
	}

	if result.DetectedBias {
		t.Errorf("false positive on clean text: %+v", result.Findings)
	}
	if result.Findings == nil || len(result.Findings) != 0 {
		t.Error("clean result must carry an empty non-nil findings slice")
	}
	if result.Category != "" {
		t.Errorf("clean result must have no category, got %q", result.Category)
	}
	if result.TemplateRewrite != text || result.SuggestedRewrite != text {
		t.Error("clean text must pass through unchanged")
	}
	if len(result.Exemplars) != 0 {
		t.Error("clean result must not retrieve exemplars")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "", "")
	if err != nil {
		t.Fatalf("empty input must fail open: %v", err)
	}
	if result.DetectedBias || result.TemplateRewrite != "" {
		t.Errorf("unexpected result for empty input: %+v", result)
	}
}

func TestAnalyzeUnsupportedHint(t *testing.T) {
	p := newTestPipeline(t)
	if _, err := p.Analyze(context.Background(), "text", "fr"); err == nil {
		t.Error("expected error for unsupported language hint")
	}
}

func TestAnalyzeLanguageAliases(t *testing.T) {
	p := newTestPipeline(t)
	for hint, want := range map[string]model.Language{
		"setswana": model.LanguageSetswana,
		"st":       model.LanguageSetswana,
		"isizulu":  model.LanguageIsiZulu,
		"ZU":       model.LanguageIsiZulu,
	} {
		result, err := p.Analyze(context.Background(), "Pula", hint)
		if err != nil {
			t.Fatalf("hint %q: %v", hint, err)
		}
		if result.Language != want {
			t.Errorf("hint %q resolved to %s, want %s", hint, result.Language, want)
		}
	}
}

func TestAnalyzeRewriteIsStable(t *testing.T) {
	// Re-analyzing a template rewrite must not flag it again
	p := newTestPipeline(t)
	first, err := p.Analyze(context.Background(), "Mosetsana o apea dijo", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Analyze(context.Background(), first.TemplateRewrite, "tn")
	if err != nil {
		t.Fatal(err)
	}
	if second.DetectedBias {
		t.Errorf("rewrite %q still flagged: %+v", first.TemplateRewrite, second.Findings)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	p := newTestPipeline(t)
	text := "Mosetsana o apea dijo fa mosimane a bala buka"

	first, err := p.Analyze(context.Background(), text, "")
	if err != nil {
		t.Fatal(err)
	}
	firstJSON, _ := json.Marshal(first)
	for i := 0; i < 5; i++ {
		again, err := p.Analyze(context.Background(), text, "")
		if err != nil {
			t.Fatal(err)
		}
		againJSON, _ := json.Marshal(again)
		if string(againJSON) != string(firstJSON) {
			t.Fatalf("run %d differs:\n%s\n%s", i, againJSON, firstJSON)
		}
	}
}

func TestAnalyzeIdentityWarning(t *testing.T) {
	// R8 on a bare name selects the neutral template, which has nothing
	// to substitute; the result must not be the identity-warning case
	// since a template was still chosen.
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Thandi o apea dijo.", "tn")
	if err != nil {
		t.Fatal(err)
	}
	if !result.DetectedBias {
		t.Fatal("expected detection for stereotype-coded name")
	}
	if result.TemplateWarning {
		t.Error("neutral template selection must not set the identity warning")
	}
	if result.TemplateRewrite != "Thandi o apea dijo." {
		t.Errorf("unexpected rewrite %q", result.TemplateRewrite)
	}
}

func TestRendererJSONRoundTrip(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Mosetsana o apea dijo", "")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var decoded model.RewriteResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Language != result.Language || decoded.TemplateRewrite != result.TemplateRewrite {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
	if len(decoded.Findings) != len(result.Findings) {
		t.Errorf("round trip lost findings")
	}
}
