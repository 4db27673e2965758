package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderSummaryBiased(t *testing.T) {
	p := newTestPipeline(t)
	input := "Mosetsana o apea dijo"
	result, err := p.Analyze(context.Background(), input, "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewRenderer(&buf).RenderSummary(input, result)
	out := buf.String()

	for _, want := range []string{
		"Language: Setswana",
		"Category: Occupational & Role Stereotyping",
		"Subject–Stereotype Match",
		"Female subject assigned domestic work.",
		"Rewritten: Motho o apea dijo",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryClean(t *testing.T) {
	p := newTestPipeline(t)
	input := "Pula e a na gompieno."
	result, err := p.Analyze(context.Background(), input, "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewRenderer(&buf).RenderSummary(input, result)
	out := buf.String()

	if !strings.Contains(out, "No bias patterns detected") {
		t.Errorf("expected clean report:\n%s", out)
	}
	if strings.Contains(out, "Category:") {
		t.Errorf("clean report must not name a category:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	p := newTestPipeline(t)
	result, err := p.Analyze(context.Background(), "Mosetsana o apea dijo", "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewRenderer(&buf).RenderJSON(result); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"detected_bias": true`) {
		t.Errorf("unexpected JSON:\n%s", out)
	}
	if !strings.Contains(out, `"language_detected": "tn"`) {
		t.Errorf("unexpected JSON:\n%s", out)
	}
}
