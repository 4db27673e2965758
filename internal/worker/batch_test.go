package worker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ithute/ithute/internal/model"
)

// slowAnalyzer finishes earlier items later, to exercise result ordering
type slowAnalyzer struct {
	failOn string
}

func (a *slowAnalyzer) Analyze(ctx context.Context, text, langHint string) (*model.RewriteResult, error) {
	if text == "slow" {
		time.Sleep(20 * time.Millisecond)
	}
	if text == a.failOn {
		return nil, errors.New("analysis failed")
	}
	return &model.RewriteResult{
		Language:         model.LanguageSetswana,
		TemplateRewrite:  text,
		SuggestedRewrite: text,
		RewriteSource:    model.RewriteSourceTemplate,
	}, nil
}

func TestProcessPreservesInputOrder(t *testing.T) {
	p := NewBatchProcessor(&slowAnalyzer{}, 4)
	items := []Item{{Text: "slow"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}

	results := p.Process(context.Background(), items)
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, r := range results {
		if r.Item.Text != items[i].Text {
			t.Errorf("slot %d holds %q, want %q", i, r.Item.Text, items[i].Text)
		}
		if r.Err != nil {
			t.Errorf("unexpected error for %q: %v", r.Item.Text, r.Err)
		}
	}
}

func TestProcessIsolatesFailures(t *testing.T) {
	p := NewBatchProcessor(&slowAnalyzer{failOn: "bad"}, 2)
	items := []Item{{Text: "a"}, {Text: "bad"}, {Text: "c"}}

	results := p.Process(context.Background(), items)
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("healthy items must not fail")
	}
	if results[1].Err == nil {
		t.Error("expected error in the failing item's slot")
	}
	if results[1].Result != nil {
		t.Error("failed item must carry no result")
	}
}

func TestProcessEmptyBatch(t *testing.T) {
	p := NewBatchProcessor(&slowAnalyzer{}, 2)
	results := p.Process(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil result slice, got %v", results)
	}
}

func TestProcessCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewBatchProcessor(&slowAnalyzer{}, 1)
	results := p.Process(ctx, []Item{{Text: "a"}, {Text: "b"}})
	for _, r := range results {
		if r.Err == nil && r.Result == nil {
			t.Error("canceled item must carry either a result or an error")
		}
	}
}

func TestItemUnmarshalBareString(t *testing.T) {
	var it Item
	if err := json.Unmarshal([]byte(`"Mosetsana o apea dijo"`), &it); err != nil {
		t.Fatal(err)
	}
	if it.Text != "Mosetsana o apea dijo" || it.ID != "" || it.Language != "" {
		t.Errorf("unexpected item %+v", it)
	}
}

func TestItemUnmarshalAliases(t *testing.T) {
	var it Item
	data := `{"id": "x1", "biased_text": "Umama udokotela", "lang": "zu"}`
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		t.Fatal(err)
	}
	if it.ID != "x1" || it.Text != "Umama udokotela" || it.Language != "zu" {
		t.Errorf("aliases not honored: %+v", it)
	}

	// Canonical fields win over aliases
	data = `{"text": "a", "biased_text": "b", "language": "tn", "lang": "zu"}`
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		t.Fatal(err)
	}
	if it.Text != "a" || it.Language != "tn" {
		t.Errorf("canonical fields must win: %+v", it)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadItemsFromJSONArray(t *testing.T) {
	path := writeTemp(t, "items.json", `["plain text", {"id": "a", "text": "object text", "language": "zu"}]`)
	items, err := ReadItemsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Text != "plain text" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].ID != "a" || items[1].Language != "zu" {
		t.Errorf("unexpected second item %+v", items[1])
	}
}

func TestReadItemsFromWrapper(t *testing.T) {
	path := writeTemp(t, "items.json", `{"items": [{"text": "one"}, {"text": "two"}]}`)
	items, err := ReadItemsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Text != "one" || items[1].Text != "two" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestReadItemsFromPlainText(t *testing.T) {
	path := writeTemp(t, "items.txt", "# comment\nMosetsana o apea dijo\n\nUmama udokotela\n")
	items, err := ReadItemsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dropping comments and blanks, got %d", len(items))
	}
	if items[0].Text != "Mosetsana o apea dijo" || items[1].Text != "Umama udokotela" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestReadItemsMissingFile(t *testing.T) {
	if _, err := ReadItemsFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
