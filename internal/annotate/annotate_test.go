package annotate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ithute/ithute/internal/model"
)

func TestNoop(t *testing.T) {
	hints, err := Noop{}.Annotate(context.Background(), "text", model.LanguageSetswana)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hints != nil {
		t.Errorf("expected no hints, got %v", hints)
	}
}

func TestNewSelectsNoopForEmptyEndpoint(t *testing.T) {
	a := New(model.AnnotatorConfig{})
	if a.Name() != "noop" {
		t.Errorf("expected noop annotator, got %q", a.Name())
	}

	a = New(model.AnnotatorConfig{Endpoint: "http://localhost:9999/annotate"})
	if a.Name() != "http" {
		t.Errorf("expected http annotator, got %q", a.Name())
	}
}

func TestHTTPAnnotator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text     string `json:"text"`
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Text != "Naledi o apea dijo" || req.Language != "tn" {
			t.Errorf("unexpected request %+v", req)
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"hints": []Hint{
				{Text: "Naledi", Kind: HintPerson, Gender: model.GenderFemale},
			},
		})
	}))
	defer srv.Close()

	a := NewHTTPAnnotator(model.AnnotatorConfig{Endpoint: srv.URL, Timeout: time.Second})
	hints, err := a.Annotate(context.Background(), "Naledi o apea dijo", model.LanguageSetswana)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(hints))
	}
	if hints[0].Text != "Naledi" || hints[0].Kind != HintPerson || hints[0].Gender != model.GenderFemale {
		t.Errorf("unexpected hint %+v", hints[0])
	}
}

func TestHTTPAnnotatorNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewHTTPAnnotator(model.AnnotatorConfig{Endpoint: srv.URL})
	if _, err := a.Annotate(context.Background(), "text", model.LanguageSetswana); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestHTTPAnnotatorUnreachable(t *testing.T) {
	a := NewHTTPAnnotator(model.AnnotatorConfig{
		Endpoint: "http://127.0.0.1:1/annotate",
		Timeout:  100 * time.Millisecond,
	})
	if _, err := a.Annotate(context.Background(), "text", model.LanguageSetswana); err == nil {
		t.Error("expected transport error")
	}
}
