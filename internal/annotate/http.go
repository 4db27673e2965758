package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ithute/ithute/internal/model"
)

// HTTPAnnotator posts the input text to an external annotation service
// and returns whatever hints it offers.
type HTTPAnnotator struct {
	endpoint   string
	httpClient *http.Client
}

type annotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type annotateResponse struct {
	Hints []Hint `json:"hints"`
}

// NewHTTPAnnotator creates an annotator for the configured endpoint
func NewHTTPAnnotator(cfg model.AnnotatorConfig) *HTTPAnnotator {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &HTTPAnnotator{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (a *HTTPAnnotator) Name() string { return "http" }

// Annotate requests hints for the text. Any transport or decode error is
// returned to the caller, which is expected to proceed without hints.
func (a *HTTPAnnotator) Annotate(ctx context.Context, text string, lang model.Language) ([]Hint, error) {
	body, err := json.Marshal(annotateRequest{Text: text, Language: string(lang)})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service returned %d", resp.StatusCode)
	}

	var out annotateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out.Hints, nil
}
