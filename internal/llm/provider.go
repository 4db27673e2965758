package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ithute/ithute/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Correct generates a fluent bias-free rewrite of the request text
	Correct(ctx context.Context, req CorrectionRequest) (*CorrectionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CorrectionRequest contains the input for a generative correction
type CorrectionRequest struct {
	// Text is the original input
	Text string

	// Language is the detected language tag
	Language model.Language

	// Category is the assigned bias category
	Category model.CategoryLabel

	// Findings justify why the text was flagged
	Findings []model.Finding

	// TemplateRewrite is the deterministic fallback the model may improve on
	TemplateRewrite string

	// Exemplars seed the few-shot prompt; empty means zero-shot
	Exemplars []model.Exemplar

	// Prompt is an optional custom prompt (if empty, use BuildPrompt)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CorrectionResponse contains the LLM's rewrite output
type CorrectionResponse struct {
	// Rewrite is the generated bias-free text
	Rewrite string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 300,
	}
}

const systemPrompt = "You are a careful editor of Setswana and isiZulu text. " +
	"You rewrite sentences to remove gender bias while preserving meaning, and you answer with the rewritten sentence only."

// BuildPrompt constructs the few-shot correction prompt from retrieved
// exemplars. With no exemplars the prompt degrades to zero-shot: the
// instructions and the flagged findings alone.
func BuildPrompt(req CorrectionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rewrite the following %s sentence so it is free of gender bias.\n", req.Language.Name())
	b.WriteString("Preserve the factual meaning. Do not translate. Respond with the corrected sentence only.\n")

	if req.Category != "" {
		fmt.Fprintf(&b, "\nDetected bias category: %s\n", req.Category)
	}
	if len(req.Findings) > 0 {
		b.WriteString("Flagged passages:\n")
		for _, f := range req.Findings {
			fmt.Fprintf(&b, "- %q: %s\n", f.Span, f.Reason)
		}
	}

	if len(req.Exemplars) > 0 {
		b.WriteString("\nExamples of corrections in this language:\n")
		for _, ex := range req.Exemplars {
			fmt.Fprintf(&b, "Biased: %s\nBias-free: %s\n", ex.BiasedText, ex.BiasFreeText)
		}
	}

	if req.TemplateRewrite != "" && req.TemplateRewrite != req.Text {
		fmt.Fprintf(&b, "\nA rough automatic rewrite (improve its fluency if you can): %s\n", req.TemplateRewrite)
	}

	fmt.Fprintf(&b, "\nSentence to correct: %s\n", req.Text)
	return b.String()
}

// cleanRewrite strips the quoting and labeling chat models wrap answers in
func cleanRewrite(s string) string {
	s = strings.TrimSpace(s)
	for _, label := range []string{"Bias-free:", "Corrected:", "Rewrite:"} {
		if strings.HasPrefix(s, label) {
			s = strings.TrimSpace(strings.TrimPrefix(s, label))
		}
	}
	s = strings.Trim(s, "\"")
	return strings.TrimSpace(s)
}
