package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ithute/ithute/internal/model"
)

// Renderer writes analysis results for the CLI
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *model.RewriteResult) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

// RenderSummary writes a human-readable report of one analysis
func (r *Renderer) RenderSummary(input string, result *model.RewriteResult) {
	fmt.Fprintf(r.out, "Language: %s\n", result.Language.Name())

	if !result.DetectedBias {
		fmt.Fprintf(r.out, "✓ No bias patterns detected\n")
		fmt.Fprintf(r.out, "Text: %s\n", input)
		return
	}

	fmt.Fprintf(r.out, "Category: %s\n", result.Category)
	fmt.Fprintf(r.out, "Findings (%d):\n", len(result.Findings))
	for _, f := range result.Findings {
		fmt.Fprintf(r.out, "  • %s: %q\n", f.Title, f.Span)
		fmt.Fprintf(r.out, "    %s\n", f.Reason)
	}

	fmt.Fprintf(r.out, "\nOriginal:  %s\n", input)
	fmt.Fprintf(r.out, "Rewritten: %s", result.SuggestedRewrite)
	if result.RewriteSource == model.RewriteSourceLLM {
		fmt.Fprintf(r.out, "  (LLM, template fallback: %s)", result.TemplateRewrite)
	}
	fmt.Fprintln(r.out)
	if result.TemplateWarning {
		fmt.Fprintf(r.out, "⚙ no rewrite template matched; text returned unchanged\n")
	}
}
