package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ithute/ithute/internal/pipeline"
)

var (
	correctJSON    bool
	correctTimeout time.Duration
)

// correctCmd represents the correct command
var correctCmd = &cobra.Command{
	Use:   "correct <text>",
	Short: "Detect and correct gender bias in a sentence",
	Long: `Correct analyzes one Setswana or isiZulu sentence:
- Identifies the language (or honors --lang)
- Runs the detection rules and explains every flagged passage
- Classifies the bias category
- Produces a template rewrite, optionally refined by an LLM

Example:
  ithute correct "Mosetsana o apea dijo"
  ithute correct --lang zu "Intombazane ipheka"
  ithute correct --llm --llm-provider openai "Mosetsana o apea dijo" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCorrect,
}

func init() {
	rootCmd.AddCommand(correctCmd)

	correctCmd.Flags().StringVar(&language, "lang", "", "input language (tn or zu, default: auto-detect)")
	correctCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	correctCmd.Flags().StringVar(&corpusPath, "corpus", "", "ground-truth exemplar JSON file")
	correctCmd.Flags().IntVar(&topK, "top-k", 0, "number of exemplars to retrieve")
	correctCmd.Flags().BoolVar(&correctJSON, "json", false, "emit JSON instead of a summary")
	correctCmd.Flags().DurationVar(&correctTimeout, "timeout", 60*time.Second, "overall timeout")

	// LLM flags
	correctCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM correction refinement")
	correctCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	correctCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), correctTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙ Analyzing: %s\n", text)
	}

	result, err := p.Analyze(ctx, text, language)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Language: %s\n", result.Language.Name())
		fmt.Fprintf(os.Stderr, "✓ Findings: %d\n", len(result.Findings))
	}

	renderer := pipeline.NewRenderer(os.Stdout)
	if correctJSON {
		return renderer.RenderJSON(result)
	}
	renderer.RenderSummary(text, result)
	return nil
}
