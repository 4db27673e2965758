package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/worker"
)

var (
	concurrency  int
	batchOutput  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Correct multiple texts from a file in parallel",
	Long: `Batch processes multiple texts concurrently:
- Read items from a JSON file (array of {"id","text","language"} objects,
  plain strings, or an {"items": [...]} wrapper) or plain text, one per line
- Analyze items in parallel with a configurable worker count
- Write one result per item, in input order

Example:
  ithute batch sentences.json
  ithute batch sentences.txt --concurrency 4 --output results.json
  ithute batch sentences.json --llm --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output JSON path (default: stdout)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&language, "lang", "", "input language for all items lacking one (tn or zu)")
	batchCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	batchCmd.Flags().StringVar(&corpusPath, "corpus", "", "ground-truth exemplar JSON file")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM correction refinement")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

type batchRecord struct {
	ID         string      `json:"id,omitempty"`
	Original   string      `json:"original"`
	Correction interface{} `json:"correction,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Ithute Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n\n", llmProvider, llmModel)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙ Reading items from file...\n")
	items, err := worker.ReadItemsFromFile(file)
	if err != nil {
		return fmt.Errorf("read items: %w", err)
	}
	for i := range items {
		if items[i].Language == "" {
			items[i].Language = language
		}
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d items\n\n", len(items))
	fmt.Fprintf(os.Stderr, "⚙ Processing with %d workers...\n\n", concurrency)

	results := processor.Process(ctx, items)

	successCount := 0
	failureCount := 0
	records := make([]batchRecord, 0, len(results))
	for _, r := range results {
		rec := batchRecord{ID: r.Item.ID, Original: r.Item.Text}
		if r.Err != nil {
			failureCount++
			rec.Error = r.Err.Error()
			fmt.Fprintf(os.Stderr, "✗ %q: %v\n", r.Item.Text, r.Err)
		} else {
			successCount++
			rec.Correction = r.Result
			if r.Result.DetectedBias {
				fmt.Fprintf(os.Stderr, "✓ %q → %q\n", r.Item.Text, r.Result.SuggestedRewrite)
			} else {
				fmt.Fprintf(os.Stderr, "○ %q (no bias detected)\n", r.Item.Text)
			}
		}
		records = append(records, rec)
	}

	out := os.Stdout
	if batchOutput != "" {
		f, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d items\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
