// Package worker runs detection over item batches with bounded
// concurrency. Results come back in input order regardless of which
// worker finished first.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ithute/ithute/internal/model"
)

// Analyzer runs one detection pass; the pipeline satisfies this
type Analyzer interface {
	Analyze(ctx context.Context, text, langHint string) (*model.RewriteResult, error)
}

// Item is one batch input
type Item struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// UnmarshalJSON accepts both an object form and a bare string (the
// source batch endpoints allowed plain text lists).
func (it *Item) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		it.Text = asString
		return nil
	}

	type itemAlias struct {
		ID         string `json:"id"`
		Text       string `json:"text"`
		BiasedText string `json:"biased_text"`
		Language   string `json:"language"`
		Lang       string `json:"lang"`
	}
	var a itemAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	it.ID = a.ID
	it.Text = a.Text
	if it.Text == "" {
		it.Text = a.BiasedText
	}
	it.Language = a.Language
	if it.Language == "" {
		it.Language = a.Lang
	}
	return nil
}

// ItemResult pairs an input item with its outcome
type ItemResult struct {
	Item   Item
	Result *model.RewriteResult
	Err    error
}

// BatchProcessor analyzes item lists concurrently
type BatchProcessor struct {
	analyzer   Analyzer
	maxWorkers int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, maxWorkers int) *BatchProcessor {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	return &BatchProcessor{analyzer: analyzer, maxWorkers: maxWorkers}
}

// Process analyzes all items concurrently, returning results in input
// order. A per-item failure lands in that item's slot; it never aborts
// the rest of the batch.
func (b *BatchProcessor) Process(ctx context.Context, items []Item) []ItemResult {
	if len(items) == 0 {
		return []ItemResult{}
	}

	results := make([]ItemResult, len(items))
	var wg sync.WaitGroup

	// Semaphore bounds concurrent analyses
	semaphore := make(chan struct{}, b.maxWorkers)

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it Item) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = ItemResult{Item: it, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			res, err := b.analyzer.Analyze(ctx, it.Text, it.Language)
			results[idx] = ItemResult{Item: it, Result: res, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// ProcessFile reads items from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]ItemResult, error) {
	items, err := ReadItemsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return b.Process(ctx, items), nil
}

// ReadItemsFromFile loads batch items. JSON files may be a bare array
// of items (objects or plain strings) or an {"items": [...]} wrapper;
// anything else is treated as plain text, one item per line, with # as
// a comment marker.
func ReadItemsFromFile(filePath string) ([]Item, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse items: %w", err)
		}
		return items, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var wrapper struct {
			Items []Item `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("parse items: %w", err)
		}
		return wrapper.Items, nil
	}

	var items []Item
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, Item{Text: line})
	}
	return items, nil
}
