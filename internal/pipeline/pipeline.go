// Package pipeline orchestrates the complete detection pass: language
// identification, preprocessing, rule detection, classification,
// template rewriting and exemplar retrieval.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/ithute/ithute/internal/annotate"
	"github.com/ithute/ithute/internal/classify"
	"github.com/ithute/ithute/internal/langid"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/llm"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
	"github.com/ithute/ithute/internal/retrieve"
	"github.com/ithute/ithute/internal/rewrite"
	"github.com/ithute/ithute/internal/rules"
)

// Pipeline runs the full analysis. It holds no per-request state and is
// safe for concurrent use; each Analyze call builds its own result.
type Pipeline struct {
	store      *lexicon.Store
	detector   *langid.Detector
	engine     *rules.Engine
	classifier *classify.Classifier
	retriever  *retrieve.Retriever
	annotator  annotate.Annotator
	corrector  *llm.Corrector
	config     *model.Config
}

// New creates a pipeline from configuration: lexicons (built-in plus
// optional YAML override), exemplar corpus (built-in or file), the
// optional annotator, and the optional generative corrector.
func New(cfg *model.Config) (*Pipeline, error) {
	var store *lexicon.Store
	var err error
	if cfg.LexiconPath != "" {
		store, err = lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	} else {
		store = lexicon.DefaultStore()
	}

	defaultLang, ok := model.NormalizeLanguage(cfg.DefaultLanguage)
	if !ok {
		defaultLang = model.LanguageSetswana
	}

	corpus := retrieve.BuiltinCorpus()
	if cfg.CorpusPath != "" {
		corpus, err = retrieve.LoadCorpus(cfg.CorpusPath)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
	}

	var corrector *llm.Corrector
	if cfg.LLM.Provider != "" {
		corrector, err = llm.NewCorrector(cfg.LLM, cfg.Output.Verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		}
	}

	return &Pipeline{
		store:      store,
		detector:   langid.NewDetector(store, defaultLang),
		engine:     rules.NewEngine(store),
		classifier: classify.NewClassifier(store),
		retriever:  retrieve.NewRetriever(store, corpus, cfg.Retrieval.TopK),
		annotator:  annotate.New(cfg.Annotator),
		corrector:  corrector,
		config:     cfg,
	}, nil
}

// Store exposes the lexicon store for callers that need table access
func (p *Pipeline) Store() *lexicon.Store {
	return p.store
}

// Analyze runs the full detection pass over one text. An empty langHint
// triggers language identification; empty input fails open as a no-bias
// identity result. The returned result is owned by the caller and never
// cached or mutated by the pipeline afterwards.
func (p *Pipeline) Analyze(ctx context.Context, text, langHint string) (*model.RewriteResult, error) {
	// 1. Normalize: matching is diacritic-sensitive over NFC text
	text = morph.NFC(text)

	// 2. Resolve language
	var lang model.Language
	if langHint != "" {
		var ok bool
		lang, ok = model.NormalizeLanguage(langHint)
		if !ok {
			return nil, fmt.Errorf("unsupported language %q", langHint)
		}
	} else {
		lang = p.detector.Detect(text)
	}

	result := &model.RewriteResult{
		Language:         lang,
		Findings:         []model.Finding{},
		TemplateRewrite:  text,
		SuggestedRewrite: text,
		RewriteSource:    model.RewriteSourceTemplate,
	}
	if text == "" {
		return result, nil
	}

	tab := p.store.Table(lang)
	if tab == nil {
		return nil, fmt.Errorf("no lexicon for language %q", lang)
	}

	// 3. Preprocess
	tokens := morph.Tokenize(text, tab.AllPrefixes())

	// 4. Optional annotation; failure degrades to no hints
	hints, err := p.annotator.Annotate(ctx, text, lang)
	if err != nil {
		p.verbose("annotator %s failed: %v", p.annotator.Name(), err)
		hints = nil
	}

	// 5. Detect
	findings, err := p.engine.Detect(text, lang, tokens, hints)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	result.Findings = findings
	result.DetectedBias = len(findings) > 0
	if !result.DetectedBias {
		return result, nil
	}

	// 6. Classify
	if category, ok := p.classifier.Classify(text, lang, findings); ok {
		result.Category = category
	}

	// 7. Template rewrite
	subjects := p.engine.Subjects(tokens, lang)
	actions := p.engine.Actions(tokens, lang)
	template := rewrite.Select(findings, subjects, actions)
	result.TemplateRewrite = rewrite.Apply(template, text, tab, tokens, subjects, actions)
	result.SuggestedRewrite = result.TemplateRewrite
	result.TemplateWarning = template == rewrite.TemplateIdentity

	// 8. Retrieve exemplars for the generative prompt
	result.Exemplars = p.retriever.Retrieve(text, lang, result.Category)

	// 9. Optional generative correction, after the template fallback is
	// in place; failure keeps the template rewrite
	if p.corrector.Enabled() {
		p.corrector.Apply(ctx, result, text)
	}

	return result, nil
}

func (p *Pipeline) verbose(format string, args ...interface{}) {
	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "⚙ "+format+"\n", args...)
	}
}
