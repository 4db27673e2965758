package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/ithute/ithute/internal/cache"
	"github.com/ithute/ithute/internal/model"
)

// Corrector wraps a provider with rate limiting and a correction cache.
// It owns the decision to keep or override the template rewrite: the
// template always survives as the fallback when the provider is absent
// or fails.
type Corrector struct {
	provider Provider
	limiter  *rate.Limiter
	cache    cache.Cache
	ttl      time.Duration
	verbose  bool
}

// NewCorrector builds a corrector from configuration. A nil provider
// (LLM disabled) is valid: Apply becomes a no-op.
func NewCorrector(cfg model.LLMConfig, verbose bool) (*Corrector, error) {
	provider, err := NewProvider(ConfigFromModel(cfg))
	if err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 4
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Corrector{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		cache:    cache.NewMemoryCache(ttl, ttl),
		ttl:      ttl,
		verbose:  verbose,
	}, nil
}

// Enabled reports whether a provider is configured
func (c *Corrector) Enabled() bool {
	return c != nil && c.provider != nil
}

// Apply attempts a generative correction and, on success, overrides
// SuggestedRewrite in place, marking the result as LLM-sourced. Every
// failure path leaves the template rewrite untouched.
func (c *Corrector) Apply(ctx context.Context, result *model.RewriteResult, originalText string) {
	if !c.Enabled() || !result.DetectedBias {
		return
	}

	key := cache.CorrectionKey(c.provider.Name(), "", string(result.Language), originalText)
	if cached, ok := c.cache.Get(key); ok {
		result.SuggestedRewrite = string(cached)
		result.RewriteSource = model.RewriteSourceLLM
		return
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.warn("rate limiter interrupted: %v", err)
		return
	}

	resp, err := c.provider.Correct(ctx, CorrectionRequest{
		Text:            originalText,
		Language:        result.Language,
		Category:        result.Category,
		Findings:        result.Findings,
		TemplateRewrite: result.TemplateRewrite,
		Exemplars:       result.Exemplars,
	})
	if err != nil {
		c.warn("correction failed, keeping template rewrite: %v", err)
		return
	}

	if err := c.cache.Set(key, []byte(resp.Rewrite), c.ttl); err != nil {
		c.warn("cache set failed: %v", err)
	}
	result.SuggestedRewrite = resp.Rewrite
	result.RewriteSource = model.RewriteSourceLLM
}

func (c *Corrector) warn(format string, args ...interface{}) {
	if c.verbose {
		fmt.Fprintf(os.Stderr, "⚙ llm: "+format+"\n", args...)
	}
}
