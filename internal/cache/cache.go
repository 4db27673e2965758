// Package cache keeps recent generative corrections so identical inputs
// do not trigger repeat LLM calls. Detection itself is never cached;
// only the expensive external rewrite is.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CorrectionKey derives a cache key for one correction call. The key
// covers everything that changes the output: provider, model, language
// and the exact input text.
func CorrectionKey(provider, model, language, text string) string {
	hash := sha256.Sum256([]byte(strings.Join([]string{provider, model, language, text}, "\x00")))
	return "ithute:v1:" + hex.EncodeToString(hash[:])
}
