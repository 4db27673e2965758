package model

import "time"

// Config is the immutable process-wide configuration. It is constructed
// once at startup and passed explicitly to every component; nothing in
// the core reads configuration from globals.
type Config struct {
	// DefaultLanguage breaks language-identification ties ("tn" or "zu")
	DefaultLanguage string `yaml:"default_language"`

	// LexiconPath optionally points at a YAML lexicon override file.
	// Empty means built-in lexicons only.
	LexiconPath string `yaml:"lexicon_path"`

	// CorpusPath optionally points at a ground-truth exemplar JSON file.
	// Empty means the built-in fallback corpus.
	CorpusPath string `yaml:"corpus_path"`

	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	LLM         LLMConfig         `yaml:"llm"`
	Annotator   AnnotatorConfig   `yaml:"annotator"`
	Server      ServerConfig      `yaml:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// RetrievalConfig controls exemplar retrieval
type RetrievalConfig struct {
	// TopK is the number of exemplars returned per request
	TopK int `yaml:"top_k"`
}

// LLMConfig configures the optional generative correction stage
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"`
	BaseURL  string `yaml:"base_url"`

	// Timeout for one correction call, in seconds
	Timeout   int `yaml:"timeout"`
	MaxTokens int `yaml:"max_tokens"`

	// RequestsPerSecond and BurstSize bound outbound call rate
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`

	// CacheTTL bounds how long identical corrections are reused
	CacheTTL time.Duration `yaml:"cache_ttl"`

	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// AnnotatorConfig configures the optional NLP augmentation capability.
// An empty endpoint selects the no-op annotator.
type AnnotatorConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ServerConfig configures the HTTP service wrapper
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ConcurrencyConfig bounds batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DefaultLanguage: string(LanguageSetswana),
		Retrieval: RetrievalConfig{
			TopK: 2,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Timeout:           30,
			MaxTokens:         300,
			RequestsPerSecond: 2,
			BurstSize:         4,
			CacheTTL:          15 * time.Minute,
		},
		Annotator: AnnotatorConfig{
			Timeout: 5 * time.Second,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 8,
		},
	}
}
