package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ithute/ithute/internal/model"
)

// Flags shared by the correct, batch and serve commands
var (
	language    string
	lexiconPath string
	corpusPath  string
	topK        int
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// buildConfig assembles the effective configuration: defaults, then
// the viper layer (config file + ITHUTE_* env), then command flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("default_language"); v != "" {
		cfg.DefaultLanguage = v
	}
	if v := viper.GetString("lexicon_path"); v != "" {
		cfg.LexiconPath = v
	}
	if v := viper.GetString("corpus_path"); v != "" {
		cfg.CorpusPath = v
	}
	if v := viper.GetInt("retrieval.top_k"); v > 0 {
		cfg.Retrieval.TopK = v
	}
	if v := viper.GetString("annotator.endpoint"); v != "" {
		cfg.Annotator.Endpoint = v
	}
	if v := viper.GetString("server.host"); v != "" {
		cfg.Server.Host = v
	}
	if v := viper.GetInt("server.port"); v > 0 {
		cfg.Server.Port = v
	}
	if v := viper.GetInt("concurrency.batch_workers"); v > 0 {
		cfg.Concurrency.BatchWorkers = v
	}

	cfg.Output.Verbose = verbose

	if language != "" {
		if _, ok := model.NormalizeLanguage(language); !ok {
			return nil, fmt.Errorf("unsupported language %q (expected tn or zu)", language)
		}
	}
	if lexiconPath != "" {
		cfg.LexiconPath = lexiconPath
	}
	if corpusPath != "" {
		cfg.CorpusPath = corpusPath
	}
	if topK > 0 {
		cfg.Retrieval.TopK = topK
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
