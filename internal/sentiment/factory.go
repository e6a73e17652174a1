package sentiment

import (
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
)

// NewAnalyzer returns the keyword analyzer when USE_MOCK_LLM is set and the
// OpenAI analyzer otherwise.
func NewAnalyzer(cfg *config.Config, logger internal.Logger) Analyzer {
	if cfg.UseMockLLM {
		return NewKeywordAnalyzer()
	}
	return NewOpenAIAnalyzer(OpenAIConfig{
		APIKey:              cfg.OpenAIAPIKey,
		BaseURL:             cfg.OpenAIBaseURL,
		Model:               cfg.Model,
		MaxTokens:           cfg.MaxTokens,
		Temperature:         cfg.Temperature,
		TimeoutMS:           cfg.LLMTimeoutMS,
		MaxRetries:          cfg.LLMMaxRetries,
		MaxTranscriptTokens: cfg.MaxTranscriptTokens,
	}, NewTokenizerForModel(cfg.Model), logger)
}
