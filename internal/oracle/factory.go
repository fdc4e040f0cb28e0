package oracle

import (
	"fmt"

	"github.com/courtsideai/courtside/internal/config"
)

// FromConfig builds the configured Oracle. ORACLE_PROVIDER selects the
// vendor; the matching API key must be set.
func FromConfig(cfg *config.Config) (Oracle, error) {
	switch cfg.OracleProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ORACLE_PROVIDER=anthropic but ANTHROPIC_API_KEY is not set")
		}
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.OracleTimeout)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("ORACLE_PROVIDER=openai but OPENAI_API_KEY is not set")
		}
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OracleTimeout), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.OracleProvider)
	}
}
