// File path: internal/llm/llm.go
package llm

import (
	"errors"
	"fmt"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/config"
	"github.com/medassist-ai/icdcoder/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProviders builds the provider roster in the configured model order.
// That order is load-bearing: the assembler emits per-model results in
// roster order so identical inputs produce identical records.
func NewProviders(cfg *config.Config) ([]Provider, error) {
	logger := common.Logger()
	roster := make([]Provider, 0, len(cfg.Models))
	for _, spec := range cfg.Models {
		switch spec.Provider {
		case config.ProviderOpenAI:
			roster = append(roster, providers.NewOpenAIProvider(spec.Name, cfg.OpenAIKey, spec.Model, cfg.OpenAIEndpoint, cfg.RequestTimeout))
		case config.ProviderGroq:
			roster = append(roster, providers.NewGroqProvider(spec.Name, cfg.GroqKey, spec.Model, cfg.RequestTimeout))
		case config.ProviderOllama:
			provider, err := providers.NewOllamaProvider(spec.Name, cfg.OllamaHost, spec.Model)
			if err != nil {
				logger.Warn("llm: skipping ollama provider", "model", spec.Model, "error", err)
				continue
			}
			roster = append(roster, provider)
		default:
			return nil, fmt.Errorf("unknown provider %q for model %q", spec.Provider, spec.Name)
		}
	}
	if len(roster) == 0 {
		return nil, errors.New("no usable llm providers")
	}
	logger.Info("llm: provider roster ready", "providers", len(roster))
	return roster, nil
}
