// File path: internal/config/config.go

// Package config resolves the pipeline configuration from the environment.
// Configuration problems are the only fatal error class: Load fails before
// any summary is processed rather than mid-run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderOllama = "ollama"
)

const (
	defaultOpenAIChatModel = "gpt-4o"
	defaultGroqMistral     = "mixtral-8x7b-32768"
	defaultGroqLlama       = "llama3-70b-8192"
	defaultRequestTimeout  = 60 * time.Second
	defaultMaxCodes        = 5
)

// ModelSpec names one coding model in the roster. Name is the provenance tag
// carried through to the output record; Model is the provider's model id.
type ModelSpec struct {
	Name     string
	Provider string
	Model    string
}

type Config struct {
	OpenAIKey      string
	OpenAIEndpoint string
	GroqKey        string
	OllamaHost     string

	Models []ModelSpec

	// RequestTimeout bounds every outbound model call.
	RequestTimeout time.Duration
	// MaxCodes caps the candidates taken per model per summary.
	MaxCodes int
}

// Load builds the configuration from environment variables. The roster is
// derived from which credentials are present: OPENAI_API_KEY enables the
// OpenAI model, GROQ_API_KEY enables the Groq-hosted Mistral and LLaMA
// models, OLLAMA_MODEL enables a local Ollama model. An empty roster is a
// fatal configuration error.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIEndpoint: strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")),
		GroqKey:        strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		OllamaHost:     strings.TrimSpace(os.Getenv("OLLAMA_HOST")),
		RequestTimeout: defaultRequestTimeout,
		MaxCodes:       defaultMaxCodes,
	}

	if raw := strings.TrimSpace(os.Getenv("ICD_REQUEST_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ICD_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		cfg.RequestTimeout = timeout
	}
	if raw := strings.TrimSpace(os.Getenv("ICD_MAX_CODES")); raw != "" {
		maxCodes, err := strconv.Atoi(raw)
		if err != nil || maxCodes <= 0 {
			return nil, fmt.Errorf("invalid ICD_MAX_CODES %q", raw)
		}
		cfg.MaxCodes = maxCodes
	}

	if cfg.OpenAIKey != "" {
		cfg.Models = append(cfg.Models, ModelSpec{
			Name:     "OpenAI",
			Provider: ProviderOpenAI,
			Model:    envDefault("OPENAI_CHAT_MODEL", defaultOpenAIChatModel),
		})
	}
	if cfg.GroqKey != "" {
		cfg.Models = append(cfg.Models,
			ModelSpec{
				Name:     "Mistral",
				Provider: ProviderGroq,
				Model:    envDefault("GROQ_MISTRAL_MODEL", defaultGroqMistral),
			},
			ModelSpec{
				Name:     "LLaMA",
				Provider: ProviderGroq,
				Model:    envDefault("GROQ_LLAMA_MODEL", defaultGroqLlama),
			},
		)
	}
	if model := strings.TrimSpace(os.Getenv("OLLAMA_MODEL")); model != "" {
		cfg.Models = append(cfg.Models, ModelSpec{
			Name:     "Ollama",
			Provider: ProviderOllama,
			Model:    model,
		})
	}

	if len(cfg.Models) == 0 {
		return nil, errors.New("no model credentials configured: set OPENAI_API_KEY, GROQ_API_KEY, or OLLAMA_MODEL")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
