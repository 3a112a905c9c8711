// File path: internal/config/config_test.go
package config

import (
	"testing"
	"time"
)

func clearModelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_CHAT_MODEL", "OPENAI_ENDPOINT",
		"GROQ_API_KEY", "GROQ_MISTRAL_MODEL", "GROQ_LLAMA_MODEL",
		"OLLAMA_MODEL", "OLLAMA_HOST",
		"ICD_REQUEST_TIMEOUT", "ICD_MAX_CODES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	clearModelEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error with no credentials configured")
	}
}

func TestLoadOpenAIOnly(t *testing.T) {
	clearModelEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Models) != 1 {
		t.Fatalf("models = %+v", cfg.Models)
	}
	spec := cfg.Models[0]
	if spec.Name != "OpenAI" || spec.Provider != ProviderOpenAI || spec.Model != "gpt-4o" {
		t.Errorf("spec = %+v", spec)
	}
	if cfg.RequestTimeout != 60*time.Second || cfg.MaxCodes != 5 {
		t.Errorf("defaults: timeout = %v, maxCodes = %d", cfg.RequestTimeout, cfg.MaxCodes)
	}
}

func TestLoadGroqEnablesTwoModels(t *testing.T) {
	clearModelEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Models) != 2 {
		t.Fatalf("models = %+v", cfg.Models)
	}
	if cfg.Models[0].Name != "Mistral" || cfg.Models[1].Name != "LLaMA" {
		t.Errorf("roster order = %q, %q", cfg.Models[0].Name, cfg.Models[1].Name)
	}
	for _, spec := range cfg.Models {
		if spec.Provider != ProviderGroq {
			t.Errorf("provider = %q for %q", spec.Provider, spec.Name)
		}
	}
}

func TestLoadRosterOrderIsStable(t *testing.T) {
	clearModelEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("OLLAMA_MODEL", "llama3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"OpenAI", "Mistral", "LLaMA", "Ollama"}
	if len(cfg.Models) != len(want) {
		t.Fatalf("models = %+v", cfg.Models)
	}
	for i, name := range want {
		if cfg.Models[i].Name != name {
			t.Errorf("roster[%d] = %q, want %q", i, cfg.Models[i].Name, name)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	clearModelEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("ICD_REQUEST_TIMEOUT", "15s")
	t.Setenv("ICD_MAX_CODES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Models[0].Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Models[0].Model)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout)
	}
	if cfg.MaxCodes != 3 {
		t.Errorf("maxCodes = %d", cfg.MaxCodes)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearModelEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ICD_REQUEST_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable timeout")
	}

	t.Setenv("ICD_REQUEST_TIMEOUT", "")
	t.Setenv("ICD_MAX_CODES", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-positive max codes")
	}
}
