// File path: internal/llm/providers/ollama.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"

	"github.com/medassist-ai/icdcoder/internal/common"
)

// OllamaProvider runs a local model through langchaingo's Ollama backend,
// for deployments that keep clinical text off hosted APIs.
type OllamaProvider struct {
	llm   *ollama.LLM
	model string
	name  string
}

func NewOllamaProvider(name, serverURL, model string) (*OllamaProvider, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if strings.TrimSpace(serverURL) != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	common.Logger().Info("llm: provider configured", "provider", name, "model", model)
	return &OllamaProvider{llm: client, model: model, name: name}, nil
}

func (o *OllamaProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		role := schema.ChatMessageTypeHuman
		switch strings.ToLower(msg.Role) {
		case "system":
			role = schema.ChatMessageTypeSystem
		case "assistant":
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	resp, err := o.llm.GenerateContent(ctx, content)
	if err != nil {
		common.Logger().Error("llm: ollama generation failed", "provider", o.name, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Content, nil
}

func (o *OllamaProvider) Name() string {
	return o.name
}
