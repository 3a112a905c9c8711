// File path: internal/llm/providers/groq.go
package providers

import "time"

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewGroqProvider wires a Groq-hosted model through the OpenAI-compatible
// client.
func NewGroqProvider(name, apiKey, model string, timeout time.Duration) *OpenAIProvider {
	return NewOpenAIProvider(name, apiKey, model, groqBaseURL, timeout)
}
