// File path: internal/llm/providers/types.go
package providers

import "context"

type Message struct {
	Role    string
	Content string
}

// Provider is the minimal chat surface the pipeline needs from a hosted
// model. Implementations wrap stateless HTTP clients and are safe for
// concurrent use.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}
