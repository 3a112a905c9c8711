// File path: internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/config"
	"github.com/medassist-ai/icdcoder/internal/ingest"
	"github.com/medassist-ai/icdcoder/internal/llm"
	"github.com/medassist-ai/icdcoder/internal/schema"
)

// Pipeline holds the provider roster and per-call limits. It keeps no state
// across summaries; Run may be called concurrently for independent inputs.
type Pipeline struct {
	providers []llm.Provider
	maxCodes  int
	timeout   time.Duration
}

func New(providers []llm.Provider, cfg *config.Config) *Pipeline {
	pipe := &Pipeline{providers: providers}
	if cfg != nil {
		pipe.maxCodes = cfg.MaxCodes
		pipe.timeout = cfg.RequestTimeout
	}
	return pipe
}

// Run processes one summary through every configured model and assembles
// the output record. Model order follows the roster so identical inputs
// with identical replies produce byte-identical records. A model whose
// calls all fail contributes an empty result with recorded skips; the run
// itself never fails.
func (p *Pipeline) Run(ctx context.Context, summary ingest.Summary) schema.Record {
	logger := common.Logger()
	logger.Info("pipeline: processing summary", "summary", summary.ID, "models", len(p.providers), "seeds", len(summary.SeedCodes))
	record := schema.Record{SummaryID: summary.ID, Models: make([]schema.ModelResult, 0, len(p.providers))}
	for _, provider := range p.providers {
		record.Models = append(record.Models, p.runModel(ctx, provider, summary))
	}
	logger.Info("pipeline: summary complete", "summary", summary.ID)
	return record
}

func (p *Pipeline) runModel(ctx context.Context, provider llm.Provider, summary ingest.Summary) schema.ModelResult {
	logger := common.Logger()
	result := schema.NewModelResult(provider.Name())

	candidates, skips := p.extract(ctx, provider, summary)
	result.Skips = append(result.Skips, skips...)

	for _, cand := range candidates {
		validated, state, vskips := p.validateCandidate(ctx, provider, cand, summary.Text)
		result.Skips = append(result.Skips, vskips...)
		if state != verdictValidated {
			logger.Debug("pipeline: candidate not validated", "model", provider.Name(), "code", cand.Code, "state", state)
			continue
		}
		scored, sskips := p.score(ctx, provider, validated, summary.Text)
		result.Skips = append(result.Skips, sskips...)
		result.Codes = append(result.Codes, schema.Entry{
			Code:       scored.Code,
			Confidence: scored.Confidence,
			Evidence:   scored.Evidence,
		})
	}
	return result
}

// chat issues one bounded outbound call. The per-call timeout is the only
// retry/backoff policy beyond the validator's single refinement round.
func (p *Pipeline) chat(ctx context.Context, provider llm.Provider, content string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return provider.Chat(ctx, []llm.Message{{Role: "user", Content: content}})
}
