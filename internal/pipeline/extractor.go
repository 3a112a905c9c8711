// File path: internal/pipeline/extractor.go
package pipeline

import (
	"context"
	"fmt"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/icd"
	"github.com/medassist-ai/icdcoder/internal/ingest"
	"github.com/medassist-ai/icdcoder/internal/llm"
	"github.com/medassist-ai/icdcoder/internal/prompt"
)

// extract produces the candidate list for one model: seed codes from the
// retrieval backend first, then codes the model extracts from the summary,
// deduplicated and capped at the configured maximum. An extraction API
// failure is recorded as a skip; seeds are kept so the model can still
// validate what the backend proposed.
func (p *Pipeline) extract(ctx context.Context, provider llm.Provider, summary ingest.Summary) ([]Candidate, []string) {
	logger := common.Logger()
	var skips []string
	seen := make(map[string]struct{})
	candidates := make([]Candidate, 0, len(summary.SeedCodes))
	for _, seed := range summary.SeedCodes {
		code := icd.Normalize(seed)
		if !icd.Valid(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		candidates = append(candidates, Candidate{Code: code, Model: provider.Name(), Origin: OriginSeed})
	}

	reply, err := p.chat(ctx, provider, prompt.Extraction(summary.Text))
	if err != nil {
		logger.Warn("pipeline: extraction call failed", "model", provider.Name(), "summary", summary.ID, "error", err)
		skips = append(skips, fmt.Sprintf("extraction: %v", err))
	} else {
		codes := ParseCodeList(reply)
		if len(codes) == 0 {
			logger.Info("pipeline: extraction reply had no parseable codes", "model", provider.Name(), "summary", summary.ID)
		}
		for _, code := range codes {
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			candidates = append(candidates, Candidate{Code: code, Model: provider.Name(), Origin: OriginExtracted})
		}
	}

	if p.maxCodes > 0 && len(candidates) > p.maxCodes {
		candidates = candidates[:p.maxCodes]
	}
	logger.Debug("pipeline: extraction complete", "model", provider.Name(), "summary", summary.ID, "candidates", len(candidates))
	return candidates, skips
}
