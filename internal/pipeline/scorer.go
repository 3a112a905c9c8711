// File path: internal/pipeline/scorer.go
package pipeline

import (
	"context"
	"fmt"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/icd"
	"github.com/medassist-ai/icdcoder/internal/llm"
	"github.com/medassist-ai/icdcoder/internal/prompt"
)

// score asks the model for a confidence verdict on a validated code. Both
// API failure and an unparseable reply degrade to confidence 0 with empty
// evidence; the validated code itself is kept so provenance survives.
func (p *Pipeline) score(ctx context.Context, provider llm.Provider, validated Validated, summaryText string) (Scored, []string) {
	logger := common.Logger()
	scored := Scored{Validated: validated}

	reply, err := p.chat(ctx, provider, prompt.Confidence(validated.Code, icd.Describe(validated.Code), summaryText))
	if err != nil {
		logger.Warn("pipeline: scoring call failed", "model", provider.Name(), "code", validated.Code, "error", err)
		return scored, []string{fmt.Sprintf("scoring %s: %v", validated.Code, err)}
	}
	result, ok := ParseScore(reply)
	if !ok {
		logger.Info("pipeline: unparseable scoring reply, defaulting to zero", "model", provider.Name(), "code", validated.Code)
		return scored, nil
	}
	scored.Confidence = result.Score
	scored.Evidence = result.Evidence
	logger.Debug("pipeline: code scored", "model", provider.Name(), "code", validated.Code, "confidence", scored.Confidence)
	return scored, nil
}
