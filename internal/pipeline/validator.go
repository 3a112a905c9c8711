// File path: internal/pipeline/validator.go
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/icd"
	"github.com/medassist-ai/icdcoder/internal/llm"
	"github.com/medassist-ai/icdcoder/internal/prompt"
)

const confirmedToken = "CONFIRMED"

// validateCandidate walks one candidate through the bounded-retry
// transition. A rejected candidate gets exactly one refinement round: the
// model proposes an alternative, which is validated once; if that also
// fails, the candidate is dropped. Malformed replies count as rejections
// (fail-closed); API failures skip the candidate and are recorded.
func (p *Pipeline) validateCandidate(ctx context.Context, provider llm.Provider, cand Candidate, summaryText string) (Validated, verdict, []string) {
	logger := common.Logger()
	var skips []string

	confirmed, err := p.confirm(ctx, provider, cand.Code, summaryText)
	if err != nil {
		logger.Warn("pipeline: validation call failed", "model", provider.Name(), "code", cand.Code, "error", err)
		return Validated{}, verdictSkipped, append(skips, fmt.Sprintf("validation %s: %v", cand.Code, err))
	}
	if confirmed {
		logger.Debug("pipeline: code confirmed", "model", provider.Name(), "code", cand.Code)
		return Validated{Candidate: cand}, verdictValidated, skips
	}
	logger.Debug("pipeline: code rejected, requesting alternative", "model", provider.Name(), "code", cand.Code)

	reply, err := p.chat(ctx, provider, prompt.Alternative([]string{cand.Code}, summaryText))
	if err != nil {
		logger.Warn("pipeline: refinement call failed", "model", provider.Name(), "code", cand.Code, "error", err)
		return Validated{}, verdictSkipped, append(skips, fmt.Sprintf("refinement %s: %v", cand.Code, err))
	}
	alternative := pickAlternative(ParseCodeList(reply), cand.Code)
	if alternative == "" {
		logger.Debug("pipeline: no usable alternative suggested", "model", provider.Name(), "code", cand.Code)
		return Validated{}, verdictDropped, skips
	}

	retry := Candidate{Code: alternative, Model: cand.Model, Origin: OriginRefined}
	confirmed, err = p.confirm(ctx, provider, retry.Code, summaryText)
	if err != nil {
		logger.Warn("pipeline: retry validation call failed", "model", provider.Name(), "code", retry.Code, "error", err)
		return Validated{}, verdictSkipped, append(skips, fmt.Sprintf("validation %s: %v", retry.Code, err))
	}
	if confirmed {
		logger.Debug("pipeline: alternative confirmed", "model", provider.Name(), "code", retry.Code, "replaced", cand.Code)
		return Validated{Candidate: retry, Replaced: true, ReplacedFrom: cand.Code}, verdictValidated, skips
	}
	logger.Debug("pipeline: alternative rejected, dropping candidate", "model", provider.Name(), "code", cand.Code, "alternative", retry.Code)
	return Validated{}, verdictDropped, skips
}

// confirm asks the model whether the code fits the summary. Any reply not
// containing the confirmation token, including malformed text, is a
// rejection.
func (p *Pipeline) confirm(ctx context.Context, provider llm.Provider, code, summaryText string) (bool, error) {
	reply, err := p.chat(ctx, provider, prompt.Validation(code, icd.Describe(code), summaryText))
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToUpper(reply), confirmedToken), nil
}

// pickAlternative takes the first suggested code that differs from the
// rejected one.
func pickAlternative(codes []string, rejected string) string {
	normalized := icd.Normalize(rejected)
	for _, code := range codes {
		if code != normalized {
			return code
		}
	}
	return ""
}
