// File path: internal/schema/record.go

// Package schema defines the structured output produced for each summary.
// Records are assembled once and never mutated; field and slice ordering is
// deterministic so identical pipeline inputs marshal to identical bytes.
package schema

import "encoding/json"

// Entry is one scored code attributed to one model.
type Entry struct {
	Code       string `json:"code"`
	Confidence int    `json:"confidence"`
	Evidence   string `json:"evidence"`
}

// ModelResult groups the entries one model produced for a summary. Skips
// records the units of work abandoned on API failures, so a partial result
// is distinguishable from a clean empty one.
type ModelResult struct {
	Model string   `json:"model"`
	Codes []Entry  `json:"codes"`
	Skips []string `json:"skips,omitempty"`
}

// Record maps one summary to its per-model results, in configured model
// order.
type Record struct {
	SummaryID string        `json:"summary_id"`
	Models    []ModelResult `json:"models"`
}

// NewModelResult returns a result with a non-nil code list so empty results
// marshal as [] rather than null.
func NewModelResult(model string) ModelResult {
	return ModelResult{Model: model, Codes: []Entry{}}
}

// Result looks up the entries for a model tag.
func (r Record) Result(model string) (ModelResult, bool) {
	for _, result := range r.Models {
		if result.Model == model {
			return result, true
		}
	}
	return ModelResult{}, false
}

// Marshal renders the record as indented JSON.
func (r Record) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
