// File path: internal/pipeline/types.go

// Package pipeline runs the four coding stages for one summary: extraction,
// validation with a single refinement retry, confidence scoring, and record
// assembly. Stages are stage-local about failure: an API error skips the
// affected unit of work and is recorded on the model's result, never
// aborting the run.
package pipeline

// Candidate origins, carried for provenance.
const (
	OriginExtracted = "extracted"
	OriginSeed      = "seed"
	OriginRefined   = "refined"
)

// Candidate is a code proposed for a summary, not yet validated.
type Candidate struct {
	Code   string
	Model  string
	Origin string
}

// Validated is a candidate a model confirmed against the summary. Replaced
// marks codes that survived only via the refinement retry.
type Validated struct {
	Candidate
	Replaced     bool
	ReplacedFrom string
}

// Scored attaches the confidence verdict to a validated code.
type Scored struct {
	Validated
	Confidence int
	Evidence   string
}

// verdict tracks a candidate through the bounded-retry transition
// pending -> validated | rejected -> retried -> validated | dropped.
// skipped marks candidates abandoned on API failure rather than rejection.
type verdict int

const (
	verdictPending verdict = iota
	verdictValidated
	verdictRejected
	verdictRetried
	verdictDropped
	verdictSkipped
)

func (v verdict) String() string {
	switch v {
	case verdictPending:
		return "pending"
	case verdictValidated:
		return "validated"
	case verdictRejected:
		return "rejected"
	case verdictRetried:
		return "retried"
	case verdictDropped:
		return "dropped"
	case verdictSkipped:
		return "skipped"
	}
	return "unknown"
}
