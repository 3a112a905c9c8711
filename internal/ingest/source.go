// File path: internal/ingest/source.go

// Package ingest obtains clinical summaries for the pipeline. The retrieval
// backend that assembles them is external; this package only fetches and
// normalizes its output.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/medassist-ai/icdcoder/internal/icd"
)

// Summary is the unit of work for one pipeline run. SeedCodes are candidate
// codes the retrieval backend already attached to the chart; they join the
// extraction output as pre-seeded candidates.
type Summary struct {
	ID        string
	Text      string
	SeedCodes []string
}

// Source resolves a reference (chart id, file path) to a Summary.
type Source interface {
	Fetch(ctx context.Context, ref string) (Summary, error)
}

// InlineSource serves a fixed summary regardless of reference, for
// direct-text invocations and tests.
type InlineSource struct {
	Summary Summary
}

func (s InlineSource) Fetch(ctx context.Context, ref string) (Summary, error) {
	out := s.Summary
	if out.ID == "" {
		out.ID = ref
	}
	return out, nil
}

// FileSource reads the summary text from a local file; the reference is the
// path and the id is the bare file name.
type FileSource struct{}

func (FileSource) Fetch(ctx context.Context, ref string) (Summary, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return Summary{}, fmt.Errorf("read summary: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Summary{}, fmt.Errorf("summary file %s is empty", ref)
	}
	id := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	return Summary{ID: id, Text: text}, nil
}

// normalizeSeeds filters a raw code list down to syntactically valid,
// deduplicated ICD-10 codes in their original order.
func normalizeSeeds(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		code := icd.Normalize(entry)
		if !icd.Valid(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
