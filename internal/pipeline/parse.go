// File path: internal/pipeline/parse.go
package pipeline

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/medassist-ai/icdcoder/internal/icd"
)

// CleanFences strips a markdown code fence wrapper from a model reply,
// including an optional language tag on the opening fence.
func CleanFences(reply string) string {
	cleaned := strings.TrimSpace(reply)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	lines := strings.Split(cleaned, "\n")
	if strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

type codeListReply struct {
	FinalCodes []string `json:"finalCodes"`
}

// ParseCodeList reads candidate codes from an extraction or refinement
// reply. The structured {"finalCodes": [...]} shape is tried first; any
// malformed reply falls back to scanning the raw text for code-shaped
// tokens. The result is normalized, syntax-checked, and deduplicated.
func ParseCodeList(reply string) []string {
	cleaned := CleanFences(reply)
	var structured codeListReply
	if err := json.Unmarshal([]byte(cleaned), &structured); err == nil && structured.FinalCodes != nil {
		return normalizeCodes(structured.FinalCodes)
	}
	return icd.Extract(reply)
}

func normalizeCodes(raw []string) []string {
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

// ScoreResult is the parsed form of a scoring reply.
type ScoreResult struct {
	Score    int
	Evidence string
}

// ParseScore reads the {"score": n, "evidence": ...} scoring reply. The
// second return is false when the reply is unparseable; callers then apply
// the zero-confidence fallback. Scores outside [0,100] are clamped, and
// evidence given as a list is joined with "; ".
func ParseScore(reply string) (ScoreResult, bool) {
	cleaned := CleanFences(reply)
	var raw struct {
		Score    json.RawMessage `json:"score"`
		Evidence json.RawMessage `json:"evidence"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return ScoreResult{}, false
	}
	score, ok := parseNumber(raw.Score)
	if !ok {
		return ScoreResult{}, false
	}
	return ScoreResult{Score: clamp(score, 0, 100), Evidence: parseEvidence(raw.Evidence)}, true
}

func parseNumber(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	text := strings.TrimSpace(string(raw))
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		text = strings.TrimSpace(quoted)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(value)), true
}

func parseEvidence(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, entry := range list {
			if trimmed := strings.TrimSpace(entry); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
