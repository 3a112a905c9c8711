// File path: internal/icd/codes.go
package icd

import (
	"regexp"
	"strings"
)

// validPattern is the grammar accepted for a normalized ICD-10 code: a
// letter, two digits, and an optional dotted extension of up to four
// alphanumeric characters (the positions ICD-10-CM actually uses).
var validPattern = regexp.MustCompile(`^[A-Z][0-9]{2}(?:\.[0-9A-Z]{1,4})?$`)

// extractPattern matches code-shaped tokens inside free text, with or
// without the dot separator.
var extractPattern = regexp.MustCompile(`\b[A-Z][0-9]{2}\.?[0-9A-Z]{0,4}\b`)

// Valid reports whether code is a syntactically well-formed, normalized
// ICD-10 code.
func Valid(code string) bool {
	return validPattern.MatchString(code)
}

// Normalize uppercases, trims, and inserts the dot separator into dotless
// extended codes (billing feeds often carry "C7931" for "C79.31"). The
// result is not guaranteed valid; callers check with Valid.
func Normalize(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	code = strings.TrimSuffix(code, ".")
	if len(code) > 3 && !strings.Contains(code, ".") {
		code = code[:3] + "." + code[3:]
	}
	return code
}

// Extract scans free text for ICD-10 codes, returning them normalized,
// syntax-checked, and deduplicated in order of first appearance.
func Extract(text string) []string {
	matches := extractPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		code := Normalize(match)
		if !Valid(code) {
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
