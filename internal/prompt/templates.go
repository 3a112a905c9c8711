// File path: internal/prompt/templates.go

// Package prompt holds the templates sent to the coding models. Placeholders
// use the {NAME} convention and are substituted verbatim; summaries are never
// escaped or truncated here.
package prompt

import "strings"

const extractionTemplate = `You are an expert medical coder reviewing a clinical summary.

Clinical summary:
{SUMMARY}

List every ICD-10 code that is stated or clearly implied by the summary.
Respond strictly as JSON in the form {"finalCodes": ["code1", "code2"]} with
no additional commentary. If no codes apply, respond {"finalCodes": []}.`

const validationTemplate = `You are an expert medical coder auditing a proposed ICD-10 code.

ICD-10 code: {ICD_CODE}
Official description: {DESCRIPTION}

Clinical summary:
{SUMMARY}

Review the summary, including diagnoses, comorbidities, treatments, and
documented symptoms. If the code fully matches the clinical picture, respond
with the single word CONFIRMED. Otherwise respond with a better alternative
ICD-10 code and a short justification quoting the summary.`

const alternativeTemplate = `You are an expert medical coder refining a rejected code set.

Previously proposed codes: {PREVIOUS_CODES}

Clinical summary:
{SUMMARY}

Re-evaluate the summary and suggest the ICD-10 codes that best capture it.
Respond strictly as JSON in the form {"finalCodes": ["code1", "code2"]} with
no additional commentary.`

const confidenceTemplate = `You are an expert medical coder scoring how well an ICD-10 code fits a summary.

ICD-10 code: {ICD_CODE}
Official description: {DESCRIPTION}

Clinical summary:
{SUMMARY}

Respond strictly as a JSON object with exactly two keys:
- "score": an integer from 0 to 100, where 90-100 is near-perfect alignment,
  50-89 moderate, and 0-49 poor.
- "evidence": a short excerpt from the summary (under 20 words) that
  justifies the score.
No additional commentary or formatting.`

// Extraction builds the per-model code extraction prompt.
func Extraction(summary string) string {
	return strings.NewReplacer("{SUMMARY}", summary).Replace(extractionTemplate)
}

// Validation builds the confirm-or-replace prompt for one candidate code.
func Validation(code, description, summary string) string {
	return strings.NewReplacer(
		"{ICD_CODE}", code,
		"{DESCRIPTION}", description,
		"{SUMMARY}", summary,
	).Replace(validationTemplate)
}

// Alternative builds the refinement prompt issued after a rejection.
func Alternative(previousCodes []string, summary string) string {
	return strings.NewReplacer(
		"{PREVIOUS_CODES}", strings.Join(previousCodes, ", "),
		"{SUMMARY}", summary,
	).Replace(alternativeTemplate)
}

// Confidence builds the scoring prompt for one validated code.
func Confidence(code, description, summary string) string {
	return strings.NewReplacer(
		"{ICD_CODE}", code,
		"{DESCRIPTION}", description,
		"{SUMMARY}", summary,
	).Replace(confidenceTemplate)
}
