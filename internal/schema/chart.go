// File path: internal/schema/chart.go
package schema

import (
	"strings"

	"github.com/medassist-ai/icdcoder/internal/icd"
)

// Chart export defaults for fields the pipeline has no source for. Billing
// consumers require the fields to be present even when unknown.
const (
	chartDefaultCategory = "General"
	chartDefaultType     = "Default"
	chartDefaultHCC      = "24"
	chartDefaultDOS      = "01-01-2020"
	chartDefaultProvider = "Unknown Provider"
	chartDefaultUnknown  = "Unknown"
	chartTextWordLimit   = 10
)

// ChartAttribute ties an evidence span to a code in the export.
type ChartAttribute struct {
	Type              string `json:"type"`
	Score             int    `json:"score"`
	RelationshipScore int    `json:"relationshipScore"`
	Text              string `json:"text"`
}

type ChartTrait struct {
	Name  string `json:"Name"`
	Score int    `json:"Score"`
}

type ChartConcept struct {
	Description string `json:"Description"`
	Code        string `json:"Code"`
	HCCCode     string `json:"hccCode"`
	Score       int    `json:"Score"`
}

// ChartCode is one coded finding in the downstream billing schema.
type ChartCode struct {
	Text              string           `json:"Text"`
	Disease           string           `json:"disease"`
	Category          string           `json:"Category"`
	Type              string           `json:"Type"`
	Score             int              `json:"Score"`
	Attributes        []ChartAttribute `json:"Attributes"`
	Traits            []ChartTrait     `json:"Traits"`
	ICD10CMConcepts   []ChartConcept   `json:"ICD10CMConcepts"`
	DOS               string           `json:"DOS"`
	Provider          string           `json:"Provider"`
	PlaceOfService    string           `json:"PlaceOfService"`
	SignatureProvider string           `json:"SignatureProvider"`
	NoteType          string           `json:"NoteType"`
	PageNumbers       []int            `json:"PageNumbers"`
}

type ChartModelResult struct {
	Model      string      `json:"model"`
	ICD10Codes []ChartCode `json:"ICD10Codes"`
}

// ChartExport is the billing-schema rendering of a Record.
type ChartExport struct {
	SummaryID string             `json:"summary_id"`
	Models    []ChartModelResult `json:"models"`
}

// ToChart converts a record into the downstream billing schema, filling the
// fields the pipeline cannot know with the documented defaults.
func ToChart(record Record) ChartExport {
	export := ChartExport{SummaryID: record.SummaryID}
	for _, result := range record.Models {
		converted := ChartModelResult{Model: result.Model, ICD10Codes: []ChartCode{}}
		for _, entry := range result.Codes {
			converted.ICD10Codes = append(converted.ICD10Codes, chartCode(entry))
		}
		export.Models = append(export.Models, converted)
	}
	return export
}

func chartCode(entry Entry) ChartCode {
	description := icd.Describe(entry.Code)
	code := ChartCode{
		Text:     truncateWords(entry.Evidence, chartTextWordLimit),
		Disease:  description,
		Category: chartDefaultCategory,
		Type:     chartDefaultType,
		Score:    entry.Confidence,
		Traits: []ChartTrait{
			{Name: "default", Score: entry.Confidence},
		},
		ICD10CMConcepts: []ChartConcept{
			{Description: description, Code: entry.Code, HCCCode: chartDefaultHCC, Score: entry.Confidence},
		},
		DOS:               chartDefaultDOS,
		Provider:          chartDefaultProvider,
		PlaceOfService:    chartDefaultUnknown,
		SignatureProvider: chartDefaultUnknown,
		NoteType:          chartDefaultUnknown,
		PageNumbers:       []int{},
		Attributes:        []ChartAttribute{},
	}
	if entry.Evidence != "" {
		code.Attributes = append(code.Attributes, ChartAttribute{
			Type:              "evidence",
			Score:             entry.Confidence,
			RelationshipScore: 50,
			Text:              entry.Evidence,
		})
	}
	if code.Text == "" {
		code.Text = "No text provided"
	}
	return code
}

func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ")
}
