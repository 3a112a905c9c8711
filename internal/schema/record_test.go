// File path: internal/schema/record_test.go
package schema

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEmptyModelResultMarshalsAsList(t *testing.T) {
	record := Record{
		SummaryID: "s1",
		Models:    []ModelResult{NewModelResult("OpenAI")},
	}
	data, err := record.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"codes": []`) {
		t.Fatalf("empty code list should marshal as [], got:\n%s", data)
	}
	if strings.Contains(string(data), "skips") {
		t.Fatalf("empty skips should be omitted, got:\n%s", data)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := Record{
		SummaryID: "s1",
		Models: []ModelResult{
			{Model: "OpenAI", Codes: []Entry{{Code: "E11.9", Confidence: 92, Evidence: "type 2 diabetes"}}},
			{Model: "Mistral", Codes: []Entry{}, Skips: []string{"extraction: timeout"}},
		},
	}
	first, err := record.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := record.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("marshal output should be byte-identical across calls")
	}
}

func TestToChart(t *testing.T) {
	record := Record{
		SummaryID: "s1",
		Models: []ModelResult{
			{Model: "OpenAI", Codes: []Entry{{
				Code:       "E11.9",
				Confidence: 92,
				Evidence:   "type 2 diabetes mellitus without complications",
			}}},
		},
	}
	export := ToChart(record)
	if len(export.Models) != 1 || len(export.Models[0].ICD10Codes) != 1 {
		t.Fatalf("unexpected export shape: %+v", export)
	}
	code := export.Models[0].ICD10Codes[0]
	if code.Disease != "Type 2 diabetes mellitus without complications" {
		t.Errorf("Disease = %q", code.Disease)
	}
	if code.Score != 92 {
		t.Errorf("Score = %d", code.Score)
	}
	if len(code.ICD10CMConcepts) != 1 || code.ICD10CMConcepts[0].Code != "E11.9" {
		t.Errorf("concepts = %+v", code.ICD10CMConcepts)
	}
	if len(code.Attributes) != 1 || code.Attributes[0].Type != "evidence" {
		t.Errorf("attributes = %+v", code.Attributes)
	}
	if code.Text != "type 2 diabetes mellitus without complications" {
		t.Errorf("Text = %q", code.Text)
	}

	data, err := json.Marshal(export)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	for _, field := range []string{`"hccCode":"24"`, `"DOS":"01-01-2020"`, `"PageNumbers":[]`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("export missing %s:\n%s", field, data)
		}
	}
}

func TestTruncateWords(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve"
	got := truncateWords(long, 10)
	if got != "one two three four five six seven eight nine ten" {
		t.Fatalf("truncateWords = %q", got)
	}
}

func TestToChartEmptyEvidence(t *testing.T) {
	record := Record{
		SummaryID: "s1",
		Models: []ModelResult{
			{Model: "LLaMA", Codes: []Entry{{Code: "Q99.9", Confidence: 0}}},
		},
	}
	code := ToChart(record).Models[0].ICD10Codes[0]
	if code.Text != "No text provided" {
		t.Errorf("Text = %q", code.Text)
	}
	if len(code.Attributes) != 0 {
		t.Errorf("attributes should be empty, got %+v", code.Attributes)
	}
	if code.Disease != "Description not found" {
		t.Errorf("Disease = %q", code.Disease)
	}
}
