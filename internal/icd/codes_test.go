// File path: internal/icd/codes_test.go
package icd

import (
	"reflect"
	"testing"
)

func TestValid(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"E11.9", true},
		{"I10", true},
		{"C79.31", true},
		{"G40.909", true},
		{"Z79.4", true},
		{"S72.001A", true},
		{"e11.9", false},
		{"E1.9", false},
		{"E119", false},
		{"E11.", false},
		{"E11.99999", false},
		{"11.9", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Valid(tc.code); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"e11.9", "E11.9"},
		{" I10 ", "I10"},
		{"C7931", "C79.31"},
		{"G936", "G93.6"},
		{"I63.", "I63"},
		{"E11.9", "E11.9"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestExtract(t *testing.T) {
	text := "Likely E11.9 given the history; also consider I10 and I63.9. " +
		"E11.9 was already noted. Ignore lowercase e11.9 and the room number 12.9."
	want := []string{"E11.9", "I10", "I63.9"}
	if got := Extract(text); !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract("no codes mentioned anywhere"); got != nil {
		t.Fatalf("Extract = %v, want nil", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("E11.9"); got != "Type 2 diabetes mellitus without complications" {
		t.Fatalf("Describe(E11.9) = %q", got)
	}
	if got := Describe("C7931"); got != "Secondary malignant neoplasm of brain" {
		t.Fatalf("Describe(C7931) = %q", got)
	}
	if got := Describe("Q99.9"); got != DescriptionNotFound {
		t.Fatalf("Describe(unknown) = %q", got)
	}
}
