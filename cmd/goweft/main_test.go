package main

import (
	"strings"
	"testing"

	"github.com/ZaguanLabs/goweft"
)

func TestParseLangTargets(t *testing.T) {
	targets, err := parseLangTargets("fr_FR:fill-empty,de_DE", "keep-all")
	if err != nil {
		t.Fatalf("parseLangTargets: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(targets))
	}
	if targets[0].Lang != "fr_FR" || targets[0].Policy != goweft.PolicyFillEmpty {
		t.Errorf("fr_FR target = %+v", targets[0])
	}
	if targets[1].Lang != "de_DE" || targets[1].Policy != goweft.PolicyKeep {
		t.Errorf("de_DE target = %+v, want legacy fallback keep", targets[1])
	}
}

func TestParseLangTargets_HyphenatedLocale(t *testing.T) {
	targets, err := parseLangTargets("fr-FR", "")
	if err != nil {
		t.Fatalf("parseLangTargets: %v", err)
	}
	if targets[0].Lang != "fr_FR" {
		t.Errorf("lang = %q, want normalized fr_FR", targets[0].Lang)
	}
	if targets[0].Policy != goweft.PolicyKeep {
		t.Errorf("policy = %q, want default keep", targets[0].Policy)
	}
}

func TestParseLangTargets_Invalid(t *testing.T) {
	if _, err := parseLangTargets("fr_FR:bogus", ""); err == nil {
		t.Error("expected error for unknown policy")
	}
	if _, err := parseLangTargets("fr_FR", "bogus-legacy"); err == nil {
		t.Error("expected error for unknown legacy policy")
	}
}

func TestParseLangTargets_Empty(t *testing.T) {
	targets, err := parseLangTargets("", "keep-all")
	if err != nil {
		t.Fatalf("parseLangTargets: %v", err)
	}
	if targets != nil {
		t.Errorf("targets = %v, want nil", targets)
	}
}

func TestFindColumn(t *testing.T) {
	header := []string{"Source", "fr-FR", " de_DE ", "notes"}

	tests := []struct {
		lang string
		want int
	}{
		{"fr_FR", 1},
		{"de_DE", 2},
		{"es_ES", -1},
	}
	for _, tt := range tests {
		if got := findColumn(header, tt.lang); got != tt.want {
			t.Errorf("findColumn(%q) = %d, want %d", tt.lang, got, tt.want)
		}
	}
}

func TestLabelNewColumns(t *testing.T) {
	matrix := [][]string{
		{"Source", "notes"},
		{"Hello", "x"},
	}
	result := goweft.Merge(goweft.MergeRequest{
		Matrix:       matrix,
		SourceColumn: 0,
		Rows:         []goweft.RowPlan{{Row: 1, Template: "{T1}", SegmentIDs: []string{"T1"}}},
		Translations: map[string]map[string]string{
			"fr_FR": {"T1": "Bonjour"},
			"de_DE": {"T1": "Hallo"},
		},
		Targets: []goweft.LangTarget{
			{Lang: "fr_FR", Column: -1, Policy: goweft.PolicyFillEmpty},
			{Lang: "de_DE", Column: -1, Policy: goweft.PolicyFillEmpty},
		},
	})

	labelNewColumns(result.Matrix, []goweft.LangTarget{
		{Lang: "fr_FR", Column: -1},
		{Lang: "de_DE", Column: -1},
	})

	if got := result.Matrix[0][2]; got != "fr_FR" {
		t.Errorf("header[2] = %q, want fr_FR", got)
	}
	if got := result.Matrix[0][3]; got != "de_DE" {
		t.Errorf("header[3] = %q, want de_DE", got)
	}
}

func TestLabelNewColumns_RaggedRows(t *testing.T) {
	// Data rows wider than the header: created columns start at the
	// merged matrix width, not at the header length.
	matrix := [][]string{
		{"Source"},
		{"Hello", "note", "extra"},
	}
	result := goweft.Merge(goweft.MergeRequest{
		Matrix:       matrix,
		SourceColumn: 0,
		Rows:         []goweft.RowPlan{{Row: 1, Template: "{T1}", SegmentIDs: []string{"T1"}}},
		Translations: map[string]map[string]string{
			"fr_FR": {"T1": "Bonjour"},
		},
		Targets: []goweft.LangTarget{
			{Lang: "fr_FR", Column: -1, Policy: goweft.PolicyFillEmpty},
		},
	})

	labelNewColumns(result.Matrix, []goweft.LangTarget{{Lang: "fr_FR", Column: -1}})

	if got := result.Matrix[0][3]; got != "fr_FR" {
		t.Errorf("header[3] = %q, want fr_FR on the created column", got)
	}
	if got := result.Matrix[0][1]; got != "" {
		t.Errorf("header[1] = %q, want untouched grown cell", got)
	}
	if got := result.Matrix[1][3]; got != "Bonjour" {
		t.Errorf("data[3] = %q, want Bonjour", got)
	}
}

func TestDecodeGlossary(t *testing.T) {
	input := `[
		{"terms": {"en": "invoice", "fr_FR": "facture"}},
		{"terms": {"en": "due date", "fr_FR": "date d'échéance"}}
	]`

	g, err := decodeGlossary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decodeGlossary: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}
	got, ok := g.Lookup("Invoice", "en", "fr_FR")
	if !ok || got != "facture" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
}

func TestDecodeGlossary_Invalid(t *testing.T) {
	if _, err := decodeGlossary(strings.NewReader("{broken")); err == nil {
		t.Error("expected parse error")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/page", true},
		{"  https://example.com  ", true},
		{"example.com", false},
		{"Visit https://example.com now", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isURL(tt.in); got != tt.want {
			t.Errorf("isURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a , b ,, c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
