package goweft_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ZaguanLabs/goweft"
	"github.com/ZaguanLabs/goweft/memory"
	"github.com/ZaguanLabs/goweft/provider"
	"github.com/ZaguanLabs/goweft/segment"
)

func TestFullPipeline(t *testing.T) {
	mock := provider.NewMockProvider()
	engine := goweft.New("en",
		goweft.WithProvider(mock),
		goweft.WithSegmenter(segment.New()),
	)

	matrix := [][]string{
		{"Source", "fr_FR"},
		{"<div><p>Hello</p><p>World</p></div>", ""},
		{"https://example.com", ""},
	}

	ext, err := engine.ExtractDocument("sheet1", []goweft.SourceRow{
		{Row: 1, Content: matrix[1][0]},
		{Row: 2, Content: matrix[2][0], Verbatim: true},
	}, goweft.NewIDAllocator())
	if err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}

	set := goweft.NewUniqueSet()
	for _, seg := range ext.Segments {
		set.Add(ext.Doc, seg)
	}

	byHash, stats, err := engine.TranslateUnique(context.Background(), set, "fr_FR")
	if err != nil {
		t.Fatalf("TranslateUnique: %v", err)
	}
	if stats.Translated != 2 {
		t.Errorf("Translated = %d, want 2", stats.Translated)
	}

	bySeg := set.DistributeByDoc(byHash)["sheet1"]

	result := goweft.Merge(goweft.MergeRequest{
		Matrix:       matrix,
		SourceColumn: 0,
		Rows:         ext.Plans(),
		Translations: map[string]map[string]string{"fr_FR": bySeg},
		Targets: []goweft.LangTarget{
			{Lang: "fr_FR", Column: 1, Policy: goweft.PolicyFillEmpty},
		},
	})

	if got := result.Matrix[1][1]; got != "<div><p>Bonjour</p><p>Monde</p></div>" {
		t.Errorf("translated cell = %q", got)
	}
	if got := result.Matrix[2][1]; got != "https://example.com" {
		t.Errorf("verbatim cell = %q, want URL copied", got)
	}
	if mock.CallCount != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount)
	}
}

func TestPipeline_TemplateRoundTripIdentity(t *testing.T) {
	// Merging the source texts themselves back into the templates must
	// reproduce the original content byte for byte.
	contents := []string{
		"<div><h1>Welcome</h1>\n  <p>We build <b>great</b> tools.</p></div>",
		"Plain sentence with {placeholder} token.",
		"<ul><li>First</li><li>Second</li></ul>",
	}

	engine := goweft.New("en", goweft.WithSegmenter(segment.New()))

	rows := make([]goweft.SourceRow, len(contents))
	for i, c := range contents {
		rows[i] = goweft.SourceRow{Row: i, Content: c}
	}

	ext, err := engine.ExtractDocument("doc", rows, goweft.NewIDAllocator())
	if err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}

	identity := make(map[string]string)
	for _, seg := range ext.Segments {
		identity[seg.ID] = seg.Text
	}

	for _, tmpl := range ext.Templates {
		rebuilt := tmpl.Text
		for id, text := range identity {
			rebuilt = strings.ReplaceAll(rebuilt, goweft.Placeholder(id), text)
		}
		if rebuilt != contents[tmpl.Row] {
			t.Errorf("row %d round trip:\n in: %q\nout: %q", tmpl.Row, contents[tmpl.Row], rebuilt)
		}
	}
}

func TestPipeline_LiteralPlaceholderTokenInContent(t *testing.T) {
	// A row may already contain a {T<n>}-shaped interpolation token. Its
	// number must never be allocated to a segment, or the protected
	// literal and the segment placeholder collide in the template.
	mock := provider.NewMockProvider()
	engine := goweft.New("en",
		goweft.WithProvider(mock),
		goweft.WithSegmenter(segment.New()),
	)

	content := "Hello {T2} World"
	ext, err := engine.ExtractDocument("doc", []goweft.SourceRow{
		{Row: 0, Content: content},
	}, goweft.NewIDAllocator())
	if err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}

	if got := ext.Templates[0].Text; got != "{T1} {T2} {T3}" {
		t.Fatalf("template = %q, want {T1} {T2} {T3} (id 2 reserved)", got)
	}
	if len(ext.Segments) != 2 || ext.Segments[0].ID != "T1" || ext.Segments[1].ID != "T3" {
		t.Fatalf("segments = %v, want ids T1 and T3", ext.Segments)
	}

	rebuilt := ext.Templates[0].Text
	for _, seg := range ext.Segments {
		rebuilt = strings.Replace(rebuilt, goweft.Placeholder(seg.ID), seg.Text, 1)
	}
	if rebuilt != content {
		t.Errorf("round trip = %q, want %q", rebuilt, content)
	}

	set := goweft.NewUniqueSet()
	for _, seg := range ext.Segments {
		set.Add("doc", seg)
	}
	byHash, _, err := engine.TranslateUnique(context.Background(), set, "fr_FR")
	if err != nil {
		t.Fatalf("TranslateUnique: %v", err)
	}

	result := goweft.Merge(goweft.MergeRequest{
		Matrix:       [][]string{{content, ""}},
		SourceColumn: 0,
		Rows:         ext.Plans(),
		Translations: map[string]map[string]string{
			"fr_FR": set.DistributeByDoc(byHash)["doc"],
		},
		Targets: []goweft.LangTarget{
			{Lang: "fr_FR", Column: 1, Policy: goweft.PolicyFillEmpty},
		},
	})

	if got := result.Matrix[0][1]; got != "Bonjour {T2} Monde" {
		t.Errorf("merged cell = %q, want the literal token kept verbatim", got)
	}
}

func TestPipeline_MemoryReuse(t *testing.T) {
	store := memory.NewInMemoryStore()
	store.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "fr_FR", TargetText: "Bonjour"})

	mock := provider.NewMockProvider()
	engine := goweft.New("en",
		goweft.WithProvider(mock),
		goweft.WithSegmenter(segment.New()),
		goweft.WithMemory(memory.NewMatcher(store), 70, 100),
	)

	set := goweft.NewUniqueSet()
	set.Add("doc", goweft.Segment{ID: "T1", Text: "Hello"})

	byHash, stats, err := engine.TranslateUnique(context.Background(), set, "fr_FR")
	if err != nil {
		t.Fatalf("TranslateUnique: %v", err)
	}
	if mock.CallCount != 0 {
		t.Errorf("provider calls = %d, want 0 (memory hit)", mock.CallCount)
	}
	if stats.MemoryHits != 1 {
		t.Errorf("MemoryHits = %d, want 1", stats.MemoryHits)
	}
	if got := byHash[goweft.HashText("Hello")]; got != "Bonjour" {
		t.Errorf("translation = %q, want Bonjour", got)
	}
}
