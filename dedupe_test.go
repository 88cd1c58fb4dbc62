package goweft

import (
	"reflect"
	"testing"
)

func TestUniqueSet_DedupAcrossRowsAndDocs(t *testing.T) {
	set := NewUniqueSet()
	set.Add("doc-a", Segment{ID: "T1", Row: 0, Text: "Hello"})
	set.Add("doc-a", Segment{ID: "T2", Row: 3, Text: "Hello"})
	set.Add("doc-b", Segment{ID: "T1", Row: 7, Text: "  Hello  "})

	if got := set.UniqueCount(); got != 1 {
		t.Fatalf("UniqueCount() = %d, want 1", got)
	}
	if got := set.OccurrenceCount(); got != 3 {
		t.Fatalf("OccurrenceCount() = %d, want 3", got)
	}

	records := set.Records()
	if len(records) != 1 {
		t.Fatalf("Records() length = %d, want 1", len(records))
	}
	if records[0].Text != "Hello" {
		t.Errorf("canonical text = %q, want Hello", records[0].Text)
	}
	if len(records[0].Occurrences) != 3 {
		t.Errorf("occurrences = %d, want 3", len(records[0].Occurrences))
	}
}

func TestUniqueSet_FirstSeenOrder(t *testing.T) {
	set := NewUniqueSet()
	set.Add("doc", Segment{ID: "T1", Text: "beta"})
	set.Add("doc", Segment{ID: "T2", Text: "alpha"})
	set.Add("doc", Segment{ID: "T3", Text: "beta"})

	records := set.Records()
	if len(records) != 2 {
		t.Fatalf("Records() length = %d, want 2", len(records))
	}
	if records[0].Text != "beta" || records[1].Text != "alpha" {
		t.Errorf("record order = [%q, %q], want [beta, alpha]", records[0].Text, records[1].Text)
	}
}

func TestUniqueSet_IgnoresEmptyText(t *testing.T) {
	set := NewUniqueSet()
	set.Add("doc", Segment{ID: "T1", Text: "   "})

	if set.UniqueCount() != 0 || set.OccurrenceCount() != 0 {
		t.Errorf("blank segment recorded: unique=%d occurrences=%d",
			set.UniqueCount(), set.OccurrenceCount())
	}
}

func TestUniqueSet_DistributeByDoc(t *testing.T) {
	set := NewUniqueSet()
	set.Add("doc-a", Segment{ID: "T1", Row: 0, Text: "Hello"})
	set.Add("doc-a", Segment{ID: "T2", Row: 1, Text: "World"})
	set.Add("doc-b", Segment{ID: "T1", Row: 0, Text: "Hello"})

	byHash := map[string]string{
		HashText("Hello"): "Bonjour",
		HashText("World"): "Monde",
	}

	got := set.DistributeByDoc(byHash)
	want := map[string]map[string]string{
		"doc-a": {"T1": "Bonjour", "T2": "Monde"},
		"doc-b": {"T1": "Bonjour"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistributeByDoc() = %v, want %v", got, want)
	}
}

func TestUniqueSet_DistributeSkipsMissingTranslations(t *testing.T) {
	set := NewUniqueSet()
	set.Add("doc", Segment{ID: "T1", Text: "Hello"})

	got := set.DistributeByDoc(map[string]string{})
	if len(got) != 0 {
		t.Errorf("DistributeByDoc() = %v, want empty", got)
	}
}
