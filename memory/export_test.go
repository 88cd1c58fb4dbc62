package memory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZaguanLabs/goweft"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := NewInMemoryStore()
	src.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "fr_FR", TargetText: "Bonjour"})
	src.Add(goweft.MemoryUnit{SourceText: "World", TargetLang: "de_DE", TargetText: "Welt"})

	var buf bytes.Buffer
	if err := NewExporter(src).Export(&buf, map[string]string{"origin": "test"}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := NewInMemoryStore()
	n, err := Import(&buf, dst)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported = %d, want 2", n)
	}

	units, _ := dst.Units("fr_FR")
	if len(units) != 1 || units[0].TargetText != "Bonjour" {
		t.Errorf("fr_FR units after import = %v", units)
	}
}

func TestImport_SkipsIncompleteUnits(t *testing.T) {
	payload := `{
		"version": "1.0",
		"units": [
			{"source_text": "Hello", "target_lang": "fr_FR", "target_text": "Bonjour"},
			{"source_text": "", "target_lang": "fr_FR", "target_text": "x"},
			{"source_text": "World", "target_lang": "", "target_text": "y"}
		]
	}`

	store := NewInMemoryStore()
	n, err := Import(strings.NewReader(payload), store)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1", n)
	}
}

func TestImport_InvalidJSON(t *testing.T) {
	store := NewInMemoryStore()
	if _, err := Import(strings.NewReader("not json"), store); err == nil {
		t.Fatal("expected decode error")
	}
}
