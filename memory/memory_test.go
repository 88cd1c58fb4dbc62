package memory

import (
	"testing"

	"github.com/ZaguanLabs/goweft"
)

func TestInMemoryStore_AddAndUnits(t *testing.T) {
	store := NewInMemoryStore()

	units := []goweft.MemoryUnit{
		{SourceText: "Hello", TargetLang: "fr_FR", TargetText: "Bonjour"},
		{SourceText: "World", TargetLang: "fr_FR", TargetText: "Monde"},
		{SourceText: "Hello", TargetLang: "de_DE", TargetText: "Hallo"},
	}
	for _, u := range units {
		if err := store.Add(u); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := store.Units("fr_FR")
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fr_FR units = %d, want 2", len(got))
	}
	if got[0].TargetText != "Bonjour" || got[1].TargetText != "Monde" {
		t.Errorf("units out of insertion order: %v", got)
	}
}

func TestInMemoryStore_AddReplaces(t *testing.T) {
	store := NewInMemoryStore()
	store.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "fr_FR", TargetText: "Salut"})
	store.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "fr_FR", TargetText: "Bonjour"})

	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
	got, _ := store.Units("fr_FR")
	if got[0].TargetText != "Bonjour" {
		t.Errorf("TargetText = %q, want replacement", got[0].TargetText)
	}
}

func TestInMemoryStore_BaseLanguageMatch(t *testing.T) {
	store := NewInMemoryStore()
	store.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "fr", TargetText: "Bonjour"})
	store.Add(goweft.MemoryUnit{SourceText: "Hi", TargetLang: "fr_CA", TargetText: "Allo"})
	store.Add(goweft.MemoryUnit{SourceText: "Hello", TargetLang: "de_DE", TargetText: "Hallo"})

	got, err := store.Units("fr_FR")
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("fr_FR units = %d, want 2 (fr and fr_CA qualify)", len(got))
	}
}

func TestInMemoryStore_AllAndClear(t *testing.T) {
	store := NewInMemoryStore()
	store.Add(goweft.MemoryUnit{SourceText: "a", TargetLang: "fr_FR", TargetText: "a1"})
	store.Add(goweft.MemoryUnit{SourceText: "b", TargetLang: "de_DE", TargetText: "b1"})

	all, err := store.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("All = %d units, want 2", len(all))
	}

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", store.Len())
	}
}
