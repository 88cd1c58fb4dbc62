package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ZaguanLabs/goweft"
)

// ExportFormat is the JSON structure for memory export/import.
type ExportFormat struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Units      []goweft.MemoryUnit `json:"units"`
	Metadata   map[string]string   `json:"metadata,omitempty"`
}

// Exporter writes a store's units to JSON for interchange with other
// translation tooling.
type Exporter struct {
	store Store
}

// NewExporter creates an exporter over a store. The store must also
// implement Dumper; Export fails otherwise.
func NewExporter(store Store) *Exporter {
	return &Exporter{store: store}
}

// Export writes the store contents to a writer in JSON format.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	dumper, ok := e.store.(Dumper)
	if !ok {
		return fmt.Errorf("store %T does not support export", e.store)
	}

	units, err := dumper.All()
	if err != nil {
		return fmt.Errorf("enumerating units: %w", err)
	}

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Units:      units,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Import reads a JSON export and adds every unit to the store. Units
// already present (same source text and target language) are replaced.
// Returns the number of units imported.
func Import(r io.Reader, store Store) (int, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("decoding JSON: %w", err)
	}

	count := 0
	for _, unit := range export.Units {
		if unit.SourceText == "" || unit.TargetLang == "" {
			continue
		}
		if err := store.Add(unit); err != nil {
			return count, fmt.Errorf("adding unit: %w", err)
		}
		count++
	}
	return count, nil
}
