package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZaguanLabs/goweft"
)

// glossaryFile is the on-disk glossary format: an array of entries, each
// mapping language codes to one concept's literal.
//
//	[
//	  {"terms": {"en": "invoice", "fr_FR": "facture"}},
//	  {"terms": {"en": "due date", "fr_FR": "date d'échéance"}}
//	]
type glossaryFile []struct {
	Terms map[string]string `json:"terms"`
}

// decodeGlossary reads the JSON glossary format.
func decodeGlossary(r io.Reader) (*goweft.Glossary, error) {
	var file glossaryFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing glossary: %w", err)
	}

	entries := make([]goweft.GlossaryEntry, 0, len(file))
	for _, e := range file {
		entries = append(entries, goweft.GlossaryEntry{Terms: e.Terms})
	}
	return goweft.NewGlossary(entries...), nil
}
