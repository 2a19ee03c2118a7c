// Package render — JSON renderer.
// Emits the structured record as indented JSON. Useful for inspecting what
// the normalizer produced, or for feeding the record into other tooling.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/jakerains/configpdfprocessor/core"
)

// JSONRenderer produces structured JSON output from a record.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the record, dropping empty-value entries the same way
// the PDF renderer skips them.
func (r *JSONRenderer) Render(record core.StructuredRecord) ([]byte, error) {
	record.MainSpecs = dropEmpty(record.MainSpecs)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON for %q: %w", record.Title, err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func dropEmpty(specs []core.SpecEntry) []core.SpecEntry {
	kept := make([]core.SpecEntry, 0, len(specs))
	for _, s := range specs {
		if s.Value != "" {
			kept = append(kept, s)
		}
	}
	return kept
}
