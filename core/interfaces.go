// Package core defines the shared data model and pipeline interfaces.
// Each stage of the pipeline is a clean, testable interface:
// source → parse → normalize → render → write.
package core

import "context"

// RawProduct is one product block parsed from the source price list.
// Specifications keep their source order.
type RawProduct struct {
	Name           string    `json:"name"`
	Price          string    `json:"price,omitempty"`
	Specifications []RawSpec `json:"specifications"`
}

// RawSpec is a single (category-or-label, value) pair from the parser.
// Category is either a classifier result or a verbatim source label.
type RawSpec struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// SpecEntry is one labeled specification in a structured record.
type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// UpgradeOption is one optional upgrade with its own price.
type UpgradeOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Price string `json:"price,omitempty"`
}

// StructuredRecord is the normalized representation of one product,
// ready for layout. Title is never empty.
type StructuredRecord struct {
	Title          string          `json:"title"`
	Price          string          `json:"price,omitempty"`
	MainSpecs      []SpecEntry     `json:"main_specs"`
	UpgradeOptions []UpgradeOption `json:"upgrade_options"`
}

// Parser turns raw price-list markdown into product blocks.
type Parser interface {
	Parse(markdown string) []RawProduct
}

// Normalizer structures a raw product into a StructuredRecord.
// Implementations may fail; callers resolve failures to the local
// fallback so downstream stages always see a complete record.
type Normalizer interface {
	Normalize(ctx context.Context, product RawProduct) (StructuredRecord, error)
}

// Renderer converts a structured record into a final output document.
type Renderer interface {
	Render(record StructuredRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}

// FetchResult holds the raw body and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        string
}

// Fetcher retrieves a remote price list over HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
