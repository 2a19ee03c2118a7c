// Package source resolves the price-list input reference.
// A reference is either a local file path or an http(s) URL. Fetched HTML
// pages are reduced to their main content and converted to markdown so
// the table parser always sees pipe-delimited markdown.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jakerains/configpdfprocessor/core"
	"github.com/jakerains/configpdfprocessor/core/fetch"
)

// Loader loads price-list markdown from a path or URL.
type Loader struct {
	fetcher core.Fetcher
}

// New creates a Loader using the default HTTP fetcher.
func New() *Loader {
	return &Loader{fetcher: fetch.New()}
}

// NewWithFetcher creates a Loader with a custom fetcher (used in tests).
func NewWithFetcher(f core.Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Load returns the markdown content of the referenced price list.
// Local files are read as UTF-8 text; URLs are fetched, and HTML
// responses are converted to markdown first.
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	if isURL(ref) {
		return l.loadRemote(ctx, ref)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("reading price list %s: %w", ref, err)
	}
	return string(data), nil
}

func (l *Loader) loadRemote(ctx context.Context, url string) (string, error) {
	result, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	if isHTML(result) {
		markdown, err := htmlToMarkdown(result.Body)
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", url, err)
		}
		return markdown, nil
	}
	return result.Body, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func isHTML(result *core.FetchResult) bool {
	if strings.Contains(result.ContentType, "text/html") {
		return true
	}
	// Some servers mislabel; sniff the body as a fallback.
	head := strings.ToLower(strings.TrimSpace(result.Body))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
