package normalize

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakerains/configpdfprocessor/core"
)

// failingNormalizer always fails, standing in for a broken model call.
type failingNormalizer struct{}

func (failingNormalizer) Normalize(context.Context, core.RawProduct) (core.StructuredRecord, error) {
	return core.StructuredRecord{}, fmt.Errorf("model unavailable")
}

// fixedNormalizer returns a canned record.
type fixedNormalizer struct {
	record core.StructuredRecord
}

func (n fixedNormalizer) Normalize(context.Context, core.RawProduct) (core.StructuredRecord, error) {
	return n.record, nil
}

func sampleProduct() core.RawProduct {
	return core.RawProduct{
		Name:  "Latitude 3550 Base Configuration",
		Price: "829",
		Specifications: []core.RawSpec{
			{Category: "Processor", Value: "Intel Core i5-1335U"},
			{Category: "Memory", Value: "8 GB: 1 x 8 GB, DDR5"},
		},
	}
}

// A failed normalization resolves to the deterministic local structuring:
// raw categories become labels verbatim, no upgrade options.
func TestResolveFallsBack(t *testing.T) {
	record := Resolve(context.Background(), failingNormalizer{}, sampleProduct())

	assert.Equal(t, "Latitude 3550 Base Configuration", record.Title)
	assert.Equal(t, "829", record.Price)
	require.Len(t, record.MainSpecs, 2)
	assert.Equal(t, "Processor", record.MainSpecs[0].Label)
	assert.Equal(t, "Intel Core i5-1335U", record.MainSpecs[0].Value)
	assert.Equal(t, "Memory", record.MainSpecs[1].Label)
	assert.NotNil(t, record.UpgradeOptions)
	assert.Empty(t, record.UpgradeOptions)
}

func TestResolvePassesThroughSuccess(t *testing.T) {
	want := core.StructuredRecord{
		Title:     "Latitude 3550",
		Price:     "829",
		MainSpecs: []core.SpecEntry{{Label: "Processor", Value: "Intel Core i5"}},
	}
	got := Resolve(context.Background(), fixedNormalizer{record: want}, sampleProduct())
	assert.Equal(t, want, got)
}

func TestFallbackEmptySpecs(t *testing.T) {
	record := Fallback(core.RawProduct{Name: "Bare"})
	assert.Equal(t, "Bare", record.Title)
	assert.Empty(t, record.MainSpecs)
	assert.Empty(t, record.UpgradeOptions)
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		title   string
	}{
		{
			name:    "bare JSON",
			content: `{"title": "Model X", "price": "999", "main_specs": [], "upgrade_options": []}`,
			title:   "Model X",
		},
		{
			name: "fenced JSON with prose",
			content: "Here is the structured data:\n```json\n" +
				`{"title": "Model Y", "main_specs": [{"label": "Memory", "value": "16 GB"}]}` +
				"\n```\nLet me know if you need changes.",
			title: "Model Y",
		},
		{
			name:    "no JSON object",
			content: "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			content: `{"title": "Model Z", "main_specs": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parseReply(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, record.Title)
		})
	}
}

func TestBuildPromptIncludesRawData(t *testing.T) {
	prompt := buildPrompt(sampleProduct())

	assert.Contains(t, prompt, "Product: Latitude 3550 Base Configuration")
	assert.Contains(t, prompt, "Price: $829")
	assert.Contains(t, prompt, "Processor: Intel Core i5-1335U")
	assert.Contains(t, prompt, "Memory: 8 GB: 1 x 8 GB, DDR5")
	assert.Contains(t, prompt, "Return ONLY a JSON object")
}

func TestBuildPromptMissingPrice(t *testing.T) {
	product := sampleProduct()
	product.Price = ""
	assert.Contains(t, buildPrompt(product), "Price: $N/A")
}
