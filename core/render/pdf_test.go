package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakerains/configpdfprocessor/core"
)

func TestWrappedLines(t *testing.T) {
	tests := []struct {
		name          string
		renderedWidth float64
		columnWidth   float64
		want          int
	}{
		{"fits on one line", 50, 119, 1},
		{"just under two widths", 237, 119, 2},
		{"exactly at boundary", 238, 119, 3},
		{"zero width", 0, 119, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrappedLines(tt.renderedWidth, tt.columnWidth))
		})
	}
}

// A value needing 3 wrapped lines with 1 explicit break takes 3 lines,
// not 1: the wrap estimate and the break count do not add up.
func TestTotalLinesTakesMax(t *testing.T) {
	value := "first part\nsecond part" // 2 explicit lines

	// Rendered width forces 3 wrapped lines.
	assert.Equal(t, 3, TotalLines(value, 250, 119))

	// Narrow text: explicit breaks win.
	assert.Equal(t, 2, TotalLines(value, 30, 119))
}

// Row height is a positive multiple of the base unit and never shrinks
// as explicit line breaks are added.
func TestRowHeightMonotonic(t *testing.T) {
	const columnWidth = 119.0

	prev := 0.0
	value := "line"
	for i := 0; i < 6; i++ {
		h := RowHeight(value, 40, columnWidth)

		assert.Greater(t, h, 0.0)
		multiple := h / baseRowHeight
		assert.Equal(t, float64(int(multiple)), multiple, "height %v is not a multiple of the base unit", h)

		assert.GreaterOrEqual(t, h, prev)
		prev = h
		value += "\nline"
	}
}

func TestSheetRendererProducesPDF(t *testing.T) {
	record := core.StructuredRecord{
		Title: "Latitude 3550",
		Price: "829",
		MainSpecs: []core.SpecEntry{
			{Label: "Processor", Value: "Intel Core i5-1335U"},
			{Label: "Memory", Value: "8 GB: 1 x 8 GB, DDR5"},
			{Label: "Display", Value: ""}, // skipped
		},
		UpgradeOptions: []core.UpgradeOption{
			{Label: "Memory", Value: "Upgrade to 16 GB", Price: "80"},
		},
	}

	for _, renderer := range []*SheetRenderer{NewSheetRenderer(), NewTemplatedSheetRenderer()} {
		data, err := renderer.Render(record)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output is not a PDF")
		assert.Equal(t, ".pdf", renderer.Extension())
	}
}

func TestSheetRendererEmptyPrice(t *testing.T) {
	for _, price := range []string{"", "None"} {
		record := core.StructuredRecord{
			Title:     "Barebones",
			Price:     price,
			MainSpecs: []core.SpecEntry{{Label: "Other", Value: "Chassis only"}},
		}
		data, err := NewSheetRenderer().Render(record)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}
