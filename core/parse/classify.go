// Package parse turns pipe-delimited price-list markdown into product blocks.
// Specification values with no explicit label are classified into a semantic
// category by keyword matching.
package parse

import "strings"

// categoryKeywords maps a category to the substrings that identify it.
type categoryKeywords struct {
	Category string
	Keywords []string
}

// specCategories is the classification table. Order matters: the first
// category with a matching keyword wins, so a value containing both "ram"
// and "windows" keywords lands in whichever category is listed earlier.
var specCategories = []categoryKeywords{
	{"Processor", []string{"processor", "intel", "amd", "core", "celeron", "xeon"}},
	{"Memory", []string{"memory", "gb:", "ram", "rdimm", "ddr"}},
	{"Storage", []string{"storage", "ssd", "hdd", "emmc", "hard drive", "nvme"}},
	{"Display", []string{"display", "screen", "lcd", "\"", "fhd", "hd", "monitor"}},
	{"Graphics", []string{"graphics", "gpu", "radeon", "nvidia", "intel® uhd"}},
	{"Power", []string{"adapter", "battery", "cell", "wh", "expresscharge"}},
	{"Wireless", []string{"wireless", "wi-fi", "bluetooth", "ax201", "ax211"}},
	{"Operating System", []string{"windows", "chrome"}},
	{"Warranty", []string{"warranty", "service", "support"}},
}

// CategoryOther is returned when no keyword set matches.
const CategoryOther = "Other"

// Classify maps a raw specification value to a semantic category.
// It always returns a category; unmatched values are "Other".
func Classify(value string) string {
	lower := strings.ToLower(value)
	for _, c := range specCategories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Category
			}
		}
	}
	return CategoryOther
}

// Categories returns the recognized category names in table order,
// excluding "Other".
func Categories() []string {
	names := make([]string, 0, len(specCategories))
	for _, c := range specCategories {
		names = append(names, c.Category)
	}
	return names
}
