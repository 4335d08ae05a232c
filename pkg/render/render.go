// Package render provides output renderers for grouped attribute views.
package render

import (
	"strings"

	"github.com/dctmtools/dumpview/pkg/view"
)

// NullMarker is displayed for absent or empty scalar values.
const NullMarker = "NULL"

// Renderer converts a grouped attribute view to formatted output.
type Renderer interface {
	Render(kind string, sections []view.Section) string
}

// FormatValue renders an attribute value as display text. A scalar renders
// as itself, or the null marker when absent or empty. A repeating value
// renders comma-joined, with the null marker substituted per element.
func FormatValue(values []string, repeating bool) string {
	if !repeating {
		if len(values) == 0 || values[0] == "" {
			return NullMarker
		}
		return values[0]
	}
	if len(values) == 0 {
		return NullMarker
	}
	parts := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = NullMarker
		}
		parts[i] = v
	}
	return strings.Join(parts, ", ")
}
