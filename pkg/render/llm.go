package render

import (
	"fmt"
	"strings"

	"github.com/dctmtools/dumpview/pkg/view"
)

// LLM renders grouped attributes as terse plain text optimized for AI
// consumption. Zero ANSI codes, deterministic ordering.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all sections as plain text.
func (l *LLM) Render(kind string, sections []view.Section) string {
	var sb strings.Builder

	total := 0
	for _, sec := range sections {
		total += len(sec.Records)
	}
	sb.WriteString(fmt.Sprintf("KIND: %s ATTRS: %d\n", kind, total))

	for _, sec := range sections {
		sb.WriteString("\n" + string(sec.Group) + ":\n")
		for _, rec := range sec.Records {
			sb.WriteString("  " + rec.Name)
			if rec.DeclaredType != "string" {
				sb.WriteString(" [" + rec.DeclaredType + "]")
			}
			sb.WriteString(": " + FormatValue(rec.Values, rec.Repeating) + "\n")
		}
	}
	return sb.String()
}
