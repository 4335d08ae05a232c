package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dctmtools/dumpview/pkg/dump"
	"github.com/dctmtools/dumpview/pkg/view"
)

// Repeating values longer than this are listed one element per line
// instead of comma-joined.
const inlineValueLimit = 4

// Terminal renders grouped attributes as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all sections for terminal display.
func (t *Terminal) Render(kind string, sections []view.Section) string {
	if len(sections) == 0 {
		return t.theme.Muted.Render("no attributes") + "\n"
	}

	// cases.Title is not safe for concurrent use; one caser per call.
	title := cases.Title(language.English)

	var out []string
	for _, sec := range sections {
		var sb strings.Builder
		sb.WriteString(t.theme.Heading.Render(title.String(string(sec.Group))))
		sb.WriteString("\n")

		nameCol := 0
		for _, rec := range sec.Records {
			if w := runewidth.StringWidth(rec.Name); w > nameCol {
				nameCol = w
			}
		}

		for _, rec := range sec.Records {
			t.renderRecord(&sb, rec, nameCol)
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (t *Terminal) renderRecord(sb *strings.Builder, rec dump.Record, nameCol int) {
	pad := strings.Repeat(" ", nameCol-runewidth.StringWidth(rec.Name))
	sb.WriteString("  ")
	sb.WriteString(t.theme.Attr.Render(rec.Name))
	sb.WriteString(pad)
	sb.WriteString("  ")
	sb.WriteString(t.theme.Type.Render("[" + rec.DeclaredType + "]"))
	sb.WriteString("  ")

	if rec.Repeating && len(rec.Values) > inlineValueLimit {
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%s %d values", t.theme.Icons.Repeat, len(rec.Values))))
		sb.WriteString("\n")
		indent := strings.Repeat(" ", nameCol+4)
		for i, v := range rec.Values {
			sb.WriteString(indent)
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("[%d] ", i)))
			sb.WriteString(t.renderScalar(v))
			sb.WriteString("\n")
		}
		return
	}

	text := FormatValue(rec.Values, rec.Repeating)
	if text == NullMarker {
		sb.WriteString(t.theme.Null.Render(NullMarker))
	} else {
		sb.WriteString(text)
	}
	sb.WriteString("\n")
}

func (t *Terminal) renderScalar(v string) string {
	if v == "" {
		return t.theme.Null.Render(NullMarker)
	}
	return v
}
