// Package dump parses the line-oriented attribute dump text emitted by a
// repository server for an object, user or group into a typed, ordered
// attribute model.
package dump

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies one line of dump text.
type LineKind int

const (
	// Blank is an empty or whitespace-only line.
	Blank LineKind = iota
	// Separator is a section delimiter line ("---..."); carries no data.
	Separator
	// Continuation supplies another indexed value for the most recently
	// named attribute, without repeating the attribute name.
	Continuation
	// Attribute names an attribute and supplies a value, optionally with
	// a repeating index and a declared type label.
	Attribute
	// Unrecognized lines carry no usable data and are dropped.
	Unrecognized
)

// Line is the structured form of one classified dump line.
type Line struct {
	Kind         LineKind
	Name         string // attribute name; empty for Continuation
	Index        int    // repeating index, -1 when absent
	DeclaredType string // type label from the dump, "" when absent
	RawValue     string // value text after the separator, verbatim
}

// Continuation must be matched before the attribute grammar: a name-less
// leading bracket would otherwise parse as an attribute named "".
var (
	continuationRe = regexp.MustCompile(`^\s*\[(\d+)\](?: +\[([A-Za-z]\w*)\])?\s*[:=] ?(.*)$`)
	attributeRe    = regexp.MustCompile(`^\s*([^\s\[\]:=]+)(?:\[(\d+)\])?(?: +\[([A-Za-z]\w*)\])?\s*[:=] ?(.*)$`)
)

// ClassifyLine classifies a single line of dump text. The input must
// already be stripped of its line terminator.
func ClassifyLine(s string) Line {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Line{Kind: Blank, Index: -1}
	}
	if strings.HasPrefix(trimmed, "---") {
		return Line{Kind: Separator, Index: -1}
	}
	if m := continuationRe.FindStringSubmatch(s); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit run too long for an int; not a usable index.
			return Line{Kind: Unrecognized, Index: -1}
		}
		return Line{
			Kind:         Continuation,
			Index:        idx,
			DeclaredType: m[2],
			RawValue:     m[3],
		}
	}
	if m := attributeRe.FindStringSubmatch(s); m != nil {
		idx := -1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return Line{Kind: Unrecognized, Index: -1}
			}
			idx = n
		}
		return Line{
			Kind:         Attribute,
			Name:         m[1],
			Index:        idx,
			DeclaredType: m[3],
			RawValue:     m[4],
		}
	}
	return Line{Kind: Unrecognized, Index: -1}
}
