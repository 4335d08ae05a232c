package dump

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dctmtools/dumpview/pkg/category"
)

// MaxRepeatingIndex bounds the index a repeating occurrence may carry.
// The dump format declares no upper bound, so a hostile or corrupt input
// could otherwise force an arbitrarily large allocation. Occurrences with
// a larger index are dropped like any other unusable line.
const MaxRepeatingIndex = 4095

// accumulator folds the classified line stream into the ordered record
// list. The only cross-line state is the name of the most recent attribute
// line, which continuation lines attach to.
type accumulator struct {
	kind          category.EntityKind
	tables        *category.Tables
	byName        map[string]*Record
	order         []string // first-seen attribute order
	lastAttribute string
	dropped       int
}

func newAccumulator(tables *category.Tables, kind category.EntityKind) *accumulator {
	return &accumulator{
		kind:   kind,
		tables: tables,
		byName: make(map[string]*Record),
	}
}

func (a *accumulator) apply(ln Line) {
	switch ln.Kind {
	case Blank, Separator:
		// No data.
	case Unrecognized:
		a.dropped++
	case Attribute:
		a.lastAttribute = ln.Name
		a.merge(ln.Name, ln)
	case Continuation:
		if a.lastAttribute == "" {
			// Orphan continuation: nothing to attach it to.
			a.dropped++
			return
		}
		a.merge(a.lastAttribute, ln)
	}
}

// merge applies one occurrence of name to the record set, creating or
// updating the record per the repeating-value rules. Malformed occurrences
// degrade by being dropped; merge never fails.
func (a *accumulator) merge(name string, ln Line) {
	if ln.Index > MaxRepeatingIndex {
		a.dropped++
		return
	}

	rec, ok := a.byName[name]
	if !ok {
		rec = &Record{
			Name:         name,
			DeclaredType: DefaultType,
			Group:        a.tables.Categorize(a.kind, name),
		}
		if ln.DeclaredType != "" {
			rec.DeclaredType = ln.DeclaredType
		}
		if ln.Index >= 0 {
			rec.Repeating = true
			rec.growTo(ln.Index)
			rec.Values[ln.Index] = ln.RawValue
		} else {
			rec.Values = []string{ln.RawValue}
		}
		a.byName[name] = rec
		a.order = append(a.order, name)
		return
	}

	// A type label on a later occurrence only fills in the default.
	if ln.DeclaredType != "" && rec.DeclaredType == DefaultType {
		rec.DeclaredType = ln.DeclaredType
	}

	if ln.Index >= 0 {
		// A second indexed occurrence promotes a scalar in place: its
		// current value becomes element zero.
		rec.Repeating = true
		rec.growTo(ln.Index)
		rec.Values[ln.Index] = ln.RawValue
		return
	}

	// Duplicate non-indexed occurrence: last value wins. Not expected in
	// well-formed dumps, but tolerated.
	if len(rec.Values) == 0 {
		rec.Values = []string{ln.RawValue}
	} else {
		rec.Values[0] = ln.RawValue
	}
}

func (a *accumulator) records() []Record {
	out := make([]Record, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.byName[name])
	}
	return out
}

// Parse parses dump text into ordered attribute records using the built-in
// categorization tables. It never fails: malformed lines are dropped and an
// empty result is a valid outcome.
func Parse(kind category.EntityKind, data []byte) []Record {
	records, _, _ := ParseReaderWith(category.DefaultTables(), kind, bytes.NewReader(data))
	return records
}

// ParseWith is Parse with caller-supplied categorization tables.
func ParseWith(tables *category.Tables, kind category.EntityKind, data []byte) []Record {
	records, _, _ := ParseReaderWith(tables, kind, bytes.NewReader(data))
	return records
}

// ParseReader parses dump text from r line by line. It returns the records,
// the number of lines dropped as unusable, and any reader error.
func ParseReader(kind category.EntityKind, r io.Reader) ([]Record, int, error) {
	return ParseReaderWith(category.DefaultTables(), kind, r)
}

// ParseReaderWith is ParseReader with caller-supplied categorization tables.
func ParseReaderWith(tables *category.Tables, kind category.EntityKind, r io.Reader) ([]Record, int, error) {
	acc := newAccumulator(tables, kind)

	scanner := bufio.NewScanner(r)
	// Allow long value lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		acc.apply(ClassifyLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, acc.dropped, fmt.Errorf("scanning dump text: %w", err)
	}
	return acc.records(), acc.dropped, nil
}
