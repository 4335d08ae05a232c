package dump

import "github.com/dctmtools/dumpview/pkg/category"

// DefaultType is assumed when a dump line carries no type label.
const DefaultType = "string"

// Record is one parsed attribute. A dump produces at most one Record per
// attribute name; repeated occurrences merge into the same Record.
type Record struct {
	Name         string         `json:"name"`
	DeclaredType string         `json:"declaredType"`
	Values       []string       `json:"values"`
	Repeating    bool           `json:"repeating"`
	Group        category.Group `json:"group"`
}

// Value returns the scalar value, or the first element of a repeating one.
func (r *Record) Value() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// growTo pads r.Values with empty strings so index idx is addressable.
// The value sequence never has holes, even when indices arrive out of order.
func (r *Record) growTo(idx int) {
	for len(r.Values) <= idx {
		r.Values = append(r.Values, "")
	}
}
