// Package view composes flat attribute records into the grouped,
// display-ordered form consumed by renderers.
package view

import (
	"sort"

	"github.com/dctmtools/dumpview/pkg/category"
	"github.com/dctmtools/dumpview/pkg/dump"
)

// Section is one display group and its attribute records.
type Section struct {
	Group   category.Group `json:"group"`
	Records []dump.Record  `json:"records"`
}

// Compose buckets records by group and orders the buckets per the entity
// kind's declared display order. Records within a section are sorted by
// name (ordinal). Empty groups are omitted. A group assigned to a record
// but absent from the declared order is appended after the declared ones,
// so no record is ever silently lost.
func Compose(kind category.EntityKind, records []dump.Record) []Section {
	buckets := make(map[category.Group][]dump.Record)
	var extra []category.Group
	declared := category.DisplayOrder(kind)
	inOrder := make(map[category.Group]bool, len(declared))
	for _, g := range declared {
		inOrder[g] = true
	}

	for _, rec := range records {
		if _, seen := buckets[rec.Group]; !seen && !inOrder[rec.Group] {
			extra = append(extra, rec.Group)
		}
		buckets[rec.Group] = append(buckets[rec.Group], rec)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	var sections []Section
	for _, g := range append(declared, extra...) {
		recs := buckets[g]
		if len(recs) == 0 {
			continue
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
		sections = append(sections, Section{Group: g, Records: recs})
	}
	return sections
}
