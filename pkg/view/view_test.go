package view

import (
	"reflect"
	"testing"

	"github.com/dctmtools/dumpview/pkg/category"
	"github.com/dctmtools/dumpview/pkg/dump"
)

func rec(name string, group category.Group) dump.Record {
	return dump.Record{
		Name:         name,
		DeclaredType: dump.DefaultType,
		Values:       []string{"v"},
		Group:        group,
	}
}

func TestCompose_OrdersGroupsPerKind(t *testing.T) {
	records := []dump.Record{
		rec("r_object_id", category.GroupSystem),
		rec("object_name", category.GroupStandard),
		rec("a_content_type", category.GroupApplication),
	}
	sections := Compose(category.KindObject, records)
	var groups []category.Group
	for _, s := range sections {
		groups = append(groups, s.Group)
	}
	want := []category.Group{category.GroupStandard, category.GroupApplication, category.GroupSystem}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %v, want %v", groups, want)
	}
}

func TestCompose_SortsRecordsByName(t *testing.T) {
	records := []dump.Record{
		rec("title", category.GroupStandard),
		rec("authors", category.GroupStandard),
		rec("object_name", category.GroupStandard),
	}
	sections := Compose(category.KindObject, records)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	var names []string
	for _, r := range sections[0].Records {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"authors", "object_name", "title"}) {
		t.Errorf("names = %v", names)
	}
}

func TestCompose_OmitsEmptyGroups(t *testing.T) {
	records := []dump.Record{rec("user_name", category.GroupIdentity)}
	sections := Compose(category.KindUser, records)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Group != category.GroupIdentity {
		t.Errorf("section group = %v", sections[0].Group)
	}
}

func TestCompose_MembersSurfaceFirstForGroups(t *testing.T) {
	records := []dump.Record{
		rec("r_modify_date", category.GroupSystem),
		rec("users_names", category.GroupMembers),
		rec("group_name", category.GroupIdentity),
	}
	sections := Compose(category.KindGroup, records)
	if sections[0].Group != category.GroupMembers {
		t.Errorf("first section = %v, want members", sections[0].Group)
	}
	if last := sections[len(sections)-1].Group; last != category.GroupSystem {
		t.Errorf("last section = %v, want system", last)
	}
}

func TestCompose_UndeclaredGroupNotLost(t *testing.T) {
	// An object-kind composition of records that carry user-kind groups
	// must still surface every record.
	records := []dump.Record{
		rec("user_name", category.GroupIdentity),
		rec("object_name", category.GroupStandard),
	}
	sections := Compose(category.KindObject, records)
	total := 0
	for _, s := range sections {
		total += len(s.Records)
	}
	if total != 2 {
		t.Errorf("composed %d records, want 2", total)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	records := []dump.Record{
		rec("b", category.GroupStandard),
		rec("a", category.GroupStandard),
		rec("r_x", category.GroupSystem),
	}
	first := Compose(category.KindObject, records)
	second := Compose(category.KindObject, records)
	if !reflect.DeepEqual(first, second) {
		t.Error("composing the same records twice produced different output")
	}
}

func TestCompose_Empty(t *testing.T) {
	if sections := Compose(category.KindObject, nil); len(sections) != 0 {
		t.Errorf("got %d sections, want 0", len(sections))
	}
}
