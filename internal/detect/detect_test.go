package detect

import (
	"testing"

	"github.com/dctmtools/dumpview/pkg/category"
)

func TestSniff_User(t *testing.T) {
	input := "user_name : Alice Admin\nuser_login_name : alice\nr_modify_date : 8/26/2026 09:15:02\n"
	if got := Sniff([]byte(input)); got != category.KindUser {
		t.Errorf("Sniff() = %v, want KindUser", got)
	}
}

func TestSniff_Group(t *testing.T) {
	input := "group_name : engineering\nusers_names[0] : alice\n[1] : bob\n"
	if got := Sniff([]byte(input)); got != category.KindGroup {
		t.Errorf("Sniff() = %v, want KindGroup", got)
	}
}

func TestSniff_GroupMarkerBeatsUserMarker(t *testing.T) {
	// A group dump can carry user-ish attributes; membership wins.
	input := "user_name : alice\ngroups_names[0] : staff\n"
	if got := Sniff([]byte(input)); got != category.KindGroup {
		t.Errorf("Sniff() = %v, want KindGroup", got)
	}
}

func TestSniff_Object(t *testing.T) {
	input := "object_name : Quarterly Report\nr_object_type : dm_document\n"
	if got := Sniff([]byte(input)); got != category.KindObject {
		t.Errorf("Sniff() = %v, want KindObject", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff(nil); got != category.KindObject {
		t.Errorf("Sniff(nil) = %v, want KindObject", got)
	}
}

func TestSniff_NoiseOnly(t *testing.T) {
	input := "API> dump,c,0900000180001234\n---\n"
	if got := Sniff([]byte(input)); got != category.KindObject {
		t.Errorf("Sniff() = %v, want KindObject", got)
	}
}
