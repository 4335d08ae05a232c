package dump

import "testing"

func TestClassifyLine_Blank(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		if got := ClassifyLine(s); got.Kind != Blank {
			t.Errorf("ClassifyLine(%q).Kind = %v, want Blank", s, got.Kind)
		}
	}
}

func TestClassifyLine_Separator(t *testing.T) {
	for _, s := range []string{"---", "-----------------", "  --- section ---"} {
		if got := ClassifyLine(s); got.Kind != Separator {
			t.Errorf("ClassifyLine(%q).Kind = %v, want Separator", s, got.Kind)
		}
	}
}

func TestClassifyLine_Attribute(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{
			name: "plain scalar",
			in:   "object_name : test doc",
			want: Line{Kind: Attribute, Name: "object_name", Index: -1, RawValue: "test doc"},
		},
		{
			name: "equals separator",
			in:   "object_name = test doc",
			want: Line{Kind: Attribute, Name: "object_name", Index: -1, RawValue: "test doc"},
		},
		{
			name: "indexed occurrence",
			in:   "keywords[0] : alpha",
			want: Line{Kind: Attribute, Name: "keywords", Index: 0, RawValue: "alpha"},
		},
		{
			name: "typed scalar",
			in:   "r_object_id [ID] : 0900000180001234",
			want: Line{Kind: Attribute, Name: "r_object_id", Index: -1, DeclaredType: "ID", RawValue: "0900000180001234"},
		},
		{
			name: "indexed and typed",
			in:   "authors[2] [string] : carol",
			want: Line{Kind: Attribute, Name: "authors", Index: 2, DeclaredType: "string", RawValue: "carol"},
		},
		{
			name: "leading padding",
			in:   "  title                        : quarterly report",
			want: Line{Kind: Attribute, Name: "title", Index: -1, RawValue: "quarterly report"},
		},
		{
			name: "empty value",
			in:   "a_content_type :",
			want: Line{Kind: Attribute, Name: "a_content_type", Index: -1, RawValue: ""},
		},
		{
			name: "value containing colon",
			in:   "r_modify_date : 8/26/2026 16:04:11",
			want: Line{Kind: Attribute, Name: "r_modify_date", Index: -1, RawValue: "8/26/2026 16:04:11"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyLine(tt.in); got != tt.want {
				t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyLine_Continuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{
			name: "plain",
			in:   "[1] : beta",
			want: Line{Kind: Continuation, Index: 1, RawValue: "beta"},
		},
		{
			name: "leading whitespace",
			in:   "                     [2] : gamma",
			want: Line{Kind: Continuation, Index: 2, RawValue: "gamma"},
		},
		{
			name: "typed",
			in:   "[3] [string] : delta",
			want: Line{Kind: Continuation, Index: 3, DeclaredType: "string", RawValue: "delta"},
		},
		{
			name: "equals separator",
			in:   "[0] = epsilon",
			want: Line{Kind: Continuation, Index: 0, RawValue: "epsilon"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyLine(tt.in); got != tt.want {
				t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// A continuation line is syntactically a subset of the attribute grammar,
// so it must never come back as an attribute named "".
func TestClassifyLine_ContinuationNotAttribute(t *testing.T) {
	got := ClassifyLine("[1] : value")
	if got.Kind != Continuation {
		t.Fatalf("ClassifyLine classified a bare-bracket line as %v", got.Kind)
	}
	if got.Name != "" {
		t.Errorf("continuation carried a name: %q", got.Name)
	}
}

func TestClassifyLine_Unrecognized(t *testing.T) {
	for _, s := range []string{
		"just some prose",
		"API> dump,c,0900000180001234",
		"[notanumber] : x",
		"[999999999999999999999999] : overflow",
	} {
		if got := ClassifyLine(s); got.Kind != Unrecognized {
			t.Errorf("ClassifyLine(%q).Kind = %v, want Unrecognized", s, got.Kind)
		}
	}
}
