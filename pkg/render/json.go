package render

import (
	"encoding/json"

	"github.com/dctmtools/dumpview/pkg/view"
)

// JSON renders grouped attributes as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version  string         `json:"version"`
	Kind     string         `json:"kind"`
	Sections []view.Section `json:"sections"`
}

// Render formats all sections as JSON.
func (j *JSON) Render(kind string, sections []view.Section) string {
	out := jsonOutput{
		Version:  "1.0",
		Kind:     kind,
		Sections: sections,
	}
	if out.Sections == nil {
		out.Sections = []view.Section{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
