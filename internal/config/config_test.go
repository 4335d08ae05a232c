package config

import (
	"os"
	"testing"

	"github.com/dctmtools/dumpview/pkg/category"
)

// chdirTemp is a stand-in for t.Chdir(t.TempDir()), which needs Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeLocalConfig(t *testing.T, content string) {
	t.Helper()
	chdirTemp(t)
	if err := os.WriteFile(".dumpview.yaml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	chdirTemp(t)
	cfg := LoadFile()
	if cfg.Format != DefaultFormat || cfg.Theme != DefaultTheme {
		t.Errorf("defaults = %q/%q", cfg.Format, cfg.Theme)
	}
}

func TestLoadFile_ReadsLocalFile(t *testing.T) {
	writeLocalConfig(t, "theme: orca\nformat: json\nno_color: true\n")
	cfg := LoadFile()
	if cfg.Theme != "orca" {
		t.Errorf("theme = %q, want orca", cfg.Theme)
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if !cfg.NoColor {
		t.Error("no_color not loaded")
	}
}

func TestLoadFile_MalformedFallsBackToDefaults(t *testing.T) {
	writeLocalConfig(t, "theme: [unclosed\n")
	cfg := LoadFile()
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme = %q, want default after malformed file", cfg.Theme)
	}
}

func TestFileConfig_TablesExtension(t *testing.T) {
	writeLocalConfig(t, `
categories:
  user:
    preferences: [email_signature]
  object:
    application: [project_code]
`)
	tables := LoadFile().Tables()
	if got := tables.Categorize(category.KindUser, "email_signature"); got != category.GroupPreferences {
		t.Errorf("email_signature -> %v, want preferences", got)
	}
	if got := tables.Categorize(category.KindObject, "project_code"); got != category.GroupApplication {
		t.Errorf("project_code -> %v, want application", got)
	}
	// Built-ins still apply.
	if got := tables.Categorize(category.KindUser, "user_name"); got != category.GroupIdentity {
		t.Errorf("user_name -> %v, want identity", got)
	}
}

func TestFileConfig_TablesSkipsUnknownTokens(t *testing.T) {
	writeLocalConfig(t, `
categories:
  cabinet:
    identity: [x]
  user:
    nonsense: [y]
    access: [badge_id]
`)
	tables := LoadFile().Tables()
	if got := tables.Categorize(category.KindUser, "badge_id"); got != category.GroupAccess {
		t.Errorf("valid rule dropped alongside invalid ones: badge_id -> %v", got)
	}
}
