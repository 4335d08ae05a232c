package config

import (
	"os"
	"strconv"

	"github.com/dctmtools/dumpview/pkg/category"
)

// Flags holds the values of command-line flags, plus whether each one was
// explicitly set by the user.
type Flags struct {
	Format  string
	Theme   string
	NoColor bool
	Debug   bool

	FormatSet  bool
	ThemeSet   bool
	NoColorSet bool
	DebugSet   bool
}

// Resolved holds the final configuration after applying all priority
// rules, with per-value source metadata for -debug diagnostics.
type Resolved struct {
	Format  string
	Theme   string
	NoColor bool
	Debug   bool
	Tables  *category.Tables

	FormatSource  string // "cli", "env", "file", "default"
	ThemeSource   string
	NoColorSource string
}

// Resolve merges CLI flags, environment variables, the config file and
// defaults, in that priority order.
func Resolve(flags Flags) *Resolved {
	fileCfg := LoadFile()

	resolved := &Resolved{
		Format:        fileCfg.Format,
		Theme:         fileCfg.Theme,
		NoColor:       fileCfg.NoColor,
		Debug:         fileCfg.Debug,
		Tables:        fileCfg.Tables(),
		FormatSource:  "file",
		ThemeSource:   "file",
		NoColorSource: "file",
	}
	if getConfigPath() == "" {
		resolved.FormatSource = "default"
		resolved.ThemeSource = "default"
		resolved.NoColorSource = "default"
	}

	// Environment overrides file.
	if v := os.Getenv("DUMPVIEW_FORMAT"); v != "" {
		resolved.Format = v
		resolved.FormatSource = "env"
	}
	if v := os.Getenv("DUMPVIEW_THEME"); v != "" {
		resolved.Theme = v
		resolved.ThemeSource = "env"
	}
	if envBool("DUMPVIEW_NO_COLOR") || envBool("NO_COLOR") {
		resolved.NoColor = true
		resolved.NoColorSource = "env"
	}
	if os.Getenv("DUMPVIEW_DEBUG") != "" {
		resolved.Debug = true
	}

	// CLI flags win over everything.
	if flags.FormatSet {
		resolved.Format = flags.Format
		resolved.FormatSource = "cli"
	}
	if flags.ThemeSet {
		resolved.Theme = flags.Theme
		resolved.ThemeSource = "cli"
	}
	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = "cli"
	}
	if flags.DebugSet {
		resolved.Debug = flags.Debug
	}

	if resolved.NoColor {
		resolved.Theme = "mono"
	}
	return resolved
}

// envBool reports whether an environment variable is set to a truthy
// value. NO_COLOR is conventionally truthy when set at all.
func envBool(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}
