package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dctmtools/dumpview/pkg/category"
)

// Constants for default values.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// FileConfig is the shape of .dumpview.yaml.
type FileConfig struct {
	Format  string `yaml:"format,omitempty"`
	Theme   string `yaml:"theme,omitempty"`
	NoColor bool   `yaml:"no_color"`
	Debug   bool   `yaml:"debug"`
	// Categories extends the built-in rule tables: entity kind -> group ->
	// exact attribute names.
	Categories map[string]map[string][]string `yaml:"categories,omitempty"`
}

// getConfigPath returns the path of the first config file found, or ""
// when none exists. The working directory wins over the user config dir.
func getConfigPath() string {
	local := ".dumpview.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	global := filepath.Join(userDir, "dumpview", "config.yaml")
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return ""
}

// LoadFile loads the YAML config file, or returns defaults when no file
// exists. A malformed file degrades to defaults with a warning on stderr.
func LoadFile() *FileConfig {
	cfg := &FileConfig{
		Format: DefaultFormat,
		Theme:  DefaultTheme,
	}

	path := getConfigPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg FileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	cfg.Debug = fileCfg.Debug
	cfg.Categories = fileCfg.Categories
	return cfg
}

// Tables builds categorization tables from the built-in defaults plus any
// category rules declared in the file. Unknown kind or group tokens are
// skipped with a warning rather than failing the whole config.
func (c *FileConfig) Tables() *category.Tables {
	tables := category.DefaultTables()
	for kindToken, groups := range c.Categories {
		kind, err := category.ParseEntityKind(kindToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v in config categories, skipping.\n", err)
			continue
		}
		for groupToken, names := range groups {
			group, err := category.ParseGroup(groupToken)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v in config categories for kind %s, skipping.\n", err, kind)
				continue
			}
			tables.Extend(kind, group, names...)
		}
	}
	return tables
}
