// Package config handles configuration loading and merging for dumpview.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to
// lowest priority):
//
//  1. CLI flags (-format, -theme, -no-color, -kind, -debug)
//  2. Environment variables (DUMPVIEW_FORMAT, DUMPVIEW_THEME, NO_COLOR)
//  3. YAML config file (.dumpview.yaml in the working directory or
//     ~/.config/dumpview/config.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any
// lower-priority values.
//
// # Category Rules
//
// The YAML file may extend the built-in categorization rule tables with
// exact-name rules per entity kind:
//
//	categories:
//	  user:
//	    preferences: [email_signature, locale_pref]
//	  object:
//	    application: [project_code]
//
// Config-supplied rules are consulted before the built-in ones.
package config
