package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Heading lipgloss.Style
	Attr    lipgloss.Style
	Type    lipgloss.Style
	Null    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Bullet string
	Repeat string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Attr:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),           // near-white
		Type:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Null:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Bullet: "·",
			Repeat: "≡",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Attr:    lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
		Type:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Null:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Bullet: "·",
			Repeat: "=",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Heading: lipgloss.NewStyle().Bold(true),
		Attr:    lipgloss.NewStyle(),
		Type:    lipgloss.NewStyle(),
		Null:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Bullet: "-",
			Repeat: "=",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
