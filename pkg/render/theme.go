package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme. Pass, Fail, Pending and
// Measure mark test results; Error and Warning prefix diagnostics.
type ThemeIcons struct {
	Pass    string
	Fail    string
	Pending string
	Measure string
	Error   string
	Warning string
}

var unicodeTestIcons = ThemeIcons{Pass: "✓", Fail: "✗", Pending: "○", Measure: "◷"}

// DefaultTheme returns a vibrant color theme bound to r. A nil r uses the
// lipgloss default renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	r = orDefault(r)
	icons := unicodeTestIcons
	icons.Error, icons.Warning = "❌", "⚠️"
	return Theme{
		Name:    "default",
		Primary: r.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: r.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    r.NewStyle().Bold(true),
		Icons:   icons,
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme(r *lipgloss.Renderer) Theme {
	r = orDefault(r)
	icons := unicodeTestIcons
	icons.Error, icons.Warning = "✖", "!"
	return Theme{
		Name:    "orca",
		Primary: r.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Success: r.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning: r.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   r.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    r.NewStyle().Bold(true),
		Icons:   icons,
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme(r *lipgloss.Renderer) Theme {
	r = orDefault(r)
	icons := unicodeTestIcons
	icons.Error, icons.Warning = "✖", "⚠"
	return Theme{
		Name:    "mono",
		Primary: r.NewStyle(),
		Success: r.NewStyle(),
		Warning: r.NewStyle(),
		Error:   r.NewStyle(),
		Muted:   r.NewStyle(),
		Bold:    r.NewStyle().Bold(true),
		Icons:   icons,
	}
}

// ASCIITheme keeps the default colors but uses only ASCII icons, for
// terminals without good glyph coverage.
func ASCIITheme(r *lipgloss.Renderer) Theme {
	t := DefaultTheme(r)
	t.Name = "ascii"
	t.Icons = ThemeIcons{Pass: "+", Fail: "x", Pending: "-", Measure: "~", Error: "[x]", Warning: "[!]"}
	return t
}

// plainTheme has no styling at all. Diagnostics get the textual prefixes
// compilers use, so plain output stays greppable.
func plainTheme() Theme {
	icons := unicodeTestIcons
	icons.Error, icons.Warning = "error:", "warning:"
	return Theme{Name: "plain", Icons: icons}
}

var themes = map[string]func(*lipgloss.Renderer) Theme{
	"default": DefaultTheme,
	"orca":    OrcaTheme,
	"mono":    MonoTheme,
	"ascii":   ASCIITheme,
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	if mk, ok := themes[name]; ok {
		return mk(r)
	}
	return DefaultTheme(r)
}

// ThemeNames lists the known theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func orDefault(r *lipgloss.Renderer) *lipgloss.Renderer {
	if r == nil {
		return lipgloss.DefaultRenderer()
	}
	return r
}
