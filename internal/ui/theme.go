package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme defines the palette used across the UI. Host apps can supply
// their own theme. The three button classes (controls, groups, nodes)
// deliberately get distinct backgrounds so the entry kinds are
// distinguishable at a glance.
type Theme struct {
	ControlFG  color.Color // navigation control buttons
	ControlBG  color.Color
	DisabledFG color.Color // controls whose operation is unavailable
	DisabledBG color.Color

	GroupFG color.Color // group buttons
	GroupBG color.Color
	NodeFG  color.Color // node buttons
	NodeBG  color.Color

	SelectedFG color.Color // the chosen node
	SelectedBG color.Color
	CursorFG   color.Color // entry under the cursor
	CursorBG   color.Color

	CrumbFG        color.Color // breadcrumb entries
	CrumbBG        color.Color
	CrumbCurrentFG color.Color // breadcrumb entry under the history pointer
	CrumbCurrentBG color.Color

	TitleFG     color.Color
	TitleBG     color.Color
	StatusColor color.Color
	StatusError color.Color
	FooterFG    color.Color
	FooterBG    color.Color
	InputFG     color.Color
	InputBG     color.Color
}

func darkTheme() Theme {
	return Theme{
		ControlFG:  lipgloss.Color("231"), // white on red, the classic danger control
		ControlBG:  lipgloss.Color("160"),
		DisabledFG: lipgloss.Color("245"),
		DisabledBG: lipgloss.Color("237"),

		GroupFG: lipgloss.Color("231"), // white on blue
		GroupBG: lipgloss.Color("27"),
		NodeFG:  lipgloss.Color("252"), // light grey on charcoal
		NodeBG:  lipgloss.Color("240"),

		SelectedFG: lipgloss.Color("231"), // white on pink for the chosen node
		SelectedBG: lipgloss.Color("205"),
		CursorFG:   lipgloss.Color("16"),
		CursorBG:   lipgloss.Color("220"),

		CrumbFG:        lipgloss.Color("117"),
		CrumbBG:        lipgloss.Color("236"),
		CrumbCurrentFG: lipgloss.Color("16"),
		CrumbCurrentBG: lipgloss.Color("117"),

		TitleFG:     lipgloss.Color("81"),
		TitleBG:     lipgloss.Color("236"),
		StatusColor: lipgloss.Color("81"),
		StatusError: lipgloss.Color("203"),
		FooterFG:    lipgloss.Color("244"),
		FooterBG:    lipgloss.Color("236"),
		InputFG:     lipgloss.Color("246"),
		InputBG:     lipgloss.Color("236"),
	}
}

func lightTheme() Theme {
	return Theme{
		ControlFG:  lipgloss.Color("231"),
		ControlBG:  lipgloss.Color("124"),
		DisabledFG: lipgloss.Color("245"),
		DisabledBG: lipgloss.Color("254"),

		GroupFG: lipgloss.Color("231"),
		GroupBG: lipgloss.Color("26"),
		NodeFG:  lipgloss.Color("236"),
		NodeBG:  lipgloss.Color("252"),

		SelectedFG: lipgloss.Color("231"),
		SelectedBG: lipgloss.Color("162"),
		CursorFG:   lipgloss.Color("16"),
		CursorBG:   lipgloss.Color("214"),

		CrumbFG:        lipgloss.Color("26"),
		CrumbBG:        lipgloss.Color("254"),
		CrumbCurrentFG: lipgloss.Color("254"),
		CrumbCurrentBG: lipgloss.Color("26"),

		TitleFG:     lipgloss.Color("26"),
		TitleBG:     lipgloss.Color("254"),
		StatusColor: lipgloss.Color("26"),
		StatusError: lipgloss.Color("124"),
		FooterFG:    lipgloss.Color("240"),
		FooterBG:    lipgloss.Color("254"),
		InputFG:     lipgloss.Color("236"),
		InputBG:     lipgloss.Color("254"),
	}
}

// ThemePresets maps theme names to built-in palettes.
var ThemePresets = map[string]Theme{
	"dark":  darkTheme(),
	"light": lightTheme(),
}

var currentTheme = darkTheme()

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme overrides the active theme.
func SetTheme(t Theme) {
	currentTheme = t
}

// SetThemeByName activates a built-in preset by name.
func SetThemeByName(name string) error {
	t, ok := ThemePresets[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(AvailableThemeNames(), ", "))
	}
	SetTheme(t)
	return nil
}

// AvailableThemeNames returns the preset names, sorted.
func AvailableThemeNames() []string {
	names := make([]string, 0, len(ThemePresets))
	for name := range ThemePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
