package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// helpText lists every key binding, shown by the help overlay.
const helpText = `Navigation
  left/right, h/l   move cursor across entries
  up/down, j/k      move cursor
  enter, space      open group / toggle node selection
  b, alt+left       back in history
  f, alt+right      forward in history
  g                 jump to the starting group
  0-9               jump to a history position
  r                 refresh listing from the host
  esc               clear selection

Path
  p, /              type a path (relative or /absolute)

Other
  F1, ?             toggle this help
  q, ctrl+c         quit`

// HelpModel renders the key binding overlay.
type HelpModel struct {
	NoColor bool
}

// View renders the help overlay.
func (m HelpModel) View() string {
	titleStyle := lipgloss.NewStyle()
	keyStyle := lipgloss.NewStyle()
	if !m.NoColor {
		th := CurrentTheme()
		titleStyle = titleStyle.Foreground(th.TitleFG).Bold(true)
		keyStyle = keyStyle.Foreground(th.StatusColor)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, line := range strings.Split(helpText, "\n") {
		if line != "" && !strings.HasPrefix(line, " ") {
			b.WriteString(keyStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
