package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusModel is the status bar. It shows the last inline error, or the
// cursor position and current selection when there is none.
type StatusModel struct {
	ErrMsg      string
	CursorIndex int // 1-based
	TotalRows   int
	Selected    string
	NoColor     bool
	Width       int
}

// NewStatusModel creates a status bar with a default width.
func NewStatusModel() StatusModel {
	return StatusModel{Width: 92}
}

// SetWidth sets the width of the status bar.
func (m *StatusModel) SetWidth(width int) {
	m.Width = width
}

// View renders the status bar padded to the window width.
func (m StatusModel) View() string {
	style := lipgloss.NewStyle()
	message := ""

	switch {
	case m.ErrMsg != "":
		if !m.NoColor {
			style = style.Foreground(CurrentTheme().StatusError)
		}
		message = m.ErrMsg
	default:
		if !m.NoColor {
			style = style.Foreground(CurrentTheme().StatusColor)
		}
		var parts []string
		if m.TotalRows > 0 && m.CursorIndex > 0 {
			parts = append(parts, fmt.Sprintf("%d/%d", m.CursorIndex, m.TotalRows))
		}
		if m.Selected != "" {
			parts = append(parts, "selected: "+m.Selected)
		}
		message = strings.Join(parts, "  ")
	}

	target := 92
	if m.Width > 0 {
		target = m.Width
	}
	if len(message) > target && target > 3 {
		message = message[:target-3] + "..."
	}
	if len(message) < target {
		message += strings.Repeat(" ", target-len(message))
	}
	return style.Render(message)
}
