package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// FooterModel shows the key bindings line at the bottom of the screen.
type FooterModel struct {
	NoColor bool
	Width   int
}

// NewFooterModel creates a new footer model.
func NewFooterModel() FooterModel {
	return FooterModel{Width: 92}
}

// SetWidth sets the width of the footer.
func (m *FooterModel) SetWidth(width int) {
	m.Width = width
}

// View renders the footer with key hints.
func (m FooterModel) View() string {
	keyStyle := lipgloss.NewStyle()
	if !m.NoColor {
		keyStyle = keyStyle.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240")).Bold(true)
	}

	hints := []struct{ key, label string }{
		{"enter", "open"},
		{"b/f", "back/fwd"},
		{"g", "home"},
		{"p", "path"},
		{"r", "refresh"},
		{"esc", "clear"},
		{"F1", "help"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(hints)*2)
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.key), h.label)
	}
	return strings.Join(parts, " ")
}
