package ui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/simx/internal/browser"
	"github.com/oakwood-commons/simx/internal/formatter"
)

// payloadPaneLines caps the payload pane height when the window height is
// unknown.
const payloadPaneLines = 12

// BrowserView is the main child model: the control bar, the breadcrumb
// bar, the wrapped group and node button rows, and the payload pane of
// the selected node. The cursor runs across groups first, then nodes.
type BrowserView struct {
	Browser *browser.Browser
	Cursor  int
	Scroll  int
	Width   int
	Height  int
	NoColor bool
}

// NewBrowserView wraps a browser in a view sized to defaults.
func NewBrowserView(b *browser.Browser) BrowserView {
	return BrowserView{Browser: b, Width: 92, Height: 24}
}

// SetSize updates the layout dimensions.
func (m *BrowserView) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

func (m *BrowserView) entryCount() int {
	return len(m.Browser.Groups()) + len(m.Browser.Nodes())
}

// EntryAt returns the entry name at a cursor position and whether it is
// a group.
func (m *BrowserView) EntryAt(i int) (string, bool) {
	groups := m.Browser.Groups()
	if i < len(groups) {
		return groups[i], true
	}
	nodes := m.Browser.Nodes()
	i -= len(groups)
	if i < len(nodes) {
		return nodes[i], false
	}
	return "", false
}

func (m *BrowserView) clampCursor() {
	if max := m.entryCount() - 1; m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// MoveCursor shifts the cursor, clamped to the entry list.
func (m *BrowserView) MoveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}

// Activate opens the entry under the cursor: groups are entered, nodes
// are selection-toggled.
func (m *BrowserView) Activate(ctx context.Context) {
	name, isGroup := m.EntryAt(m.Cursor)
	if name == "" {
		return
	}
	if isGroup {
		if m.Browser.Enter(name) {
			m.Cursor = 0
		}
	} else {
		m.Browser.Select(ctx, name)
		m.Scroll = 0
	}
	m.clampCursor()
}

// Update handles key input for browse mode.
func (m BrowserView) Update(msg tea.Msg) (BrowserView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h", "up", "k":
		m.MoveCursor(-1)
	case "right", "l", "down", "j":
		m.MoveCursor(1)
	case "enter", "space":
		m.Activate(context.Background())
	case "b", "alt+left":
		if m.Browser.Back() {
			m.Cursor = 0
		}
	case "f", "alt+right":
		if m.Browser.Forward() {
			m.Cursor = 0
		}
	case "g":
		if m.Browser.Home() {
			m.Cursor = 0
		}
	case "r":
		m.Browser.Refresh()
		m.clampCursor()
	case "esc":
		m.Browser.ClearSelection()
	case "pgdown":
		m.Scroll++
	case "pgup":
		if m.Scroll > 0 {
			m.Scroll--
		}
	default:
		if s := key.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			if m.Browser.JumpTo(int(s[0] - '0')) {
				m.Cursor = 0
			}
		}
	}
	return m, nil
}

// View renders the component.
func (m BrowserView) View() string {
	var sections []string
	sections = append(sections, m.controlBar())
	sections = append(sections, m.breadcrumbBar())
	if row := m.groupRow(); row != "" {
		sections = append(sections, row)
	}
	if row := m.nodeRow(); row != "" {
		sections = append(sections, row)
	}
	if pane := m.payloadPane(); pane != "" {
		sections = append(sections, pane)
	}
	return strings.Join(sections, "\n")
}

func (m BrowserView) controlBar() string {
	th := CurrentTheme()
	enabledStyle := lipgloss.NewStyle().Foreground(th.ControlFG).Background(th.ControlBG).Bold(true)
	disabledStyle := lipgloss.NewStyle().Foreground(th.DisabledFG).Background(th.DisabledBG)

	controls := []struct {
		label   string
		enabled bool
	}{
		{"◀ back", m.Browser.CanBack()},
		{"▶ forward", m.Browser.CanForward()},
		{"⟳ refresh", true},
		{"⌂ home", !m.Browser.Fixed()},
	}

	buttons := make([]button, 0, len(controls))
	for _, c := range controls {
		label := "[" + c.label + "]"
		style := enabledStyle
		if !c.enabled {
			label = "(" + c.label + ")"
			style = disabledStyle
		}
		buttons = append(buttons, makeButton(label, style, m.NoColor))
	}
	return wrapButtons(buttons, m.Width)
}

func (m BrowserView) breadcrumbBar() string {
	th := CurrentTheme()
	crumbStyle := lipgloss.NewStyle().Foreground(th.CrumbFG).Background(th.CrumbBG)
	currentStyle := lipgloss.NewStyle().Foreground(th.CrumbCurrentFG).Background(th.CrumbCurrentBG).Bold(true)

	labels := m.Browser.Path()
	buttons := make([]button, 0, len(labels))
	for i, label := range labels {
		style := crumbStyle
		if i == m.Browser.Index() {
			style = currentStyle
		}
		buttons = append(buttons, makeButton(fmt.Sprintf("%d:%s", i, label), style, m.NoColor))
	}
	return wrapButtons(buttons, m.Width)
}

func (m BrowserView) groupRow() string {
	th := CurrentTheme()
	groupStyle := lipgloss.NewStyle().Foreground(th.GroupFG).Background(th.GroupBG)
	cursorStyle := lipgloss.NewStyle().Foreground(th.CursorFG).Background(th.CursorBG).Bold(true)

	groups := m.Browser.Groups()
	buttons := make([]button, 0, len(groups))
	for i, name := range groups {
		label := name
		style := groupStyle
		if i == m.Cursor {
			label = "▸ " + label
			style = cursorStyle
		}
		buttons = append(buttons, makeButton(label, style, m.NoColor))
	}
	return wrapButtons(buttons, m.Width)
}

func (m BrowserView) nodeRow() string {
	th := CurrentTheme()
	nodeStyle := lipgloss.NewStyle().Foreground(th.NodeFG).Background(th.NodeBG)
	selectedStyle := lipgloss.NewStyle().Foreground(th.SelectedFG).Background(th.SelectedBG).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(th.CursorFG).Background(th.CursorBG).Bold(true)

	offset := len(m.Browser.Groups())
	sel := m.Browser.Selected()
	nodes := m.Browser.Nodes()
	buttons := make([]button, 0, len(nodes))
	for i, name := range nodes {
		label := name
		style := nodeStyle
		if sel != nil && sel.Name == name {
			label = "● " + label
			style = selectedStyle
		}
		if offset+i == m.Cursor {
			label = "▸ " + label
			style = cursorStyle
		}
		buttons = append(buttons, makeButton(label, style, m.NoColor))
	}
	return wrapButtons(buttons, m.Width)
}

func (m BrowserView) payloadPane() string {
	sel := m.Browser.Selected()
	if sel == nil {
		return ""
	}
	lines := strings.Split(formatter.RenderPayload(sel.Payload), "\n")

	height := payloadPaneLines
	if m.Height > 0 && m.Height-12 > 3 && m.Height-12 < height {
		height = m.Height - 12
	}

	start := m.Scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	th := CurrentTheme()
	titleStyle := lipgloss.NewStyle()
	if !m.NoColor {
		titleStyle = titleStyle.Foreground(th.SelectedBG).Bold(true)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("── " + sel.Name + " "))
	b.WriteString("\n")
	for _, line := range lines[start:end] {
		b.WriteString(formatter.Truncate(line, m.Width))
		b.WriteString("\n")
	}
	if len(lines) > height {
		b.WriteString(fmt.Sprintf("(lines %d-%d of %d, pgup/pgdn to scroll)", start+1, end, len(lines)))
	}
	return strings.TrimRight(b.String(), "\n")
}
