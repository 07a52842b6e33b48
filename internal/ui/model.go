package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/simx/internal/browser"
)

// Mode selects how key input is routed.
type Mode int

const (
	// BrowseMode is the default navigation mode.
	BrowseMode Mode = iota
	// PathMode edits the set-path input.
	PathMode
	// HelpMode shows the key binding overlay.
	HelpMode
)

// Model is the root Bubble Tea model. It owns the browser view and
// routes input by mode: browse keys to the view, path keys to the
// input, anything in help mode back to browse.
type Model struct {
	AppName string
	NoColor bool

	Browse    BrowserView
	PathInput textinput.Model
	Status    StatusModel
	Footer    FooterModel
	Help      HelpModel

	mode     Mode
	width    int
	height   int
	quitting bool
}

// NewModel builds the root model around a browser.
func NewModel(b *browser.Browser, appName string, noColor bool) Model {
	ti := textinput.New()
	ti.Placeholder = "relative or /absolute path"
	ti.CharLimit = 500
	ti.SetWidth(80)
	ti.Prompt = "path> "

	view := NewBrowserView(b)
	view.NoColor = noColor

	return Model{
		AppName:   appName,
		NoColor:   noColor,
		Browse:    view,
		PathInput: ti,
		Status:    NewStatusModel(),
		Footer:    NewFooterModel(),
		Help:      HelpModel{NoColor: noColor},
		width:     92,
		height:    24,
	}
}

// Mode returns the current input mode.
func (m *Model) Mode() Mode { return m.mode }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Browse.SetSize(m.width, m.height)
		m.Status.SetWidth(m.width)
		m.Footer.SetWidth(m.width)
		m.PathInput.SetWidth(m.width - len(m.PathInput.Prompt) - 1)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.Key().Code == 0x03 {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case HelpMode:
			switch msg.String() {
			case "f1", "?", "esc", "q":
				m.mode = BrowseMode
			}
			return m, nil

		case PathMode:
			switch msg.String() {
			case "enter":
				m.Browse.Browser.SetPath(strings.TrimSpace(m.PathInput.Value()))
				m.Browse.Cursor = 0
				m.PathInput.Blur()
				m.mode = BrowseMode
				return m, nil
			case "esc":
				m.PathInput.Blur()
				m.mode = BrowseMode
				return m, nil
			}
			var cmd tea.Cmd
			m.PathInput, cmd = m.PathInput.Update(msg)
			return m, cmd

		default:
			switch msg.String() {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "f1", "?":
				m.mode = HelpMode
				return m, nil
			case "p", "/":
				if m.Browse.Browser.Fixed() {
					return m, nil
				}
				m.mode = PathMode
				m.PathInput.SetValue("")
				cmd := m.PathInput.Focus()
				return m, tea.Batch(cmd, textinput.Blink)
			}
			var cmd tea.Cmd
			m.Browse, cmd = m.Browse.Update(msg)
			return m, cmd
		}
	}

	if m.mode == PathMode {
		var cmd tea.Cmd
		m.PathInput, cmd = m.PathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var sections []string
	sections = append(sections, m.titleBar())

	if m.mode == HelpMode {
		sections = append(sections, m.Help.View())
	} else {
		sections = append(sections, m.Browse.View())
		if m.mode == PathMode {
			sections = append(sections, m.PathInput.View())
		}
	}

	sections = append(sections, m.statusBar(), m.Footer.View())

	v := tea.NewView(strings.Join(sections, "\n"))
	v.AltScreen = true
	return v
}

func (m *Model) titleBar() string {
	style := lipgloss.NewStyle()
	if !m.NoColor {
		th := CurrentTheme()
		style = style.Foreground(th.TitleFG).Background(th.TitleBG).Bold(true)
	}
	title := m.AppName + " · " + m.Browse.Browser.Current().Name()
	if len(title) < m.width {
		title += strings.Repeat(" ", m.width-len(title))
	}
	return style.Render(title)
}

func (m *Model) statusBar() string {
	b := m.Browse.Browser
	m.Status.NoColor = m.NoColor
	m.Status.ErrMsg = ""
	if err := b.Err(); err != nil {
		m.Status.ErrMsg = err.Error()
	}
	m.Status.CursorIndex = m.Browse.Cursor + 1
	m.Status.TotalRows = len(b.Groups()) + len(b.Nodes())
	m.Status.Selected = ""
	if sel := b.Selected(); sel != nil {
		m.Status.Selected = sel.Name
	}
	return m.Status.View()
}
