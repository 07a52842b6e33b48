package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/simx/internal/browser"
)

// RunModel starts the Bubble Tea program around a browser. Width/height
// of 0 auto-detect the terminal size. Extra ProgramOptions (e.g. custom
// IO for tests) are passed through to tea.NewProgram.
func RunModel(appName string, b *browser.Browser, noColor bool, width, height int, opts ...tea.ProgramOption) error {
	m := NewModel(b, appName, noColor)

	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = 92
	}
	if height <= 0 {
		height = 24
	}
	m.Browse.SetSize(width, height)
	m.Status.SetWidth(width)
	m.Footer.SetWidth(width)
	opts = append(opts, tea.WithWindowSize(width, height))

	prog := tea.NewProgram(&m, opts...)
	_, err := prog.Run()
	return err
}
