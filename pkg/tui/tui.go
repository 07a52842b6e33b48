// Package tui is the embedding surface: host applications hand over a
// root group and get the interactive browser, the same way the CLI
// does. Hosts only need to implement the hierarchy protocol.
package tui

import (
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/simx/internal/browser"
	"github.com/oakwood-commons/simx/internal/hierarchy"
	"github.com/oakwood-commons/simx/internal/ui"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

// Group is the hierarchy protocol hosts implement. Directories of
// entries: ListGroups and ListNodes name the children, Child resolves
// one by name.
type Group = hierarchy.Group

// Node is a leaf entry with a loadable payload.
type Node = hierarchy.Node

// Entry is the common child type returned by Child.
type Entry = hierarchy.Entry

// ErrNoSuchChild marks a child name that the host no longer knows,
// typically because the listing went stale.
var ErrNoSuchChild = hierarchy.ErrNoSuchChild

// Config tunes the embedded browser.
type Config struct {
	// AppName shows in the title bar. Defaults to "simx".
	AppName string
	// Path is an initial group path to open, relative to the root.
	Path string
	// ShowAll disables the hidden-node filter.
	ShowAll bool
	// FixPath pins the browser to its starting group.
	FixPath bool
	// HiddenNodes lists node names suppressed unless ShowAll.
	HiddenNodes []string
	// NoColor disables styling.
	NoColor bool
	// Theme selects a built-in palette by name ("" keeps the default).
	Theme string
	// Width and Height force the window size; 0 auto-detects.
	Width  int
	Height int
}

// Run starts the interactive browser over the host's root group. Extra
// tea.ProgramOption values (e.g. custom IO) are passed through.
func Run(root Group, cfg Config, opts ...tea.ProgramOption) error {
	if cfg.Theme != "" {
		if err := ui.SetThemeByName(cfg.Theme); err != nil {
			return err
		}
	}

	appName := cfg.AppName
	if appName == "" {
		appName = "simx"
	}

	start := root
	if cfg.Path != "" {
		g, err := hierarchy.ResolveGroup(root, cfg.Path)
		if err != nil {
			return err
		}
		start = g
	}

	b := browser.New(start, browser.Config{
		ShowAll: cfg.ShowAll,
		Fixed:   cfg.FixPath,
		Hidden:  cfg.HiddenNodes,
	})

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		w, h := DetectTerminalSize()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}

	return ui.RunModel(appName, b, cfg.NoColor, width, height, opts...)
}

// DetectTerminalSize returns the best-effort terminal width and height
// by probing stdout, stderr, and stdin, then falling back to the
// COLUMNS environment variable. Detection failure returns generous
// defaults so non-TTY environments don't get cramped output.
func DetectTerminalSize() (width int, height int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 24
		}
	}
	return defaultFallbackTermWidth, 24
}
