// Package fstree exposes a workspace directory through the hierarchy
// protocol: directories are groups, regular files are leaf nodes whose
// payload is the file content (parsed when it is a structured document).
package fstree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oakwood-commons/simx/internal/hierarchy"
	"github.com/oakwood-commons/simx/pkg/loader"
)

// maxPayloadBytes caps how much of a file is loaded into the payload pane.
const maxPayloadBytes = 1 << 20

// Options controls which directory entries are exposed.
type Options struct {
	// SkipExtensions lists file extensions (with dot) that are hidden from
	// ListNodes, e.g. bulky binary artifacts alongside the browsable files.
	SkipExtensions []string
	// ShowHidden exposes dotfiles when true.
	ShowHidden bool
}

// Group is one directory of the workspace.
type Group struct {
	dir  string
	name string
	opts Options
}

// New wraps a workspace directory. The path must exist and be a directory.
func New(dir string, opts Options) (*Group, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("workspace %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace %q is not a directory", dir)
	}
	return &Group{dir: dir, name: filepath.Base(dir), opts: opts}, nil
}

func (g *Group) Name() string { return g.name }

// ListGroups returns child directory names in lexical order.
func (g *Group) ListGroups() []string {
	return g.list(true)
}

// ListNodes returns child file names in lexical order, after applying the
// extension and dotfile filters.
func (g *Group) ListNodes() []string {
	return g.list(false)
}

func (g *Group) list(dirs bool) []string {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() != dirs {
			continue
		}
		name := e.Name()
		if !g.opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !dirs && g.skipped(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Group) skipped(name string) bool {
	ext := filepath.Ext(name)
	for _, skip := range g.opts.SkipExtensions {
		if strings.EqualFold(ext, skip) {
			return true
		}
	}
	return false
}

// Child resolves a direct child. Filtered-out entries resolve anyway so a
// caller holding an explicit name (e.g. from a path input) still reaches it.
func (g *Group) Child(name string) (hierarchy.Entry, error) {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) {
		return nil, fmt.Errorf("%q: %w", name, hierarchy.ErrNoSuchChild)
	}
	full := filepath.Join(g.dir, name)
	info, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("%q in %q: %w", name, g.name, hierarchy.ErrNoSuchChild)
	}
	if info.IsDir() {
		return &Group{dir: full, name: name, opts: g.opts}, nil
	}
	return file{path: full, name: name}, nil
}

type file struct {
	path string
	name string
}

func (f file) Name() string { return f.name }

// Payload reads the file and, when it looks like a structured document,
// parses it so the browser renders keys and values rather than raw bytes.
// Oversized files are truncated to keep the UI responsive.
func (f file) Payload(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", f.name, err)
	}
	truncated := len(data) > maxPayloadBytes
	if truncated {
		data = data[:maxPayloadBytes]
	}
	if !truncated && isStructuredExt(f.path) {
		if parsed, err := loader.LoadRootBytes(data); err == nil {
			return parsed, nil
		}
	}
	text := string(data)
	if truncated {
		text += "\n.... file too long: skipped ...."
	}
	return text, nil
}

func isStructuredExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	}
	return false
}
