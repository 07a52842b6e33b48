// Package browser holds the navigation state machine behind the UI: a
// linear visit history over a hierarchy of groups, a single-node
// selection, and cached child listings. All operations run on the
// caller's goroutine; the UI model owns the instance and is the only
// writer.
package browser

import (
	"context"
	"fmt"

	"github.com/oakwood-commons/simx/internal/hierarchy"
	"github.com/oakwood-commons/simx/internal/history"
)

// Visit is one history entry: the group that was current, the
// root-relative path that reaches it, and the label shown on the
// breadcrumb bar.
type Visit struct {
	Group hierarchy.Group
	Path  string
	Label string
}

// Selection is the currently chosen node and its fetched payload.
type Selection struct {
	Name    string
	Payload any
}

// Config tunes listing and navigation behavior.
type Config struct {
	// ShowAll disables the hidden-name filter.
	ShowAll bool
	// Fixed pins the browser to its current group: every group-changing
	// operation refuses.
	Fixed bool
	// Hidden lists node names suppressed from listings unless ShowAll.
	Hidden []string
}

// Browser is the navigation core. Not safe for concurrent use.
type Browser struct {
	root hierarchy.Group
	hist *history.History[Visit]
	cfg  Config

	sel     *Selection
	groups  []string
	nodes   []string
	lastErr error
}

// New seeds a browser at root and lists its children.
func New(root hierarchy.Group, cfg Config) *Browser {
	b := &Browser{
		root: root,
		hist: history.New(Visit{Group: root, Label: root.Name()}),
		cfg:  cfg,
	}
	b.reload()
	return b
}

// Current returns the group under the history pointer.
func (b *Browser) Current() hierarchy.Group { return b.hist.Current().Group }

// Path returns the breadcrumb labels, oldest visit first.
func (b *Browser) Path() []string {
	labels := make([]string, 0, b.hist.Len())
	for _, v := range b.hist.Entries() {
		labels = append(labels, v.Label)
	}
	return labels
}

// Index returns the history pointer position.
func (b *Browser) Index() int { return b.hist.Index() }

// Groups returns the cached child group names of the current group.
func (b *Browser) Groups() []string { return b.groups }

// Nodes returns the cached child node names of the current group, after
// the hidden-name filter.
func (b *Browser) Nodes() []string { return b.nodes }

// Selected returns the current selection, or nil.
func (b *Browser) Selected() *Selection { return b.sel }

// Err returns the error captured by the last operation, or nil. It is
// cleared at the start of every operation.
func (b *Browser) Err() error { return b.lastErr }

// CanBack reports whether Back would move.
func (b *Browser) CanBack() bool { return !b.cfg.Fixed && b.hist.CanBack() }

// CanForward reports whether Forward would move.
func (b *Browser) CanForward() bool { return !b.cfg.Fixed && b.hist.CanForward() }

// Fixed reports whether group changes are disabled.
func (b *Browser) Fixed() bool { return b.cfg.Fixed }

// Enter descends into a child group by name. Stale names, or names that
// resolve to a node, refuse and trigger a re-listing so the view catches
// up with the host.
func (b *Browser) Enter(name string) bool {
	b.lastErr = nil
	if b.cfg.Fixed {
		return false
	}
	cur := b.hist.Current()
	child, err := cur.Group.Child(name)
	if err != nil {
		b.lastErr = err
		b.reload()
		return false
	}
	g, ok := child.(hierarchy.Group)
	if !ok {
		b.lastErr = fmt.Errorf("%q is not a group", name)
		b.reload()
		return false
	}
	b.hist.Push(Visit{Group: g, Path: joinPath(cur.Path, name), Label: name})
	b.afterMove()
	return true
}

// Back steps one visit toward the start of the history.
func (b *Browser) Back() bool {
	b.lastErr = nil
	if b.cfg.Fixed || !b.hist.Back() {
		return false
	}
	b.afterMove()
	return true
}

// Forward steps one visit toward the end of the history.
func (b *Browser) Forward() bool {
	b.lastErr = nil
	if b.cfg.Fixed || !b.hist.Forward() {
		return false
	}
	b.afterMove()
	return true
}

// JumpTo moves the history pointer to an absolute index.
func (b *Browser) JumpTo(i int) bool {
	b.lastErr = nil
	if b.cfg.Fixed || i == b.hist.Index() || !b.hist.JumpTo(i) {
		return false
	}
	b.afterMove()
	return true
}

// Home jumps back to the seed group.
func (b *Browser) Home() bool { return b.JumpTo(0) }

// SetPath resolves a path, relative to the current group or absolute from
// the root, and pushes the result as a new visit.
func (b *Browser) SetPath(req string) bool {
	b.lastErr = nil
	if b.cfg.Fixed {
		return false
	}
	cur := b.hist.Current()
	cleaned, err := hierarchy.CleanPath(cur.Path, req)
	if err != nil {
		b.lastErr = err
		return false
	}
	g, err := hierarchy.ResolveGroup(b.root, cleaned)
	if err != nil {
		b.lastErr = fmt.Errorf("no valid path %q: %w", req, err)
		return false
	}
	label := cleaned
	if label == "" {
		label = b.root.Name()
	}
	b.hist.Push(Visit{Group: g, Path: cleaned, Label: label})
	b.afterMove()
	return true
}

// Select toggles the selection of a node by name, fetching its payload on
// select. Selecting the already-selected node deselects it.
func (b *Browser) Select(ctx context.Context, name string) bool {
	b.lastErr = nil
	if b.sel != nil && b.sel.Name == name {
		b.sel = nil
		return true
	}
	child, err := b.hist.Current().Group.Child(name)
	if err != nil {
		b.lastErr = err
		b.reload()
		return false
	}
	node, ok := child.(hierarchy.Node)
	if !ok {
		b.lastErr = fmt.Errorf("%q is not a node", name)
		return false
	}
	payload, err := node.Payload(ctx)
	if err != nil {
		b.lastErr = fmt.Errorf("load %q: %w", name, err)
		return false
	}
	b.sel = &Selection{Name: name, Payload: payload}
	return true
}

// ClearSelection drops the selection, if any.
func (b *Browser) ClearSelection() {
	b.lastErr = nil
	b.sel = nil
}

// Refresh re-lists children from the host. The selection survives only if
// its node is still listed.
func (b *Browser) Refresh() {
	b.lastErr = nil
	b.reload()
	if b.sel == nil {
		return
	}
	for _, n := range b.nodes {
		if n == b.sel.Name {
			return
		}
	}
	b.sel = nil
}

// afterMove runs after every successful group change.
func (b *Browser) afterMove() {
	b.sel = nil
	b.reload()
}

func (b *Browser) reload() {
	g := b.hist.Current().Group
	b.groups = g.ListGroups()
	b.nodes = b.filterNodes(g.ListNodes())
}

func (b *Browser) filterNodes(names []string) []string {
	if b.cfg.ShowAll || len(b.cfg.Hidden) == 0 {
		return names
	}
	kept := names[:0:0]
	for _, n := range names {
		if !b.hidden(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

func (b *Browser) hidden(name string) bool {
	for _, h := range b.cfg.Hidden {
		if h == name {
			return true
		}
	}
	return false
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}
