package browser

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/oakwood-commons/simx/internal/hierarchy"
)

type memNode struct {
	name    string
	payload any
	err     error
}

func (n *memNode) Name() string { return n.name }
func (n *memNode) Payload(context.Context) (any, error) {
	return n.payload, n.err
}

type memGroup struct {
	name   string
	groups []*memGroup
	nodes  []*memNode
}

func (g *memGroup) Name() string { return g.name }

func (g *memGroup) ListGroups() []string {
	names := make([]string, 0, len(g.groups))
	for _, c := range g.groups {
		names = append(names, c.name)
	}
	return names
}

func (g *memGroup) ListNodes() []string {
	names := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		names = append(names, n.name)
	}
	return names
}

func (g *memGroup) Child(name string) (hierarchy.Entry, error) {
	for _, c := range g.groups {
		if c.name == name {
			return c, nil
		}
	}
	for _, n := range g.nodes {
		if n.name == name {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, hierarchy.ErrNoSuchChild)
}

// workspace -> {A -> {B}, C}, nodes: status, energy under workspace.
func sampleRoot() *memGroup {
	return &memGroup{
		name: "workspace",
		groups: []*memGroup{
			{
				name:   "A",
				groups: []*memGroup{{name: "B"}},
			},
			{name: "C"},
		},
		nodes: []*memNode{
			{name: "status", payload: "finished"},
			{name: "energy", payload: -12.5},
		},
	}
}

func TestNewSeedsRoot(t *testing.T) {
	b := New(sampleRoot(), Config{})
	if got := b.Path(); !reflect.DeepEqual(got, []string{"workspace"}) {
		t.Fatalf("expected [workspace], got %v", got)
	}
	if !reflect.DeepEqual(b.Groups(), []string{"A", "C"}) {
		t.Fatalf("unexpected groups %v", b.Groups())
	}
	if !reflect.DeepEqual(b.Nodes(), []string{"status", "energy"}) {
		t.Fatalf("unexpected nodes %v", b.Nodes())
	}
	if b.CanBack() || b.CanForward() {
		t.Fatalf("fresh browser should have no back/forward")
	}
}

func TestEnterBackEnterTruncates(t *testing.T) {
	root := sampleRoot()
	// A gets a sibling branch for B so there is somewhere else to go.
	root.groups[0].groups = append(root.groups[0].groups, &memGroup{name: "C"})

	b := New(root, Config{})
	if !b.Enter("A") {
		t.Fatalf("enter A: %v", b.Err())
	}
	if !b.Enter("B") {
		t.Fatalf("enter B: %v", b.Err())
	}
	if !b.Back() {
		t.Fatalf("back failed")
	}
	// Entering C from A drops the B tail.
	if !b.Enter("C") {
		t.Fatalf("enter C: %v", b.Err())
	}
	want := []string{"workspace", "A", "C"}
	if got := b.Path(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if b.Index() != 2 {
		t.Fatalf("expected index 2, got %d", b.Index())
	}
	if b.CanForward() {
		t.Fatalf("forward should be unavailable after truncation")
	}
}

func TestEnterStaleChild(t *testing.T) {
	root := sampleRoot()
	b := New(root, Config{})

	// The host drops group C between listing and activation.
	root.groups = root.groups[:1]
	if b.Enter("C") {
		t.Fatalf("stale enter should refuse")
	}
	if !errors.Is(b.Err(), hierarchy.ErrNoSuchChild) {
		t.Fatalf("expected ErrNoSuchChild, got %v", b.Err())
	}
	// The refusal re-listed children from the host.
	if !reflect.DeepEqual(b.Groups(), []string{"A"}) {
		t.Fatalf("expected refreshed groups [A], got %v", b.Groups())
	}
	if got := b.Path(); !reflect.DeepEqual(got, []string{"workspace"}) {
		t.Fatalf("history must be untouched, got %v", got)
	}
}

func TestEnterNodeNameRefuses(t *testing.T) {
	b := New(sampleRoot(), Config{})
	if b.Enter("status") {
		t.Fatalf("entering a node should refuse")
	}
	if b.Err() == nil {
		t.Fatalf("expected inline error")
	}
}

func TestSelectionToggleAndClearOnMove(t *testing.T) {
	b := New(sampleRoot(), Config{})
	ctx := context.Background()

	if !b.Select(ctx, "status") {
		t.Fatalf("select: %v", b.Err())
	}
	sel := b.Selected()
	if sel == nil || sel.Name != "status" || sel.Payload != "finished" {
		t.Fatalf("unexpected selection %+v", sel)
	}

	// Selecting another node replaces the selection.
	if !b.Select(ctx, "energy") {
		t.Fatalf("select energy: %v", b.Err())
	}
	if b.Selected().Name != "energy" {
		t.Fatalf("expected energy selected, got %+v", b.Selected())
	}

	// Toggling the same node deselects.
	if !b.Select(ctx, "energy") {
		t.Fatalf("toggle: %v", b.Err())
	}
	if b.Selected() != nil {
		t.Fatalf("expected selection cleared by toggle")
	}

	b.Select(ctx, "status")
	if !b.Enter("A") {
		t.Fatalf("enter: %v", b.Err())
	}
	if b.Selected() != nil {
		t.Fatalf("group change must clear the selection")
	}

	b.Back()
	b.Select(ctx, "status")
	b.ClearSelection()
	if b.Selected() != nil {
		t.Fatalf("expected selection cleared")
	}
}

func TestSelectPayloadError(t *testing.T) {
	root := sampleRoot()
	root.nodes = append(root.nodes, &memNode{name: "broken", err: errors.New("boom")})
	b := New(root, Config{})
	if b.Select(context.Background(), "broken") {
		t.Fatalf("select of failing node should refuse")
	}
	if b.Err() == nil || b.Selected() != nil {
		t.Fatalf("expected inline error and no selection, got %v / %+v", b.Err(), b.Selected())
	}
}

func TestJumpToAndHome(t *testing.T) {
	b := New(sampleRoot(), Config{})
	b.Enter("A")
	b.Enter("B")

	if !b.JumpTo(1) {
		t.Fatalf("jump: %v", b.Err())
	}
	if b.Current().Name() != "A" {
		t.Fatalf("expected A, got %q", b.Current().Name())
	}
	if !b.CanForward() {
		t.Fatalf("forward should survive a jump")
	}
	if b.JumpTo(1) {
		t.Fatalf("jump to current index should be a no-op")
	}

	if !b.Home() {
		t.Fatalf("home: %v", b.Err())
	}
	if b.Current().Name() != "workspace" || b.Index() != 0 {
		t.Fatalf("expected workspace at 0, got %q at %d", b.Current().Name(), b.Index())
	}
}

func TestSetPath(t *testing.T) {
	b := New(sampleRoot(), Config{})

	if !b.SetPath("A/B") {
		t.Fatalf("set path: %v", b.Err())
	}
	if b.Current().Name() != "B" {
		t.Fatalf("expected B, got %q", b.Current().Name())
	}
	want := []string{"workspace", "A/B"}
	if got := b.Path(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Relative to the current group.
	if !b.SetPath("..") {
		t.Fatalf("set path ..: %v", b.Err())
	}
	if b.Current().Name() != "A" {
		t.Fatalf("expected A, got %q", b.Current().Name())
	}

	if b.SetPath("no/such/place") {
		t.Fatalf("bad path should refuse")
	}
	if b.Err() == nil {
		t.Fatalf("expected inline error for bad path")
	}
	if b.Current().Name() != "A" {
		t.Fatalf("failed set path must not move, got %q", b.Current().Name())
	}
}

func TestFixedModeDisablesGroupChanges(t *testing.T) {
	b := New(sampleRoot(), Config{Fixed: true})

	if b.Enter("A") || b.SetPath("A") || b.Back() || b.Forward() || b.Home() {
		t.Fatalf("fixed browser must refuse group changes")
	}
	if b.CanBack() || b.CanForward() {
		t.Fatalf("fixed browser must report controls unavailable")
	}
	// Selection still works while pinned.
	if !b.Select(context.Background(), "status") {
		t.Fatalf("select: %v", b.Err())
	}
}

func TestHiddenNodeFilter(t *testing.T) {
	cfg := Config{Hidden: []string{"energy"}}
	b := New(sampleRoot(), cfg)
	if !reflect.DeepEqual(b.Nodes(), []string{"status"}) {
		t.Fatalf("expected filtered nodes [status], got %v", b.Nodes())
	}

	cfg.ShowAll = true
	b = New(sampleRoot(), cfg)
	if !reflect.DeepEqual(b.Nodes(), []string{"status", "energy"}) {
		t.Fatalf("show-all must disable the filter, got %v", b.Nodes())
	}
}

func TestRefreshDropsVanishedSelection(t *testing.T) {
	root := sampleRoot()
	b := New(root, Config{})
	b.Select(context.Background(), "status")

	root.nodes = root.nodes[1:] // status removed by the host
	b.Refresh()
	if b.Selected() != nil {
		t.Fatalf("selection of a vanished node must be dropped")
	}
}
