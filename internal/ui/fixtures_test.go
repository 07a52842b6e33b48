package ui

import (
	"context"
	"fmt"

	"github.com/oakwood-commons/simx/internal/browser"
	"github.com/oakwood-commons/simx/internal/hierarchy"
)

type memNode struct {
	name    string
	payload any
}

func (n *memNode) Name() string { return n.name }
func (n *memNode) Payload(context.Context) (any, error) {
	return n.payload, nil
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

func sampleBrowser() *browser.Browser {
	root := &memGroup{
		name: "workspace",
		groups: []*memGroup{
			{
				name:  "relax",
				nodes: []*memNode{{name: "input", payload: map[string]any{"steps": 100}}},
			},
			{name: "md"},
		},
		nodes: []*memNode{
			{name: "status", payload: "finished"},
			{name: "notes", payload: "line1\nline2\nline3"},
		},
	}
	return browser.New(root, browser.Config{})
}
