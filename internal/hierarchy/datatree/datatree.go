// Package datatree exposes a decoded YAML/JSON/TOML document through the
// hierarchy protocol: maps and slices become groups, scalars become leaf
// nodes whose payload is the value itself.
package datatree

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/simx/internal/hierarchy"
)

// Group wraps one container (map or slice) of the decoded document.
type Group struct {
	name string
	data any
}

// New wraps a decoded document root. Scalar roots are rejected: a browser
// needs at least one container to stand in.
func New(name string, data any) (*Group, error) {
	if !isContainer(data) {
		return nil, fmt.Errorf("root of %q is a scalar, nothing to browse", name)
	}
	return &Group{name: name, data: data}, nil
}

func (g *Group) Name() string { return g.name }

// ListGroups returns the names of container-valued children. Map keys are
// sorted for stable display; slice elements keep their index order.
func (g *Group) ListGroups() []string {
	return g.childNames(true)
}

// ListNodes returns the names of scalar-valued children.
func (g *Group) ListNodes() []string {
	return g.childNames(false)
}

func (g *Group) childNames(containers bool) []string {
	var names []string
	switch t := g.data.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if isContainer(t[k]) == containers {
				names = append(names, k)
			}
		}
	case []any:
		for i, v := range t {
			if isContainer(v) == containers {
				names = append(names, fmt.Sprintf("[%d]", i))
			}
		}
	}
	return names
}

// Child resolves a direct child by name. Slice children are addressed with
// the same "[i]" labels ListGroups/ListNodes hand out.
func (g *Group) Child(name string) (hierarchy.Entry, error) {
	v, ok := g.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q in %q: %w", name, g.name, hierarchy.ErrNoSuchChild)
	}
	if isContainer(v) {
		return &Group{name: name, data: v}, nil
	}
	return node{name: name, value: v}, nil
}

func (g *Group) lookup(name string) (any, bool) {
	switch t := g.data.(type) {
	case map[string]any:
		v, ok := t[name]
		return v, ok
	case []any:
		var idx int
		if _, err := fmt.Sscanf(name, "[%d]", &idx); err != nil {
			return nil, false
		}
		// Sscanf tolerates trailing input; only the exact labels the
		// listings hand out resolve.
		if fmt.Sprintf("[%d]", idx) != name {
			return nil, false
		}
		if idx < 0 || idx >= len(t) {
			return nil, false
		}
		return t[idx], true
	}
	return nil, false
}

// Data returns the wrapped container. Used by the snapshot formatter.
func (g *Group) Data() any { return g.data }

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

type node struct {
	name  string
	value any
}

func (n node) Name() string { return n.name }

func (n node) Payload(context.Context) (any, error) { return n.value, nil }

// Decode is a convenience for tests and embedders: it parses a YAML document
// and wraps it. yaml.v3 also accepts JSON, so both formats work.
func Decode(name string, doc []byte) (*Group, error) {
	var data any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return New(name, data)
}
