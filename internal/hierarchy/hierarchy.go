// Package hierarchy defines the host object protocol the browser consumes:
// named groups containing sub-groups and leaf nodes with displayable
// payloads. Backends implement Group; the browser never depends on how the
// tree is stored.
package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrNoSuchChild is returned by Group.Child for names that are not (or are no
// longer) present in the group. The browser treats it as a stale reference.
var ErrNoSuchChild = errors.New("no such child")

// Entry is either a Group or a Node. The two variants are distinguished with
// a type switch at the call site.
type Entry interface {
	Name() string
}

// Group is a tree position with children. ListGroups and ListNodes return
// child names in the backend's natural order; the browser preserves that
// order when rendering.
type Group interface {
	Entry
	ListGroups() []string
	ListNodes() []string
	Child(name string) (Entry, error)
}

// Node is a leaf with a displayable payload. Payload may hit slow storage,
// hence the context.
type Node interface {
	Entry
	Payload(ctx context.Context) (any, error)
}

// ResolveGroup walks a slash-separated path of group names starting at g.
// Empty segments, "." and a trailing slash are tolerated; ".." is resolved
// lexically by the caller (see CleanPath). A segment naming a leaf node is an
// error: only groups can be entered.
func ResolveGroup(g Group, p string) (Group, error) {
	cur := g
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		child, err := cur.Child(seg)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", p, err)
		}
		sub, ok := child.(Group)
		if !ok {
			return nil, fmt.Errorf("resolve %q: %q is not a group", p, seg)
		}
		cur = sub
	}
	return cur, nil
}

// CleanPath joins a base path (slash-separated group names, "" for the root)
// with a requested path and normalizes the result. An absolute request
// replaces the base. The returned path is relative to the root, without a
// leading slash; "" means the root itself. Requests escaping above the root
// are an error.
func CleanPath(base, req string) (string, error) {
	// Clean without rooting, so ".." elements climbing past the root
	// survive as a "../" prefix instead of being swallowed.
	var cleaned string
	if strings.HasPrefix(req, "/") {
		cleaned = path.Clean(strings.TrimPrefix(req, "/"))
	} else {
		cleaned = path.Join(base, req)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path %q escapes the root", req)
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
