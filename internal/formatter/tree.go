package formatter

import (
	"context"

	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/simx/internal/hierarchy"
)

const maxLeafValueWidth = 60

// TreeOptions controls snapshot tree rendering.
type TreeOptions struct {
	// MaxDepth limits recursion (0 = unlimited).
	MaxDepth int
	// WithValues fetches node payloads and shows them inline at leaves.
	WithValues bool
}

// FormatAsTree walks a group hierarchy and renders it as an ASCII tree:
// groups become branches, nodes become leaves. Listing errors surface as
// a "(unreadable)" leaf rather than aborting the walk.
func FormatAsTree(ctx context.Context, root hierarchy.Group, opts TreeOptions) string {
	tree := treeprint.NewWithRoot(root.Name())
	buildTree(ctx, tree, root, opts, 0)
	return tree.String()
}

func buildTree(ctx context.Context, branch treeprint.Tree, g hierarchy.Group, opts TreeOptions, depth int) {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		branch.AddNode("...")
		return
	}
	for _, name := range g.ListGroups() {
		child, err := g.Child(name)
		if err != nil {
			branch.AddNode(name + " (unreadable)")
			continue
		}
		sub, ok := child.(hierarchy.Group)
		if !ok {
			branch.AddNode(name)
			continue
		}
		buildTree(ctx, branch.AddBranch(name), sub, opts, depth+1)
	}
	for _, name := range g.ListNodes() {
		branch.AddNode(leafLabel(ctx, g, name, opts))
	}
}

func leafLabel(ctx context.Context, g hierarchy.Group, name string, opts TreeOptions) string {
	if !opts.WithValues {
		return name
	}
	child, err := g.Child(name)
	if err != nil {
		return name + " (unreadable)"
	}
	node, ok := child.(hierarchy.Node)
	if !ok {
		return name
	}
	payload, err := node.Payload(ctx)
	if err != nil {
		return name + " (unreadable)"
	}
	return name + ": " + Truncate(Stringify(payload), maxLeafValueWidth)
}
