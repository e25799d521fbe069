package navigation

import (
	"github.com/lqr-hy/docs/internal/tree"
)

// DefaultLink returns the landing route of n below prefix: the first page reached by
// repeatedly descending into the first child. A node without children yields "<link>/".
func DefaultLink(n *tree.Node, prefix string) string {
	if !n.HasChildren() {
		return n.Link + "/"
	}
	first := n.Children[0]
	p := prefix + "/" + first.Link
	if first.HasChildren() {
		return DefaultLink(first, p)
	}
	return tree.TrimMarkdownExt(p)
}

// CategoryLink is the absolute landing route of a top-level category.
func CategoryLink(category *tree.Node) string {
	return "/" + DefaultLink(category, category.Link)
}

// CategoryPrefix is the route prefix a category's pages live under.
func CategoryPrefix(category *tree.Node) string {
	return "/" + category.Link + "/"
}
