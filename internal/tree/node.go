// Package tree scans a documentation directory into the category/section/page tree that the
// nav bar and sidebar are built from.
package tree

// Node is a directory or markdown page in the docs tree.
type Node struct {
	Text        string  `json:"text"`
	Link        string  `json:"link"`
	ActiveMatch string  `json:"activeMatch,omitempty"`
	Children    []*Node `json:"children,omitempty"`

	IsDir   bool   `json:"-"`
	Path    string `json:"-"` // absolute path on disk
	RelPath string `json:"-"` // slash-separated path relative to the docs root
}

// HasChildren reports whether the node is a directory with at least one entry.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// WalkFunc is called for every node with the chain of its ancestors (outermost first).
type WalkFunc func(n *Node, parents []*Node) error

// Walk visits nodes depth-first in tree order. Returning an error stops the walk.
func Walk(nodes []*Node, fn WalkFunc) error {
	return walk(nodes, nil, fn)
}

func walk(nodes []*Node, parents []*Node, fn WalkFunc) error {
	for _, n := range nodes {
		if err := fn(n, parents); err != nil {
			return err
		}
		if len(n.Children) > 0 {
			chain := append(append(make([]*Node, 0, len(parents)+1), parents...), n)
			if err := walk(n.Children, chain, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pages returns every page (non-directory) node in tree order.
func Pages(nodes []*Node) []*Node {
	var pages []*Node
	_ = Walk(nodes, func(n *Node, _ []*Node) error {
		if !n.IsDir {
			pages = append(pages, n)
		}
		return nil
	})
	return pages
}
