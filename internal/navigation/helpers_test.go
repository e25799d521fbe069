package navigation

import (
	"github.com/lqr-hy/docs/internal/tree"
)

func dir(name string, children ...*tree.Node) *tree.Node {
	return &tree.Node{
		Text:        name,
		Link:        name,
		ActiveMatch: "/" + name + "/",
		Children:    children,
		IsDir:       true,
	}
}

func page(name string) *tree.Node {
	return &tree.Node{Text: tree.DisplayText(name), Link: name}
}

// sampleTree mirrors the published notes layout.
func sampleTree() []*tree.Node {
	return []*tree.Node{
		dir("Git", page("01-branch.md"), page("02-rebase.md")),
		dir("Javascript",
			dir("01-basics", page("01-closure.md"), page("02-prototype.md")),
			page("02-event-loop.md"),
		),
		dir("Rust", page("01-ownership.md")),
		dir("Vue",
			dir("01-core",
				dir("01-reactivity", page("01-ref.md")),
				page("02-components.md"),
			),
		),
	}
}
