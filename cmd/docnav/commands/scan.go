package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lqr-hy/docs/internal/generator"
	"github.com/lqr-hy/docs/internal/tree"
)

// ScanCmd implements the 'scan' command.
type ScanCmd struct {
	JSON bool `help:"Print the tree as JSON"`
}

func (s *ScanCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	categories, err := generator.New(cfg).Tree(g.context())
	if err != nil {
		return err
	}
	if s.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(categories)
	}
	printTree(g.out(), categories, 0)
	return nil
}

func printTree(w io.Writer, nodes []*tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.IsDir {
			_, _ = fmt.Fprintf(w, "%s%s/\n", indent, n.Text)
			printTree(w, n.Children, depth+1)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s%s (%s)\n", indent, n.Text, n.Link)
	}
}
