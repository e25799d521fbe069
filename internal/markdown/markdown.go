package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the plain text of the first heading of the given level in body
// (frontmatter already removed), or "" when there is none.
func FirstHeading(body []byte, level int) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var found string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != level {
			return gmast.WalkContinue, nil
		}
		var buf bytes.Buffer
		inlineText(&buf, h, body)
		found = strings.TrimSpace(buf.String())
		return gmast.WalkStop, nil
	})
	return found
}

// inlineText concatenates the literal text below n, dropping emphasis and link markup.
func inlineText(buf *bytes.Buffer, n gmast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(node.Value)
		default:
			inlineText(buf, c, source)
		}
	}
}
