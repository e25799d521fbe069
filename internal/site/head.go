package site

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lqr-hy/docs/internal/config"
)

// RenderHead renders head tags as an HTML fragment, one element per line. Attributes are
// emitted in name order.
func RenderHead(tags []config.HeadTag) ([]byte, error) {
	var buf bytes.Buffer
	for _, t := range tags {
		a := atom.Lookup([]byte(strings.ToLower(t.Tag)))
		if a == 0 || !config.IsHeadElement(t.Tag) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHeadTag, t.Tag)
		}
		n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
		for _, k := range slices.Sorted(maps.Keys(t.Attrs)) {
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: t.Attrs[k]})
		}
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("render <%s>: %w", t.Tag, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
