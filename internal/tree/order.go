package tree

import (
	"cmp"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var orderPrefix = regexp.MustCompile(`^(\d+)-`)

var markdownExtensions = []string{".md", ".markdown", ".mdown", ".mkd"}

// IsMarkdown reports whether name has a markdown file extension.
func IsMarkdown(name string) bool {
	return slices.Contains(markdownExtensions, strings.ToLower(filepath.Ext(name)))
}

// TrimMarkdownExt removes a markdown extension from name, if present.
func TrimMarkdownExt(name string) string {
	if IsMarkdown(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// DisplayText derives the label for an entry: "03-Hooks.md" -> "Hooks".
func DisplayText(name string) string {
	return TrimMarkdownExt(orderPrefix.ReplaceAllString(name, ""))
}

// OrderNumber returns the integer formed by the leading digits of name.
func OrderNumber(name string) (int, bool) {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Orderer sorts directory entries: numbered names ascending by number, then unnumbered names
// in collation order for the configured language.
type Orderer struct {
	tag language.Tag
}

// NewOrderer returns an Orderer collating unnumbered names for tag.
func NewOrderer(tag language.Tag) *Orderer {
	return &Orderer{tag: tag}
}

// Sort orders names in place.
func (o *Orderer) Sort(names []string) {
	col := collate.New(o.tag)
	slices.SortStableFunc(names, func(a, b string) int {
		na, okA := OrderNumber(a)
		nb, okB := OrderNumber(b)
		switch {
		case okA && okB:
			if na != nb {
				return cmp.Compare(na, nb)
			}
		case okA:
			return -1
		case okB:
			return 1
		}
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
