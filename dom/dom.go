// Package dom defines the document tree consumed by the style resolver:
// elements carrying a tag name and attributes, and opaque text leaves.
// Trees are built either directly, or from a document parsed by
// golang.org/x/net/html (see FromHTML).
package dom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vellum-dev/vellum/utils"
)

type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

type Node struct {
	Type NodeType

	// elements only
	TagName string
	Attrs   map[string]string

	// text leaves only
	Text string

	Children []*Node
}

func NewElement(tag string, attrs map[string]string, children ...*Node) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Node{Type: ElementNode, TagName: tag, Attrs: attrs, Children: children}
}

func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// ID returns the element's id attribute and whether it is present.
func (n *Node) ID() (string, bool) {
	id, ok := n.Attrs["id"]
	return id, ok
}

// Classes splits the class attribute on whitespace into a set of tokens.
func (n *Node) Classes() utils.Set {
	return utils.NewSet(strings.Fields(n.Attrs["class"])...)
}

func (n *Node) String() string {
	if n.Type == TextNode {
		return fmt.Sprintf("%q", n.Text)
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.TagName)
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.Attrs[k])
	}
	b.WriteByte('>')
	return b.String()
}

// PrintTree writes an indented dump of the tree rooted at n.
func PrintTree(w io.Writer, n *Node) {
	printTree(w, n, 0)
}

func printTree(w io.Writer, n *Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n)
	for _, child := range n.Children {
		printTree(w, child, depth+1)
	}
}
