package boxes

import (
	"fmt"
	"io"
	"strings"

	"github.com/vellum-dev/vellum/style"
)

// BoxType selects the geometry mode of a layout box. It is derived solely
// from the resolved display property.
type BoxType uint8

const (
	BlockBox BoxType = iota
	InlineBox
	InlineBlockBox
	// AnonymousBox performs no geometry computation. It is only produced
	// when the styled root itself has display none; none children are
	// pruned before construction.
	AnonymousBox
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case InlineBlockBox:
		return "inline-block"
	case AnonymousBox:
		return "anonymous"
	}
	return fmt.Sprintf("BoxType(%d)", uint8(t))
}

// LayoutBox is one box of the layout tree. Style points back to the styled
// node the box was generated for, which the painter consults for colors.
type LayoutBox struct {
	Type       BoxType
	Style      *style.StyledNode
	Dimensions Dimensions
	Children   []*LayoutBox
}

func NewLayoutBox(t BoxType, sn *style.StyledNode) *LayoutBox {
	return &LayoutBox{Type: t, Style: sn}
}

// BuildTree constructs the box tree mirroring the styled tree, pruning every
// display:none subtree. All geometry is left zeroed for the layout pass.
func BuildTree(sn *style.StyledNode) *LayoutBox {
	box := NewLayoutBox(boxTypeFor(sn.Display()), sn)
	for _, child := range sn.Children {
		if child.Display() == style.DisplayNone {
			continue
		}
		box.Children = append(box.Children, BuildTree(child))
	}
	return box
}

func boxTypeFor(d style.Display) BoxType {
	switch d {
	case style.DisplayBlock:
		return BlockBox
	case style.DisplayInlineBlock:
		return InlineBlockBox
	case style.DisplayNone:
		return AnonymousBox
	default:
		return InlineBox
	}
}

func (b *LayoutBox) String() string {
	return fmt.Sprintf("%s %s [%s]", b.Type, b.Style.Node, b.Dimensions)
}

// PrintTree writes an indented dump of the box tree rooted at b.
func PrintTree(w io.Writer, b *LayoutBox) {
	printTree(w, b, 0)
}

func printTree(w io.Writer, b *LayoutBox, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), b)
	for _, child := range b.Children {
		printTree(w, child, depth+1)
	}
}
