// Package boxes defines the layout tree: the geometry value types of the box
// model (Rect, EdgeSizes, Dimensions), the box types derived from the
// display property, and the structural construction of a box tree from a
// styled tree. Geometry computation lives in the layout package.
package boxes

import (
	"fmt"

	"github.com/vellum-dev/vellum/utils"
)

type Rect struct {
	X, Y, Width, Height utils.Fl
}

type EdgeSizes struct {
	Left, Right, Top, Bottom utils.Fl
}

// Dimensions is the box-model record of one layout box: the content
// rectangle plus the padding, border and margin edges around it.
//
// Cursor tracks the in-progress inline row while the box's children are
// being laid out; it is meaningless once layout completes.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes

	Cursor Rect
}

// ExpandedBy returns the rectangle grown outwards by the given edges.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// PaddingBox is the content rectangle expanded by the padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box expanded by the border. It is the rectangle
// a painter fills for the box.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box expanded by the margin; block flow stacks
// sibling margin boxes.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

func (r Rect) String() string {
	return fmt.Sprintf("x: %g, y: %g, w: %g, h: %g", r.X, r.Y, r.Width, r.Height)
}

func (e EdgeSizes) String() string {
	return fmt.Sprintf("l: %g r: %g top: %g bot: %g", e.Left, e.Right, e.Top, e.Bottom)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("content: %s | padding: %s | border: %s | margin: %s",
		d.Content, d.Padding, d.Border, d.Margin)
}
