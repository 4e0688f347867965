// Package layout computes geometry for a styled tree. It builds the box
// tree (pruning display:none subtrees) and then assigns every box its
// content, padding, border and margin rectangles in a single recursive
// top-down pass: block boxes stack vertically through accumulated content
// height, inline-block boxes flow into rows that wrap at the parent's
// content width.
//
// The pass is pure and synchronous: the same styled tree and containing
// block always produce bit-identical geometry.
package layout

import (
	"fmt"

	"github.com/vellum-dev/vellum/boxes"
	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/logger"
	"github.com/vellum-dev/vellum/style"
	"github.com/vellum-dev/vellum/utils"
)

// UnitError reports a length whose unit cannot be converted to pixels where
// a numeric size is required. Only pixel and percentage lengths are
// computable; the pass aborts rather than substituting a plausible but
// wrong value.
type UnitError struct {
	Property string
	Unit     css.Unit
}

func (e UnitError) Error() string {
	return fmt.Sprintf("layout: unsupported unit %s for property %s", e.Unit, e.Property)
}

// Layout builds the box tree for root and computes every box's geometry
// against the given containing block, whose accumulated content height is
// reset before the pass. On error no tree is returned.
func Layout(root *style.StyledNode, containingBlock boxes.Dimensions) (*boxes.LayoutBox, error) {
	containingBlock.Content.Height = 0

	logger.ProgressLogger.Infof("layout - containing width %g", containingBlock.Content.Width)
	box := boxes.BuildTree(root)
	if err := layoutBox(box, containingBlock); err != nil {
		return nil, err
	}
	return box, nil
}

func layoutBox(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	switch box.Type {
	case boxes.BlockBox, boxes.InlineBox:
		return layoutBlock(box, cb)
	case boxes.InlineBlockBox:
		return layoutInlineBlock(box, cb)
	default:
		// anonymous boxes carry no geometry
		return nil
	}
}

// layoutChildren recurses into the children, each treating box's
// in-progress dimensions as its containing block, and accumulates box's
// content height: every block child adds its margin-box height as it
// completes; inline-block children advance the row cursor and flush the
// tallest margin box of the row when it wraps, or when a block child closes
// an inline run.
func layoutChildren(box *boxes.LayoutBox) error {
	d := &box.Dimensions
	var rowHeight utils.Fl
	prevType := boxes.BlockBox

	for _, child := range box.Children {
		if prevType == boxes.InlineBlockBox && child.Type == boxes.BlockBox {
			d.Content.Height += rowHeight
			rowHeight = 0
			d.Cursor.X = 0
		}

		if err := layoutBox(child, *d); err != nil {
			return err
		}

		switch child.Type {
		case boxes.BlockBox:
			d.Content.Height += child.Dimensions.MarginBox().Height
		case boxes.InlineBlockBox:
			d.Cursor.X += child.Dimensions.MarginBox().Width
			if d.Cursor.X > d.Content.Width {
				// wrap: flush the pending row, then lay the child out
				// again at the new row origin
				d.Content.Height += rowHeight
				rowHeight = 0
				d.Cursor.X = 0
				if err := layoutBox(child, *d); err != nil {
					return err
				}
				d.Cursor.X += child.Dimensions.MarginBox().Width
			}
			rowHeight = utils.MaxF(rowHeight, child.Dimensions.MarginBox().Height)
		}
		prevType = child.Type
	}
	return nil
}

// absoluteLength resolves the property to pixels: px lengths directly,
// percentages against the containing block's content width. ok is false
// when the property is absent or not a length; any other unit is a
// UnitError.
func absoluteLength(sn *style.StyledNode, prop string, cb boxes.Dimensions) (utils.Fl, bool, error) {
	v, in := sn.Value(prop)
	if !in {
		return 0, false, nil
	}
	l, isLength := v.(css.Length)
	if !isLength {
		return 0, false, nil
	}
	switch l.Unit {
	case css.Px:
		return l.Value, true, nil
	case css.Pct:
		return l.Value * cb.Content.Width / 100, true, nil
	default:
		return 0, false, UnitError{Property: prop, Unit: l.Unit}
	}
}
