package layout

// Block (and inline) geometry: the horizontal constraint solve, position
// from the flow height accumulated so far, explicit or accumulated height.

import (
	"github.com/vellum-dev/vellum/boxes"
)

func layoutBlock(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	if err := blockWidth(box, cb); err != nil {
		return err
	}
	blockPosition(box, cb)
	if err := layoutChildren(box); err != nil {
		return err
	}
	return blockHeight(box, cb)
}

// blockWidth solves
//
//	cb.width = margin-left + border-left + padding-left + width
//	           + padding-right + border-right + margin-right
//
// for the unspecified terms. An unspecified width soaks up the remaining
// space; otherwise the unspecified margins do; with everything specified
// the right margin absorbs the discrepancy. "Unspecified" is keyed on the
// property being absent (or not a length, for width), never on its value
// being zero.
func blockWidth(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	sn := box.Style
	d := &box.Dimensions

	width, hasWidth, err := absoluteLength(sn, "width", cb)
	if err != nil {
		return err
	}

	_, hasMarginL := sn.Value("margin-left")
	_, hasMarginR := sn.Value("margin-right")
	marginL := sn.NumOr("margin-left", 0)
	marginR := sn.NumOr("margin-right", 0)

	d.Border.Left = sn.NumOr("border-left-width", 0)
	d.Border.Right = sn.NumOr("border-right-width", 0)
	d.Padding.Left = sn.NumOr("padding-left", 0)
	d.Padding.Right = sn.NumOr("padding-right", 0)

	total := width + marginL + marginR + d.Border.Left + d.Border.Right +
		d.Padding.Left + d.Padding.Right
	underflow := cb.Content.Width - total

	switch {
	case !hasWidth:
		if underflow >= 0 {
			d.Content.Width = underflow
			d.Margin.Right = marginR
		} else {
			// the deficit comes out of the right margin
			d.Content.Width = width
			d.Margin.Right = marginR + underflow
		}
		d.Margin.Left = marginL
	case !hasMarginL && hasMarginR:
		d.Margin.Left = underflow
		d.Margin.Right = marginR
		d.Content.Width = width
	case hasMarginL && !hasMarginR:
		d.Margin.Right = underflow
		d.Margin.Left = marginL
		d.Content.Width = width
	case !hasMarginL && !hasMarginR:
		d.Margin.Left = underflow / 2
		d.Margin.Right = underflow / 2
		d.Content.Width = width
	default:
		// over-constrained
		d.Margin.Left = marginL
		d.Margin.Right = marginR + underflow
		d.Content.Width = width
	}
	return nil
}

func blockPosition(box *boxes.LayoutBox, cb boxes.Dimensions) {
	sn := box.Style
	d := &box.Dimensions

	d.Margin.Top = sn.NumOr("margin-top", 0)
	d.Margin.Bottom = sn.NumOr("margin-bottom", 0)
	d.Border.Top = sn.NumOr("border-top-width", 0)
	d.Border.Bottom = sn.NumOr("border-bottom-width", 0)
	d.Padding.Top = sn.NumOr("padding-top", 0)
	d.Padding.Bottom = sn.NumOr("padding-bottom", 0)

	d.Content.X = cb.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	// siblings stack vertically through the height accumulated so far
	d.Content.Y = cb.Content.Height + cb.Content.Y + d.Margin.Top + d.Border.Top + d.Padding.Top
}

// blockHeight keeps the height accumulated from the children unless an
// explicit height is declared.
func blockHeight(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	height, ok, err := absoluteLength(box.Style, "height", cb)
	if err != nil {
		return err
	}
	if ok {
		box.Dimensions.Content.Height = height
	}
	return nil
}
