package layout

// Inline-block geometry: explicit width only (no shrink-to-fit), edges read
// directly with no auto-margin distribution, position taken from the
// parent's row cursor.

import (
	"github.com/vellum-dev/vellum/boxes"
)

func layoutInlineBlock(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	if err := inlineBlockWidth(box, cb); err != nil {
		return err
	}
	inlineBlockPosition(box, cb)
	if err := layoutChildren(box); err != nil {
		return err
	}
	return blockHeight(box, cb)
}

func inlineBlockWidth(box *boxes.LayoutBox, cb boxes.Dimensions) error {
	sn := box.Style
	d := &box.Dimensions

	width, _, err := absoluteLength(sn, "width", cb)
	if err != nil {
		return err
	}
	d.Content.Width = width // 0 when unspecified

	d.Margin.Left = sn.NumOr("margin-left", 0)
	d.Margin.Right = sn.NumOr("margin-right", 0)
	d.Padding.Left = sn.NumOr("padding-left", 0)
	d.Padding.Right = sn.NumOr("padding-right", 0)
	d.Border.Left = sn.NumOr("border-left-width", 0)
	d.Border.Right = sn.NumOr("border-right-width", 0)
	return nil
}

func inlineBlockPosition(box *boxes.LayoutBox, cb boxes.Dimensions) {
	sn := box.Style
	d := &box.Dimensions

	d.Margin.Top = sn.NumOr("margin-top", 0)
	d.Margin.Bottom = sn.NumOr("margin-bottom", 0)
	d.Border.Top = sn.NumOr("border-top-width", 0)
	d.Border.Bottom = sn.NumOr("border-bottom-width", 0)
	d.Padding.Top = sn.NumOr("padding-top", 0)
	d.Padding.Bottom = sn.NumOr("padding-bottom", 0)

	d.Content.X = cb.Content.X + cb.Cursor.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = cb.Content.Height + cb.Content.Y + d.Margin.Top + d.Border.Top + d.Padding.Top
}
