package css

import (
	"fmt"

	"github.com/vellum-dev/vellum/utils"
)

// Value is a declaration value: a Color, a Length or an uninterpreted Other
// string. Layout can only compute with pixel and percentage lengths; every
// other unit is preserved but rejected where a numeric size is required.
type Value interface {
	isValue()
	String() string
}

// Color with channels in the 0..1 range.
type Color struct {
	R, G, B, A utils.Fl
}

type Length struct {
	Value utils.Fl
	Unit  Unit
}

// Other is a raw value the parser did not type further, like a keyword.
type Other string

func (Color) isValue()  {}
func (Length) isValue() {}
func (Other) isValue()  {}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

func (o Other) String() string { return string(o) }

// Unit enumerates the CSS length units the parser may emit.
type Unit uint8

const (
	Em Unit = iota
	Ex
	Ch
	Rem
	Vh
	Vw
	Vmin
	Vmax
	Px
	Mm
	Q
	Cm
	In
	Pt
	Pc
	Pct
)

var unitNames = [...]string{
	Em: "em", Ex: "ex", Ch: "ch", Rem: "rem",
	Vh: "vh", Vw: "vw", Vmin: "vmin", Vmax: "vmax",
	Px: "px", Mm: "mm", Q: "q", Cm: "cm", In: "in",
	Pt: "pt", Pc: "pc", Pct: "%",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ParseUnit is the inverse of Unit.String.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if s == name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("css: unknown unit %q", s)
}
