package css

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/vellum-dev/vellum/utils"
)

// JSON interchange form for pre-parsed stylesheets. The engine never parses
// CSS text; this codec lets drivers and tests ship rule lists as data.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadStylesheet decodes the JSON interchange form of a stylesheet.
func LoadStylesheet(r io.Reader) (*Stylesheet, error) {
	var sheet Stylesheet
	if err := json.NewDecoder(r).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("css: decoding stylesheet: %w", err)
	}
	return &sheet, nil
}

// WriteJSON encodes the stylesheet in its JSON interchange form.
func (s *Stylesheet) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// valueJSON is the tagged wire form of the Value union.
type valueJSON struct {
	Type string `json:"type"`

	R utils.Fl `json:"r,omitempty"`
	G utils.Fl `json:"g,omitempty"`
	B utils.Fl `json:"b,omitempty"`
	A utils.Fl `json:"a,omitempty"`

	Value utils.Fl `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`

	Raw string `json:"raw,omitempty"`
}

type declarationJSON struct {
	Property string    `json:"property"`
	Value    valueJSON `json:"value"`
}

func (d Declaration) MarshalJSON() ([]byte, error) {
	wire := declarationJSON{Property: d.Property}
	switch v := d.Value.(type) {
	case Color:
		wire.Value = valueJSON{Type: "color", R: v.R, G: v.G, B: v.B, A: v.A}
	case Length:
		wire.Value = valueJSON{Type: "length", Value: v.Value, Unit: v.Unit.String()}
	case Other:
		wire.Value = valueJSON{Type: "other", Raw: string(v)}
	default:
		return nil, fmt.Errorf("css: declaration %q has no value", d.Property)
	}
	return json.Marshal(wire)
}

func (d *Declaration) UnmarshalJSON(data []byte) error {
	var wire declarationJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Property = wire.Property
	switch wire.Value.Type {
	case "color":
		d.Value = Color{R: wire.Value.R, G: wire.Value.G, B: wire.Value.B, A: wire.Value.A}
	case "length":
		unit, err := ParseUnit(wire.Value.Unit)
		if err != nil {
			return err
		}
		d.Value = Length{Value: wire.Value.Value, Unit: unit}
	case "other":
		d.Value = Other(wire.Value.Raw)
	default:
		return fmt.Errorf("css: unknown value type %q for property %q", wire.Value.Type, wire.Property)
	}
	return nil
}

// selectorJSON flattens the combinator runes to a string, which reads better
// than the default rune-as-integer encoding.
type selectorJSON struct {
	Simple      []SimpleSelector `json:"simple"`
	Combinators string           `json:"combinators,omitempty"`
}

func (s Selector) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectorJSON{Simple: s.Simple, Combinators: string(s.Combinators)})
}

func (s *Selector) UnmarshalJSON(data []byte) error {
	var wire selectorJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Simple = wire.Simple
	s.Combinators = []rune(wire.Combinators)
	if len(s.Combinators) == 0 {
		s.Combinators = nil
	}
	return nil
}
