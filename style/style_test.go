package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
)

var (
	red  = css.Color{R: 1, A: 1}
	blue = css.Color{B: 1, A: 1}
)

func classRule(class string, decls ...css.Declaration) css.Rule {
	return css.Rule{
		Selectors:    []css.Selector{{Simple: []css.SimpleSelector{{Classes: []string{class}}}}},
		Declarations: decls,
	}
}

func decl(property string, v css.Value) css.Declaration {
	return css.Declaration{Property: property, Value: v}
}

func TestCascadeLaterRuleWins(t *testing.T) {
	sheet := &css.Stylesheet{Rules: []css.Rule{
		classRule("a", decl("color", red)),
		classRule("b", decl("color", blue)),
	}}
	node := dom.NewElement("div", map[string]string{"class": "a b"})

	sn := Resolve(node, sheet)
	assert.Equal(t, blue, sn.ColorOr("color", css.Color{}))
}

func TestCascadeKeepsEarlierProperties(t *testing.T) {
	// a rule that matches later but sets a different property must not
	// erase the earlier one
	sheet := &css.Stylesheet{Rules: []css.Rule{
		classRule("a", decl("color", red)),
		classRule("a", decl("width", css.Length{Value: 10, Unit: css.Px})),
	}}
	node := dom.NewElement("div", map[string]string{"class": "a"})

	sn := Resolve(node, sheet)
	assert.Equal(t, red, sn.ColorOr("color", css.Color{}))
	w, ok := sn.Value("width")
	require.True(t, ok)
	assert.Equal(t, css.Length{Value: 10, Unit: css.Px}, w)
}

func TestRuleAppliesOncePerElement(t *testing.T) {
	// both alternatives of the same rule match; the declarations are
	// still copied exactly once, later rules still apply
	sheet := &css.Stylesheet{Rules: []css.Rule{
		{
			Selectors: []css.Selector{
				{Simple: []css.SimpleSelector{{TagName: "div"}}},
				{Simple: []css.SimpleSelector{{Classes: []string{"a"}}}},
			},
			Declarations: []css.Declaration{decl("color", red)},
		},
		classRule("a", decl("color", blue)),
	}}
	node := dom.NewElement("div", map[string]string{"class": "a"})

	sn := Resolve(node, sheet)
	assert.Equal(t, blue, sn.ColorOr("color", css.Color{}))
}

func TestResolveDropsTextLeaves(t *testing.T) {
	node := dom.NewElement("div", nil,
		dom.NewText("hello"),
		dom.NewElement("span", nil),
		dom.NewText("world"),
		dom.NewElement("p", nil),
	)
	sn := Resolve(node, &css.Stylesheet{})
	require.Len(t, sn.Children, 2)
	assert.Equal(t, "span", sn.Children[0].Node.TagName)
	assert.Equal(t, "p", sn.Children[1].Node.TagName)
}

func TestDisplay(t *testing.T) {
	for _, tt := range []struct {
		value css.Value
		want  Display
	}{
		{css.Other("block"), DisplayBlock},
		{css.Other("none"), DisplayNone},
		{css.Other("inline-block"), DisplayInlineBlock},
		{css.Other("inline"), DisplayInline},
		{css.Other("flex"), DisplayInline}, // unknown keywords fall back to inline
		{css.Length{Value: 1, Unit: css.Px}, DisplayInline},
		{nil, DisplayInline},
	} {
		sheet := &css.Stylesheet{}
		if tt.value != nil {
			sheet.Rules = []css.Rule{classRule("x", decl("display", tt.value))}
		}
		node := dom.NewElement("div", map[string]string{"class": "x"})
		assert.Equal(t, tt.want, Resolve(node, sheet).Display(), "display %v", tt.value)
	}
}

func TestNumOr(t *testing.T) {
	sheet := &css.Stylesheet{Rules: []css.Rule{classRule("x",
		decl("margin-left", css.Length{Value: 12, Unit: css.Px}),
		decl("margin-right", css.Other("42")),
		decl("margin-top", css.Other("auto")),
		decl("color", red),
	)}}
	sn := Resolve(dom.NewElement("div", map[string]string{"class": "x"}), sheet)

	assert.EqualValues(t, 12, sn.NumOr("margin-left", 7))
	assert.EqualValues(t, 42, sn.NumOr("margin-right", 7))
	// present but non numeric parses to 0
	assert.EqualValues(t, 0, sn.NumOr("margin-top", 7))
	// a color is not a number
	assert.EqualValues(t, 7, sn.NumOr("color", 7))
	// absent falls back to the default
	assert.EqualValues(t, 7, sn.NumOr("margin-bottom", 7))
}

func TestResolveDeterministic(t *testing.T) {
	sheet := &css.Stylesheet{Rules: []css.Rule{
		classRule("a", decl("color", red), decl("width", css.Length{Value: 5, Unit: css.Px})),
	}}
	node := dom.NewElement("div", map[string]string{"class": "a"},
		dom.NewElement("span", map[string]string{"class": "a"}))

	first := Resolve(node, sheet)
	second := Resolve(node, sheet)
	assert.Equal(t, first.String(), second.String())
	require.Len(t, second.Children, 1)
	assert.Equal(t, first.Children[0].String(), second.Children[0].String())
}
