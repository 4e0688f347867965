package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellum-dev/vellum/boxes"
	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
	"github.com/vellum-dev/vellum/style"
	"github.com/vellum-dev/vellum/utils"
)

func px(v utils.Fl) css.Value  { return css.Length{Value: v, Unit: css.Px} }
func pct(v utils.Fl) css.Value { return css.Length{Value: v, Unit: css.Pct} }

func decl(property string, v css.Value) css.Declaration {
	return css.Declaration{Property: property, Value: v}
}

// rule targets one class with the given declarations.
func rule(class string, decls ...css.Declaration) css.Rule {
	return css.Rule{
		Selectors:    []css.Selector{{Simple: []css.SimpleSelector{{Classes: []string{class}}}}},
		Declarations: decls,
	}
}

func el(tag, class string, children ...*dom.Node) *dom.Node {
	attrs := map[string]string{}
	if class != "" {
		attrs["class"] = class
	}
	return dom.NewElement(tag, attrs, children...)
}

func viewport(width, height utils.Fl) boxes.Dimensions {
	var d boxes.Dimensions
	d.Content.Width = width
	d.Content.Height = height
	return d
}

func mustLayout(t *testing.T, root *dom.Node, cb boxes.Dimensions, rules ...css.Rule) *boxes.LayoutBox {
	t.Helper()
	styled := style.Resolve(root, &css.Stylesheet{Rules: rules})
	tree, err := Layout(styled, cb)
	require.NoError(t, err)
	require.NotNil(t, tree)
	return tree
}
