package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
)

func TestMatchesSimpleSelector(t *testing.T) {
	element := dom.NewElement("div", map[string]string{
		"id":    "main",
		"class": "box wide",
	})
	anonymous := dom.NewElement("div", nil)

	tests := []struct {
		name    string
		element *dom.Node
		sel     css.SimpleSelector
		want    bool
	}{
		{"universal", element, css.SimpleSelector{}, true},
		{"tag match", element, css.SimpleSelector{TagName: "div"}, true},
		{"tag mismatch", element, css.SimpleSelector{TagName: "span"}, false},
		{"id match", element, css.SimpleSelector{ID: "main"}, true},
		{"id mismatch", element, css.SimpleSelector{ID: "other"}, false},
		{"id on element without id", anonymous, css.SimpleSelector{ID: "main"}, false},
		{"single class", element, css.SimpleSelector{Classes: []string{"box"}}, true},
		{"class superset required", element, css.SimpleSelector{Classes: []string{"box", "tall"}}, false},
		{"all classes present", element, css.SimpleSelector{Classes: []string{"box", "wide"}}, true},
		{"tag and id and class", element, css.SimpleSelector{TagName: "div", ID: "main", Classes: []string{"wide"}}, true},
		{"tag right id wrong", element, css.SimpleSelector{TagName: "div", ID: "nope"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.element, css.Selector{Simple: []css.SimpleSelector{tt.sel}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesAnyAlternative(t *testing.T) {
	// "div.x, span" must match a <span> even without class x
	sel := css.Selector{Simple: []css.SimpleSelector{
		{TagName: "div", Classes: []string{"x"}},
		{TagName: "span"},
	}}
	assert.True(t, Matches(dom.NewElement("span", nil), sel))
	assert.False(t, Matches(dom.NewElement("p", nil), sel))
}

func TestCombinatorsNeverConsulted(t *testing.T) {
	// stored combinators do not restrict matching: both alternatives stay
	// independent
	sel := css.Selector{
		Simple:      []css.SimpleSelector{{TagName: "div"}, {TagName: "p"}},
		Combinators: []rune{'>'},
	}
	assert.True(t, Matches(dom.NewElement("p", nil), sel))
}

func TestMatchesRejectsTextNodes(t *testing.T) {
	sel := css.Selector{Simple: []css.SimpleSelector{{}}}
	assert.False(t, Matches(dom.NewText("hello"), sel))
}
