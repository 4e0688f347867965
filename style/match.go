package style

import (
	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
	"github.com/vellum-dev/vellum/utils"
)

// Matches reports whether the element satisfies any one of the selector's
// simple-selector alternatives. Combinator symbols stored on the selector
// are not consulted.
func Matches(element *dom.Node, sel css.Selector) bool {
	for _, simple := range sel.Simple {
		if matchesSimple(element, simple) {
			return true
		}
	}
	return false
}

func matchesSimple(element *dom.Node, simple css.SimpleSelector) bool {
	if element.Type != dom.ElementNode {
		return false
	}
	if simple.TagName != "" && simple.TagName != element.TagName {
		return false
	}
	if simple.ID != "" {
		id, ok := element.ID()
		if !ok || id != simple.ID {
			return false
		}
	}
	return element.Classes().IsSupersetOf(utils.NewSet(simple.Classes...))
}
