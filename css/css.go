// Package css holds the parsed stylesheet model consumed by the style
// resolver: an ordered list of rules, each pairing selectors with
// declarations. Rule order is significant: a later matching rule overwrites
// an earlier one for the same property. There is no specificity and no
// !important.
//
// Turning stylesheet text into this model is the job of an external parser;
// this package only defines the data and a JSON interchange form for it.
package css

type Stylesheet struct {
	Rules []Rule `json:"rules"`
}

type Rule struct {
	Selectors    []Selector    `json:"selectors"`
	Declarations []Declaration `json:"declarations"`
}

// Selector is a list of simple-selector alternatives: it matches an element
// as soon as any one alternative matches.
//
// Combinators records the combinator symbols the parser found between
// alternatives. It is kept for data fidelity only and is never consulted
// during matching, so "div > p" behaves as "div, p". Real descendant/child
// evaluation is deliberately not implemented.
type Selector struct {
	Simple      []SimpleSelector
	Combinators []rune
}

// SimpleSelector matches by tag name, id and class list. An empty TagName or
// ID means the field is unspecified; an unspecified field matches anything,
// except that an element without an id never matches a selector whose ID is
// set.
type SimpleSelector struct {
	TagName string   `json:"tag,omitempty"`
	ID      string   `json:"id,omitempty"`
	Classes []string `json:"classes,omitempty"`
}

type Declaration struct {
	Property string
	Value    Value
}
