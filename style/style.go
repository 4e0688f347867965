// Package style implements the cascade: matching stylesheet rules against
// document elements and building a styled tree that carries the resolved
// property mapping for every element.
//
// Resolution is a pure function of the document and the stylesheet. Rules
// apply in document order, later matching rules overwriting earlier ones per
// property; there is no specificity.
package style

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
	"github.com/vellum-dev/vellum/logger"
	"github.com/vellum-dev/vellum/utils"
)

// Display is the box-generation mode derived from the display property.
type Display uint8

const (
	DisplayInline Display = iota // default for unset or unknown values
	DisplayBlock
	DisplayInlineBlock
	DisplayNone
)

// StyledNode pairs a document element with its resolved property mapping.
// The tree mirrors the element tree restricted to element children: text
// leaves carry no style and are dropped entirely.
type StyledNode struct {
	Node     *dom.Node
	Children []*StyledNode

	properties map[string]css.Value
}

// Resolve builds the styled tree for root against sheet.
func Resolve(root *dom.Node, sheet *css.Stylesheet) *StyledNode {
	logger.ProgressLogger.Infof("applying stylesheet - %d rule(s)", len(sheet.Rules))
	return resolveNode(root, sheet)
}

func resolveNode(node *dom.Node, sheet *css.Stylesheet) *StyledNode {
	sn := &StyledNode{Node: node, properties: map[string]css.Value{}}
	if node.Type == dom.ElementNode {
		for _, rule := range sheet.Rules {
			for _, sel := range rule.Selectors {
				if !Matches(node, sel) {
					continue
				}
				for _, decl := range rule.Declarations {
					sn.properties[decl.Property] = decl.Value
				}
				// one matching alternative is enough for this rule
				break
			}
		}
	}
	for _, child := range node.Children {
		if child.Type == dom.ElementNode {
			sn.Children = append(sn.Children, resolveNode(child, sheet))
		}
	}
	return sn
}

// Value returns the resolved value for the property and whether one is set.
func (sn *StyledNode) Value(name string) (css.Value, bool) {
	v, ok := sn.properties[name]
	return v, ok
}

// NumOr returns the numeric magnitude of the property: a length's value, an
// Other string parsed as a number (0 when it does not parse), or def when
// the property is absent or not numeric.
func (sn *StyledNode) NumOr(name string, def utils.Fl) utils.Fl {
	v, ok := sn.properties[name]
	if !ok {
		return def
	}
	switch v := v.(type) {
	case css.Length:
		return v.Value
	case css.Other:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 32)
		if err != nil {
			logger.WarningLogger.Warnf("non numeric value %q for property %s, using 0", string(v), name)
			return 0
		}
		return utils.Fl(f)
	default:
		return def
	}
}

// ColorOr returns the property as a color, or def when it is absent or not
// a color.
func (sn *StyledNode) ColorOr(name string, def css.Color) css.Color {
	if c, ok := sn.properties[name].(css.Color); ok {
		return c
	}
	return def
}

// Display derives the box-generation mode from the display property.
func (sn *StyledNode) Display() Display {
	keyword, ok := sn.properties["display"].(css.Other)
	if !ok {
		return DisplayInline
	}
	switch keyword {
	case "block":
		return DisplayBlock
	case "none":
		return DisplayNone
	case "inline-block":
		return DisplayInlineBlock
	default:
		return DisplayInline
	}
}

func (sn *StyledNode) String() string {
	names := make([]string, 0, len(sn.properties))
	for name := range sn.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(sn.Node.String())
	b.WriteString(" {")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", name, sn.properties[name])
	}
	b.WriteString("}")
	return b.String()
}

// PrintTree writes an indented dump of the styled tree rooted at sn.
func PrintTree(w io.Writer, sn *StyledNode) {
	printTree(w, sn, 0)
}

func printTree(w io.Writer, sn *StyledNode, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), sn)
	for _, child := range sn.Children {
		printTree(w, child, depth+1)
	}
}
