package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML converts a tree parsed by golang.org/x/net/html into the engine's
// node model: elements and text map one to one, comments and doctypes are
// dropped, and a document node is skipped in favor of its root element.
// It returns nil when the subtree holds no element or text content.
func FromHTML(src *html.Node) *Node {
	switch src.Type {
	case html.DocumentNode:
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return FromHTML(c)
			}
		}
		return nil
	case html.ElementNode:
		n := &Node{Type: ElementNode, TagName: src.Data, Attrs: make(map[string]string, len(src.Attr))}
		for _, a := range src.Attr {
			n.Attrs[a.Key] = a.Val
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := FromHTML(c); child != nil {
				n.Children = append(n.Children, child)
			}
		}
		return n
	case html.TextNode:
		return &Node{Type: TextNode, Text: src.Data}
	default:
		return nil
	}
}

// Parse reads an HTML document, delegating tokenization to
// golang.org/x/net/html, and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing document: %w", err)
	}
	root := FromHTML(doc)
	if root == nil {
		return nil, fmt.Errorf("dom: document has no root element")
	}
	return root, nil
}

// ParseBody is like Parse but returns the <body> element, which is usually
// what a driver wants to lay out. It falls back to the root element for
// fragments without one.
func ParseBody(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing document: %w", err)
	}
	if body := findBody(doc); body != nil {
		return FromHTML(body), nil
	}
	root := FromHTML(doc)
	if root == nil {
		return nil, fmt.Errorf("dom: document has no root element")
	}
	return root, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
