package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoFragment is returned if a fragment does not contain any node.
var ErrNoFragment = errors.New("markup does not contain a DOM fragment")

// bodyContext is the context element for parsing fragments of inline content.
func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

// ParseFragment parses a fragment of markup in the context of a <body> element.
// The resulting nodes are detached, i.e. they do not have a parent.
func ParseFragment(markup string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyContext())
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 && markup != "" {
		return nil, ErrNoFragment
	}
	return nodes, nil
}

// ParseDocument parses a complete HTML document.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML document: %w", err)
	}
	return doc, nil
}

// ParseElement parses markup which is expected to hold exactly one element.
func ParseElement(markup string) (*html.Node, error) {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 || nodes[0].Type != html.ElementNode {
		tracer().Debugf("fragment has %d top-level nodes, expected one element", len(nodes))
		return nil, ErrNoFragment
	}
	return nodes[0], nil
}

// Render serializes a sequence of nodes. Errors of the underlying renderer
// are traced, the output up to the error is returned.
func Render(nodes ...*html.Node) string {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			tracer().Errorf("rendering node %q: %v", n.Data, err)
			break
		}
	}
	return buf.String()
}

// InnerHTML returns the serialized content of n, the equivalent of a
// browser's element.innerHTML.
func InnerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	return Render(Children(n)...)
}

// Children returns the child nodes of n as a slice.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, ch)
	}
	return children
}

// ReplaceChildren removes all children of n and appends nodes instead.
// Nodes which are still attached to another parent are detached first.
func ReplaceChildren(n *html.Node, nodes []*html.Node) {
	for ch := n.FirstChild; ch != nil; ch = n.FirstChild {
		n.RemoveChild(ch)
	}
	for _, ch := range nodes {
		if ch.Parent != nil {
			ch.Parent.RemoveChild(ch)
		}
		n.AppendChild(ch)
	}
}

// TextContent returns the text of n and all of its descendents, the equivalent
// of a browser's node.textContent.
func TextContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.CommentNode, html.DoctypeNode:
	default:
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collectText(ch, b)
		}
	}
}

// NewElement creates a detached element node, optionally with a class attribute.
func NewElement(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// NewText creates a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// --- Attributes ------------------------------------------------------------

// Attr returns the value of an attribute of n, together with an indicator
// wether the attribute is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute of n, overwriting an existing value.
func SetAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	c, _ := Attr(n, "class")
	return strings.Fields(c)
}

// HasClass is a predicate to check if n carries a CSS class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class to the class list of n. Existing classes are kept,
// a class already present is not added a second time. If n does not have a class
// attribute yet, it will be created.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	c, ok := Attr(n, "class")
	if !ok || strings.TrimSpace(c) == "" {
		SetAttr(n, "class", class)
		return
	}
	SetAttr(n, "class", strings.TrimRight(c, " \t\n")+" "+class)
}

// SetStyle sets a single inline style property of n, keeping other properties
// of the style attribute.
func SetStyle(n *html.Node, property, value string) {
	s, _ := Attr(n, "style")
	var decls []string
	for _, d := range strings.Split(s, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if k := strings.SplitN(d, ":", 2); strings.TrimSpace(k[0]) == property {
			continue
		}
		decls = append(decls, d)
	}
	decls = append(decls, property+": "+value)
	SetAttr(n, "style", strings.Join(decls, "; "))
}
