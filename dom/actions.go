package dom

import (
	"golang.org/x/net/html"
)

// Predicate is a function type to match against nodes of a DOM.
type Predicate func(n *html.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement Predicate = func(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// NodeHasClass returns a predicate matching elements with a given class.
func NodeHasClass(class string) Predicate {
	return func(n *html.Node) bool {
		return NodeIsElement(n) && HasClass(n, class)
	}
}

// Collect walks the tree below (and including) n in document order and returns
// all nodes matching predicate. Children of matching nodes are visited as well.
func Collect(n *html.Node, predicate Predicate) []*html.Node {
	var result []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if predicate(n) {
			result = append(result, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if n != nil {
		walk(n)
	}
	return result
}
