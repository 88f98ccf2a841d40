package dom

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// selectors caches compiled CSS selectors. Selectors are immutable once
// compiled, so they may be shared between goroutines.
var selectors = struct {
	sync.RWMutex
	m map[string]cascadia.Selector
}{m: make(map[string]cascadia.Selector)}

// Compile compiles a CSS selector. Compiled selectors are cached.
func Compile(selector string) (cascadia.Selector, error) {
	selectors.RLock()
	sel, ok := selectors.m[selector]
	selectors.RUnlock()
	if ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	selectors.Lock()
	selectors.m[selector] = sel
	selectors.Unlock()
	return sel, nil
}

// QueryAll returns all descendents of root matching a CSS selector, in document
// order. root itself is not part of the result, as with a browser's
// element.querySelectorAll().
func QueryAll(root *html.Node, selector string) ([]*html.Node, error) {
	if root == nil {
		return nil, nil
	}
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	var result []*html.Node
	for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
		result = append(result, sel.MatchAll(ch)...)
	}
	return result, nil
}

// QueryAllIn applies QueryAll to a list of sibling nodes, which are treated as
// the content of an imaginary container.
func QueryAllIn(nodes []*html.Node, selector string) ([]*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	var result []*html.Node
	for _, n := range nodes {
		result = append(result, sel.MatchAll(n)...)
	}
	return result, nil
}

// Matches is a predicate to check if n matches a CSS selector.
// Invalid selectors never match.
func Matches(n *html.Node, selector string) bool {
	sel, err := Compile(selector)
	if err != nil {
		tracer().Errorf(err.Error())
		return false
	}
	return sel.Match(n)
}
