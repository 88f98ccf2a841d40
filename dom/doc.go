/*
Package dom provides utilities for the HTML DOM fragments we split and animate.

Status

Early draft: API may change frequently.

Overview

Text containers of a page are handed to us as nodes of an HTML parse tree, as
produced by golang.org/x/net/html. The splitter replaces the content of such a
container with a tree of word and letter wrappers, the reveal machinery selects
those wrappers again to hand them over to a tweening engine.

This package bundles the small set of DOM operations needed for this:
reading and replacing inner HTML, parsing fragments in the context of a body
element, class list manipulation, text content, and selection of nodes by CSS
selectors (with the help of https://godoc.org/github.com/andybalholm/cascadia).

We do not introduce a node type of our own. Clients operate on *html.Node
throughout, which keeps the DOM compatible with every other tool working on
x/net/html trees.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.dom'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.dom")
}
