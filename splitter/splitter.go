package splitter

import (
	"github.com/npillmayer/reveal/dom"
	"golang.org/x/net/html"
)

// Result is the outcome of splitting the content of a container.
type Result struct {
	lines   [][]Token
	nodes   []*html.Node
	words   []*html.Node
	letters []*html.Node
}

// Split splits markup into words and letters. Lines are processed
// independently and are re-joined with <br> elements.
//
// Split never fails. Markup which cannot be interpreted as an element will
// be split as text.
func Split(markup string) *Result {
	b := &builder{}
	r := &Result{}
	for i, line := range SplitLines(markup) {
		if i > 0 {
			b.lineBreak()
		}
		tokens := Tokenize(line)
		r.lines = append(r.lines, tokens)
		b.line(tokens)
	}
	r.nodes, r.words, r.letters = b.nodes, b.words, b.letters
	tracer().Debugf("split %d line(s) into %d words with %d letters",
		len(r.lines), len(r.words), len(r.letters))
	return r
}

// Apply splits the content of a container and replaces it in place.
func Apply(container *html.Node) *Result {
	if container == nil {
		return &Result{}
	}
	r := Split(dom.InnerHTML(container))
	dom.ReplaceChildren(container, r.nodes)
	return r
}

// Lines returns the tokens of every line.
func (r *Result) Lines() [][]Token {
	return r.lines
}

// Nodes returns the top-level nodes of the split content.
func (r *Result) Nodes() []*html.Node {
	return r.nodes
}

// Words returns the word elements in document order.
func (r *Result) Words() []*html.Node {
	return r.words
}

// Letters returns the letter elements in document order. This is the
// target sequence of a staggered animation.
func (r *Result) Letters() []*html.Node {
	return r.letters
}

// HTML serializes the split content.
func (r *Result) HTML() string {
	return dom.Render(r.nodes...)
}
