package splitter

import (
	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Classes of the wrapper elements.
const (
	WordClass   = "word"
	LetterClass = "letter"
)

// builder turns tokens into DOM nodes. It collects words and letters in
// document order while doing so.
type builder struct {
	nodes   []*html.Node
	words   []*html.Node
	letters []*html.Node
}

func (b *builder) lineBreak() {
	b.nodes = append(b.nodes, dom.NewElement(atom.Br, ""))
}

func (b *builder) line(tokens []Token) {
	for _, tok := range tokens {
		b.token(tok)
	}
}

func (b *builder) token(tok Token) {
	switch tok.Kind {
	case Space:
		b.nodes = append(b.nodes, dom.NewText(tok.Text))
	case Word, Symbols:
		w := dom.NewElement(atom.Span, WordClass)
		b.words = append(b.words, w)
		b.splitInto(w, tok.Text)
		b.nodes = append(b.nodes, w)
	case Markup:
		b.markup(tok)
	}
}

// markup promotes an inline element to a word. Void elements and elements
// which are not inline are kept as they are.
func (b *builder) markup(tok Token) {
	el, err := dom.ParseElement(tok.Raw)
	if err != nil {
		tracer().Debugf("cannot parse %q as an element, splitting as text", tok.Raw)
		b.line(newScanner(tok.Raw, true).scan())
		return
	}
	if tok.Void || style.DisplayPropertyForHTMLNode(el) != "inline" {
		b.nodes = append(b.nodes, el)
		return
	}
	dom.AddClass(el, WordClass)
	b.words = append(b.words, el)
	for _, t := range dom.Collect(el, dom.NodeIsText) {
		b.splitText(t)
	}
	b.nodes = append(b.nodes, el)
}

// splitInto appends a letter element to w for every code point of text.
func (b *builder) splitInto(w *html.Node, text string) {
	for _, r := range text {
		w.AppendChild(b.letter(r))
	}
}

// splitText replaces a text node by letter elements, in place.
func (b *builder) splitText(t *html.Node) {
	parent := t.Parent
	for _, r := range t.Data {
		parent.InsertBefore(b.letter(r), t)
	}
	parent.RemoveChild(t)
}

func (b *builder) letter(r rune) *html.Node {
	l := dom.NewElement(atom.Span, LetterClass)
	l.AppendChild(dom.NewText(string(r)))
	b.letters = append(b.letters, l)
	return l
}
