package splitter

import "fmt"

// Kind classifies tokens of a line.
type Kind uint8

// Kinds of tokens. Every token except Space will become a word.
const (
	Space   Kind = iota // whitespace, left untouched
	Word                // run of letters, digits and apostrophes
	Symbols             // run of characters which are neither space nor word characters
	Markup              // complete inline element, treated opaquely
)

func (k Kind) String() string {
	switch k {
	case Space:
		return "Space"
	case Word:
		return "Word"
	case Symbols:
		return "Symbols"
	case Markup:
		return "Markup"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a classified unit of a line of source markup.
type Token struct {
	Kind Kind
	Raw  string // source markup of the token, not decoded
	Text string // visible text, entities decoded; empty for Markup
	Tag  string // lower-case tag name, for Markup only
	Void bool   // Markup is a void or self-closing element
}

func (t Token) String() string {
	if t.Kind == Markup {
		return fmt.Sprintf("%s<%s>(%q)", t.Kind, t.Tag, t.Raw)
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Raw)
}
