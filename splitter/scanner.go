package splitter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/reveal/dom/style"
	"github.com/npillmayer/reveal/entity"
	"golang.org/x/net/html"
)

// Tokenize partitions a single line of markup into tokens. Concatenating
// the Raw fields of the tokens reproduces the line.
//
// Tokenize recognizes, in order of priority:
//
//    1. complete inline elements, from the opening tag to the matching end tag
//    2. maximal runs of word characters
//    3. maximal runs of characters which are neither whitespace nor word characters
//
// Whitespace between these is returned as tokens of kind Space. Entities
// recognized by package entity are decoded while scanning; the decoded
// characters are classified like any other character, i.e. a decoded "&lt;"
// is a symbol, never the start of a tag.
func Tokenize(line string) []Token {
	return newScanner(line, false).scan()
}

// class of a scanned character.
type class uint8

const (
	clSpace class = iota
	clWord
	clSymbol
)

func (cl class) kind() Kind {
	switch cl {
	case clSpace:
		return Space
	case clWord:
		return Word
	}
	return Symbols
}

// unit is a single character of a line, possibly given as an entity reference.
type unit struct {
	raw  string
	text string
	cl   class
}

// scanner is a two-state scanner. Outside of tags it collects characters into
// runs of equal class; at a '<' it switches to tag mode and tries to read a
// complete element. If this fails, the '<' is treated as a symbol.
type scanner struct {
	src    string
	pos    int
	plain  bool // do not recognize markup
	tokens []Token
}

func newScanner(src string, plain bool) *scanner {
	return &scanner{src: src, plain: plain}
}

func (sc *scanner) scan() []Token {
	for sc.pos < len(sc.src) {
		if !sc.plain && sc.src[sc.pos] == '<' {
			if tok, ok := sc.element(); ok {
				sc.tokens = append(sc.tokens, tok)
				continue
			}
			tracer().Debugf("no complete element at position %d, '<' is a symbol", sc.pos)
		}
		sc.extend(sc.unit())
	}
	return sc.tokens
}

// extend appends a unit to the current run or starts a new one.
func (sc *scanner) extend(u unit) {
	k := u.cl.kind()
	if n := len(sc.tokens); n > 0 && sc.tokens[n-1].Kind == k {
		sc.tokens[n-1].Raw += u.raw
		sc.tokens[n-1].Text += u.text
		return
	}
	sc.tokens = append(sc.tokens, Token{Kind: k, Raw: u.raw, Text: u.text})
}

// unit reads the next character, decoding entity references.
func (sc *scanner) unit() unit {
	if sc.src[sc.pos] == '&' {
		if n, lit, known := entity.Reference(sc.src, sc.pos); n > 0 {
			raw := sc.src[sc.pos : sc.pos+n]
			sc.pos += n
			if known {
				return unit{raw: raw, text: lit, cl: classOf(lit)}
			}
			// unknown references will be resolved by the HTML parser, as in a browser
			text := html.UnescapeString(raw)
			if text == raw {
				return unit{raw: raw, text: raw, cl: clWord}
			}
			return unit{raw: raw, text: text, cl: classOf(text)}
		}
		if n, text := legacyReference(sc.src, sc.pos); n > 0 {
			raw := sc.src[sc.pos : sc.pos+n]
			sc.pos += n
			return unit{raw: raw, text: text, cl: classOf(text)}
		}
	}
	r, w := utf8.DecodeRuneInString(sc.src[sc.pos:])
	raw := sc.src[sc.pos : sc.pos+w]
	sc.pos += w
	return unit{raw: raw, text: string(r), cl: classOfRune(r)}
}

// maxLegacyLength limits the look-ahead for legacy references.
const maxLegacyLength = 8

// legacyReference reads a named reference without the terminating ';' at
// s[i] == '&', e.g. "&eacute". HTML parsers accept these for a set of legacy
// entities. It returns the length of the longest such reference and the
// decoded character.
func legacyReference(s string, i int) (int, string) {
	j := i + 1
	for j < len(s) && j-i <= maxLegacyLength && isASCIIAlnum(s[j]) {
		j++
	}
	for ; j > i+2; j-- {
		raw := s[i:j]
		if text := html.UnescapeString(raw); text != raw && utf8.RuneCountInString(text) == 1 {
			return j - i, text
		}
	}
	return 0, ""
}

func classOf(s string) class {
	r, _ := utf8.DecodeRuneInString(s)
	return classOfRune(r)
}

// Word characters are letters, digits, combining marks, underscores and
// apostrophes (typewriter and typographic).
func classOfRune(r rune) class {
	switch {
	case unicode.IsSpace(r):
		return clSpace
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
		return clWord
	case r == '_', r == '\'', r == '’':
		return clWord
	}
	return clSymbol
}

// --- Tag mode --------------------------------------------------------------

// element tries to read a complete element starting at the current position.
// Nested elements of the same name are counted, i.e. the element ends at the
// end tag matching its opening tag.
func (sc *scanner) element() (Token, bool) {
	start := sc.pos
	name, end, selfClosing, ok := openTag(sc.src, start)
	if !ok {
		return Token{}, false
	}
	if selfClosing || style.IsVoidElement(name) {
		sc.pos = end
		return Token{Kind: Markup, Raw: sc.src[start:end], Tag: name, Void: true}, true
	}
	if end, ok = closeOf(sc.src, end, name); !ok {
		tracer().Debugf("element <%s> at position %d is not closed", name, start)
		return Token{}, false
	}
	sc.pos = end
	return Token{Kind: Markup, Raw: sc.src[start:end], Tag: name}, true
}

// openTag reads an opening tag at s[i] == '<'. It returns the lower-case
// tag name and the position after the closing '>'.
func openTag(s string, i int) (name string, end int, selfClosing bool, ok bool) {
	j := i + 1
	if j >= len(s) || !isASCIILetter(s[j]) {
		return "", 0, false, false
	}
	for j < len(s) && (isASCIILetter(s[j]) || s[j] >= '0' && s[j] <= '9' || s[j] == '-' || s[j] == ':') {
		j++
	}
	name = strings.ToLower(s[i+1 : j])
	if j < len(s) && !isTagSpace(s[j]) && s[j] != '>' && s[j] != '/' {
		return "", 0, false, false
	}
	last := byte(0)
	for ; j < len(s); j++ {
		switch c := s[j]; c {
		case '"', '\'':
			q := strings.IndexByte(s[j+1:], c)
			if q < 0 {
				return "", 0, false, false
			}
			j += q + 1
			last = c
		case '<':
			return "", 0, false, false
		case '>':
			return name, j + 1, last == '/', true
		default:
			if !isTagSpace(c) {
				last = c
			}
		}
	}
	return "", 0, false, false
}

// closeOf finds the end tag for an element named name, starting the search
// at position from. It returns the position after the end tag.
func closeOf(s string, from int, name string) (int, bool) {
	depth := 1
	for i := from; i < len(s); {
		k := strings.IndexByte(s[i:], '<')
		if k < 0 {
			return 0, false
		}
		i += k
		if i+1 < len(s) && s[i+1] == '/' {
			j := i + 2
			for j < len(s) && s[j] != '>' && !isTagSpace(s[j]) {
				j++
			}
			if strings.EqualFold(s[i+2:j], name) {
				for j < len(s) && isTagSpace(s[j]) {
					j++
				}
				if j < len(s) && s[j] == '>' {
					if depth--; depth == 0 {
						return j + 1, true
					}
				}
			}
			i = j
			continue
		}
		if n, end, selfClosing, ok := openTag(s, i); ok {
			if n == name && !selfClosing {
				depth++
			}
			i = end
			continue
		}
		i++
	}
	return 0, false
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCIIAlnum(c byte) bool {
	return isASCIILetter(c) || c >= '0' && c <= '9'
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
