package splitter

import (
	"strings"

	"github.com/npillmayer/reveal/dom/style"
)

// SplitLines cuts markup into lines at line breaks. Line breaks are newlines
// (LF or CRLF) and line break elements <br>, <br/> and <br />, in any case.
// The line breaks are removed.
//
// Inline elements which are open at a line break are closed at the end of the
// line and re-opened at the start of the next one, i.e. "<em>a<br>b</em>" is
// split into "<em>a</em>" and "<em>b</em>". Elements which are never closed
// are not balanced and stay malformed.
func SplitLines(markup string) []string {
	ls := &lineSplitter{src: markup}
	return ls.split()
}

// openElement is an element open at the current position, together with
// the source of its opening tag.
type openElement struct {
	name string
	tag  string
}

type lineSplitter struct {
	src   string
	open  []openElement
	line  strings.Builder
	lines []string
}

func (ls *lineSplitter) split() []string {
	s := ls.src
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '\n':
			ls.lineBreak()
			i++
		case c == '\r' && i+1 < len(s) && s[i+1] == '\n':
			ls.lineBreak()
			i += 2
		case c == '<':
			i = ls.tag(i)
		default:
			ls.line.WriteByte(c)
			i++
		}
	}
	ls.lines = append(ls.lines, ls.line.String())
	return ls.lines
}

// tag copies a tag at s[i] == '<' and keeps track of open elements. It
// returns the position after the tag.
func (ls *lineSplitter) tag(i int) int {
	s := ls.src
	if end, ok := brAt(s, i); ok {
		ls.lineBreak()
		return end
	}
	if end, name, ok := endTag(s, i); ok {
		ls.close(name)
		ls.line.WriteString(s[i:end])
		return end
	}
	name, end, selfClosing, ok := openTag(s, i)
	if !ok {
		ls.line.WriteByte('<')
		return i + 1
	}
	ls.line.WriteString(s[i:end])
	if !selfClosing && !style.IsVoidElement(name) {
		if _, closed := closeOf(s, end, name); closed {
			ls.open = append(ls.open, openElement{name: name, tag: s[i:end]})
		}
	}
	return end
}

// close pops the innermost open element named name, and every element
// opened inside of it.
func (ls *lineSplitter) close(name string) {
	for k := len(ls.open) - 1; k >= 0; k-- {
		if ls.open[k].name == name {
			ls.open = ls.open[:k]
			return
		}
	}
}

// lineBreak ends the current line. Open elements are closed in reverse order
// and re-opened on the new line.
func (ls *lineSplitter) lineBreak() {
	for k := len(ls.open) - 1; k >= 0; k-- {
		ls.line.WriteString("</" + ls.open[k].name + ">")
	}
	ls.lines = append(ls.lines, ls.line.String())
	ls.line.Reset()
	for _, e := range ls.open {
		ls.line.WriteString(e.tag)
	}
}

// brAt checks for a line break element at s[i] == '<'. It returns the
// position after the element.
func brAt(s string, i int) (int, bool) {
	if i+3 > len(s) || !strings.EqualFold(s[i+1:i+3], "br") {
		return 0, false
	}
	j := i + 3
	for j < len(s) && isTagSpace(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '/' {
		j++
	}
	if j < len(s) && s[j] == '>' {
		return j + 1, true
	}
	return 0, false
}

// endTag checks for an end tag at s[i] == '<'. It returns the position after
// the tag and the lower-case tag name.
func endTag(s string, i int) (int, string, bool) {
	j := i + 2
	if j >= len(s) || s[i+1] != '/' || !isASCIILetter(s[j]) {
		return 0, "", false
	}
	for j < len(s) && s[j] != '>' && !isTagSpace(s[j]) {
		j++
	}
	name := strings.ToLower(s[i+2 : j])
	for j < len(s) && isTagSpace(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '>' {
		return j + 1, name, true
	}
	return 0, "", false
}
