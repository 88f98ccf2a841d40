package splitter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letters renders a word's letters the way the splitter does.
func letters(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(`<span class="letter">` + string(r) + `</span>`)
	}
	return b.String()
}

func word(s string) string {
	return `<span class="word">` + letters(s) + `</span>`
}

func TestWhitespaceIsPreserved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	r := Split("a  b")
	assert.Equal(t, word("a")+"  "+word("b"), r.HTML())
	assert.Len(t, r.Words(), 2)
	assert.Len(t, r.Letters(), 2)
}

func TestMarkupPromotion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	r := Split(`<em class="x">hi</em> there`)
	if !assert.Len(t, r.Words(), 2) {
		t.Logf("tree =\n%s", domdbg.PrintTree(r.Nodes()...))
	}
	em := r.Words()[0]
	assert.Equal(t, "em", em.Data)
	assert.Equal(t, []string{"x", WordClass}, dom.Classes(em))
	assert.Equal(t, `<em class="x word">`+letters("hi")+`</em> `+word("there"), r.HTML())
	assert.Len(t, r.Letters(), 7)
}

func TestMarkupPromotionWithoutClass(t *testing.T) {
	r := Split(`<strong>big</strong>`)
	require.Len(t, r.Words(), 1)
	assert.Equal(t, `<strong class="word">`+letters("big")+`</strong>`, r.HTML())
}

func TestNestedMarkupIsOneWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	src := `<span class="a">x <span>y</span></span>!`
	tokens := Tokenize(src)
	require.Len(t, tokens, 2)
	assert.Equal(t, Markup, tokens[0].Kind)
	assert.Equal(t, `<span class="a">x <span>y</span></span>`, tokens[0].Raw)
	assert.Equal(t, Symbols, tokens[1].Kind)
	r := Split(src)
	assert.Len(t, r.Words(), 2)
	assert.Len(t, r.Letters(), 4) // x, space, y, !
	// nested markup survives inside the promoted element
	assert.Equal(t, `<span class="a word">`+letters("x ")+`<span>`+letters("y")+`</span></span>`+word("!"), r.HTML())
}

func TestEntityScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	tokens := Tokenize("Caf&eacute; &amp; Co.")
	var raw []string
	var kinds []Kind
	for _, tok := range tokens {
		raw = append(raw, tok.Raw)
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []string{"Caf&eacute;", " ", "&amp;", " ", "Co", "."}, raw)
	assert.Equal(t, []Kind{Word, Space, Symbols, Space, Word, Symbols}, kinds)
	assert.Equal(t, "Café", tokens[0].Text)
	assert.Equal(t, "&", tokens[2].Text)
	r := Split("Caf&eacute; &amp; Co.")
	assert.Len(t, r.Words(), 4)
	assert.Len(t, r.Letters(), 8)
}

func TestLegacyReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	tokens := Tokenize("caf&eacute &amp co")
	require.Len(t, tokens, 5)
	assert.Equal(t, "caf&eacute", tokens[0].Raw)
	assert.Equal(t, "café", tokens[0].Text)
	assert.Equal(t, Symbols, tokens[2].Kind)
	assert.Equal(t, "&", tokens[2].Text)
	r := Split("caf&eacute")
	assert.Len(t, r.Letters(), 4)
	assert.Equal(t, word("café"), r.HTML())
	//
	tokens = Tokenize("AT&T")
	assert.Equal(t, "AT", tokens[0].Text)
	assert.Equal(t, "&", tokens[1].Text)
}

func TestLetterCountIsCodePoints(t *testing.T) {
	for _, w := range []string{"café", "naïve", "😀", "日本語", "é"} {
		r := Split(w)
		n := utf8.RuneCountInString(w)
		if len(r.Letters()) != n {
			t.Logf("tree =\n%s", domdbg.PrintTree(r.Nodes()...))
			t.Errorf("expected %q to split into %d letters, have %d", w, n, len(r.Letters()))
		}
		if len(r.Words()) != 1 {
			t.Errorf("expected %q to be a single word, have %d", w, len(r.Words()))
		}
	}
}

func TestDecodedAngleBracketsAreSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	r := Split("a &lt;b&gt; c")
	require.Len(t, r.Words(), 5)
	assert.Equal(t, "<", dom.TextContent(r.Words()[1]))
	assert.Equal(t, "b", dom.TextContent(r.Words()[2]))
	assert.Equal(t, ">", dom.TextContent(r.Words()[3]))
	assert.Contains(t, r.HTML(), `<span class="letter">&lt;</span>`)
}

func TestMalformedMarkupDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	tokens := Tokenize("a <em>b c")
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{Word, Space, Symbols, Word, Symbols, Word, Space, Word}, kinds)
	r := Split("a <em>b c")
	assert.Equal(t, "a <em>b c", text(r))
}

func TestHeterogeneousRunsStaySeparate(t *testing.T) {
	r := Split("Hello, world!")
	var words []string
	for _, w := range r.Words() {
		words = append(words, dom.TextContent(w))
	}
	assert.Equal(t, []string{"Hello", ",", "world", "!"}, words)
	assert.Equal(t, word("it’s"), Split("it&rsquo;s").HTML())
}

func TestLines(t *testing.T) {
	r := Split("one<br>two<BR />three<br/>")
	require.Len(t, r.Lines(), 4)
	assert.Equal(t, word("one")+"<br/>"+word("two")+"<br/>"+word("three")+"<br/>", r.HTML())
	assert.Len(t, r.Words(), 3)
}

func TestNewlinesSplitLines(t *testing.T) {
	r := Split("first line\nsecond line")
	require.Len(t, r.Lines(), 2)
	assert.Equal(t, word("first")+" "+word("line")+"<br/>"+word("second")+" "+word("line"), r.HTML())
	//
	r = Split("a\r\nb")
	require.Len(t, r.Lines(), 2)
	assert.Equal(t, word("a")+"<br/>"+word("b"), r.HTML())
}

func TestSplitLinesBalancesMarkup(t *testing.T) {
	for _, c := range []struct {
		src   string
		lines []string
	}{
		{"a<br>b", []string{"a", "b"}},
		{"<em>one<br>two</em>", []string{"<em>one</em>", "<em>two</em>"}},
		{`<a href="/x">a <b>b<br/>c</b> d</a>`, []string{`<a href="/x">a <b>b</b></a>`, `<a href="/x"><b>c</b> d</a>`}},
		{"<em>x</em>\ny", []string{"<em>x</em>", "y"}},
		{"a <em>b\nc", []string{"a <em>b", "c"}},
		{`<span title="a<br>b">t</span>`, []string{`<span title="a<br>b">t</span>`}},
	} {
		assert.Equal(t, c.lines, SplitLines(c.src), "lines of %q", c.src)
	}
}

func TestMarkupAcrossLineBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	r := Split("<em>one<br>two</em>")
	require.Len(t, r.Lines(), 2)
	assert.Len(t, r.Words(), 2)
	assert.Equal(t, `<em class="word">`+letters("one")+`</em><br/><em class="word">`+letters("two")+`</em>`, r.HTML())
	assert.Equal(t, "onetwo", text(r))
}

func TestVoidElementsAreKept(t *testing.T) {
	r := Split(`a <img src="x.png"> b`)
	assert.Len(t, r.Words(), 2)
	assert.Equal(t, word("a")+` <img src="x.png"/> `+word("b"), r.HTML())
}

func TestTokenizeIsLossless(t *testing.T) {
	for _, line := range []string{
		"",
		"plain text",
		"  leading and trailing  ",
		`<em class="x">hi</em> there`,
		"Caf&eacute; &amp; Co.",
		"a <em>b c",
		"x < y > z",
		"&amp;amp; &#39;quoted&#39;",
		"if a<b then c>d",
	} {
		var b strings.Builder
		for _, tok := range Tokenize(line) {
			b.WriteString(tok.Raw)
		}
		if b.String() != line {
			t.Errorf("expected tokens of %q to concatenate to the line, got %q", line, b.String())
		}
	}
}

// text returns the visible text of a split result.
func text(r *Result) string {
	var b strings.Builder
	for _, n := range r.Nodes() {
		b.WriteString(dom.TextContent(n))
	}
	return b.String()
}

func TestRoundTripPreservesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	for _, src := range []string{
		"Hello world",
		"a  b\tc",
		`<em class="x">hi</em> there`,
		"Caf&eacute; &amp; Co.",
		"&amp;amp;",
		"Tom&nbsp;&amp;&nbsp;Jerry&hellip;",
		`He said &quot;hi&quot; &mdash; then left.`,
		`<a href="/x">link <b>bold</b></a>, done`,
		"line one<br>line two",
		"line one\nline two",
		"<em>one<br>two</em>",
		`<a href="/x">a <b>b<br/>c</b> d</a>`,
		"1 &lt; 2 &gt; 0",
		"caf&eacute au lait &amp co",
	} {
		nodes, err := dom.ParseFragment(src)
		require.NoError(t, err)
		var want strings.Builder
		for _, n := range nodes {
			want.WriteString(dom.TextContent(n))
		}
		// newlines are replaced by <br>, which has no text
		wanted := strings.ReplaceAll(want.String(), "\n", "")
		r := Split(src)
		if got := text(r); got != wanted {
			t.Logf("tree =\n%s", domdbg.PrintTree(r.Nodes()...))
			t.Errorf("expected visible text of %q to be %q, is %q", src, wanted, got)
		}
	}
}

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.splitter")
	defer teardown()
	//
	nodes, err := dom.ParseFragment(`<h1 data-ld-animation="text-reveal">Hi <b>you</b>!</h1>`)
	require.NoError(t, err)
	h1 := nodes[0]
	r := Apply(h1)
	assert.Len(t, r.Words(), 3)
	letters, err := dom.QueryAll(h1, "."+LetterClass)
	require.NoError(t, err)
	require.Len(t, letters, len(r.Letters()))
	for i := range letters {
		assert.Same(t, r.Letters()[i], letters[i], "letters must be in document order")
	}
	assert.Equal(t, "Hi you!", dom.TextContent(h1))
	assert.Empty(t, Apply(nil).Letters())
}
