/*
Package splitter splits the content of text containers into words and letters.

Overview

A reveal animation of a heading lets every letter appear on its own, shortly
after its predecessor. For this, every letter has to be an element of its own,
and as letters of a word must not be torn apart by line wrapping, letters are
grouped into word elements:

    <h1>Hi <em class="x">you</em></h1>

becomes

    <h1><span class="word"><span class="letter">H</span><span class="letter">i</span></span>
    <em class="x word"><span class="letter">y</span><span class="letter">o</span>…</em></h1>

The content of a container is rich text. It may contain inline markup, entity
references and line breaks, all of which have to survive the split. Stripping
word and letter wrappers from the output reproduces the visible text of the
input.

Splitting happens in three steps. First, the markup is cut into lines at <br>
elements. Then a scanner partitions every line into a sequence of tokens:
whitespace, runs of word characters, runs of symbols, and complete inline
elements. Recognized entities are decoded during this scan (see package entity).
Finally, tokens are turned into DOM nodes: whitespace stays plain text, words
and symbol runs get wrapped, inline elements are promoted to words by adding
a class. Every code point of a word is wrapped as a letter.

Splitting never fails. Malformed markup degrades to plain text tokenization.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splitter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.splitter'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.splitter")
}
