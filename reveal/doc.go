/*
Package reveal implements the staggered text reveal effect.

A text container opts in with

    <h1 data-ld-animation="text-reveal" data-ld-delay="300" data-ld-stagger="0">

Attach splits the container into words and letters (see package splitter)
and observes its visibility. Whenever the container comes into view, its
letters slide up and fade in, one after another. When it leaves the view, all
running tweens of the letters are stopped and the letters are reset, so the
effect will play again the next time.

Attribute data-ld-delay gives a delay in milliseconds. Attribute data-ld-stagger
gives the time between the start of consecutive letters in seconds, where 0
selects a stagger depending on the number of letters. Attribute values are
read like a browser's parseFloat does: a leading number is used, anything
after it is ignored, and missing or garbage values count as 0.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reveal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.text'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.text")
}
