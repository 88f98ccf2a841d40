/*
Package tween defines the interface to a tweening engine.

The tweening engine itself is a black box to us. Reveal effects and named
animations talk to an Animator, which creates tweens over a list of target
elements. Tween properties are given as a style.PropertyMap, timing is given
separately.

Recorder is an Animator which does not animate anything, but records every
call and maintains the playback state of its tweens. Set-calls are applied to
the inline style of the targets, which makes the recorder useful for
pre-rendering the initial state of a page, and for tests.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tween

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.tween'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.tween")
}
