/*
Package animation holds the table of named reveal animations.

Elements of a page select an animation by name:

    <img src="hero.png" data-ld-animation="reveal-up" data-ld-delay="200">

Every animation is a tween of the element's clip path, created paused. A
trigger (see package trigger) starts it later on. Animations use one of two
strategies: From tweens an element from a given state to its current state,
FromTo tweens between two explicit states.

The default table is embedded into the binary. A different table may be
loaded from YAML, where every entry has the form

    reveal-circle:
      strategy: fromTo
      from: "clip-path: circle(0%)"
      to: "clip-path: circle(75%)"
      timing: { duration: 1, ease: power3.out, paused: true }

Property blocks are CSS declarations. Tables are immutable after loading.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package animation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.animation'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.animation")
}
