/*
Package trigger starts named animations on user interaction or visibility.

An element selects its trigger with attribute data-ld-trigger:

    click           the parent element is clicked
    hover           the pointer enters the parent; leaving reverses the animation
    load            the window has finished loading
    scroll-in-view  the parent scrolls into view; scrolling out rewinds (default)

Whenever a trigger starts an animation, the element is made visible. Events
are delivered by the host through interface Events, visibility through
interface visibility.Observer.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trigger

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.trigger'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.trigger")
}
