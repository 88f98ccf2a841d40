/*
Package visibility abstracts observation of an element's visibility in the
viewport.

Hosts implement Observer, e.g. on top of a browser's intersection observer.
Observers call onVisible whenever the visible share of a target reaches
the threshold of the observation, and onHidden when it drops below. Callbacks
may fire repeatedly. Clients must expect them to fire on any goroutine.

Simulator is an Observer for tests and for server-side tools, where the
visible share of targets is set explicitly.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package visibility

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reveal.visibility'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.visibility")
}
