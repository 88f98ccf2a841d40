/*
Package cssom provides functionality for reading CSS declarations.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We need only a
tiny fraction of it: animations are described by blocks of CSS declarations,
like

    clip-path: inset(0 100% 0 0)

which have to be turned into style property maps, the states a tween
interpolates between.

CSS handling is de-coupled by introducing an interface DeclarationParser.
A concrete implementation may be found in sub-package douceuradapter, which
relies on https://github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'reveal.dom'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.dom")
}
