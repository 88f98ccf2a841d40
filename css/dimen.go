/*
Package css provides CSS value types for tween properties.

Offsets of tweens are given as CSS dimensions, e.g. "30%" for a letter
sliding in from below, or "10px". DimenT is an option type for such values,
which may be pattern-matched by clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004

	dimenPercent uint32 = 0x0900
)

// ErrNotADimension is returned for values which cannot be parsed as a dimension.
var ErrNotADimension = errors.New("not a CSS dimension")

// pxPerPT is the ratio of CSS pixels to typographic points (96 px = 72 pt).
const pxPerPT = 96.0 / 72.0

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	n     int // percentage
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage int
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// Zero is a fixed dimension of 0.
func Zero() DimenT {
	return JustDimen(0)
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n int) DimenT {
	return DimenT{n: n, flags: dimenPercent}
}

// Pixels creates a fixed CSS dimension from a value in CSS pixels.
func Pixels(px float64) DimenT {
	return JustDimen(dimen.DU(px / pxPerPT * float64(dimen.PT)))
}

// ParseDimen parses a CSS dimension value. Supported are the keywords
// "auto", "inherit" and "initial", integer percentages, and lengths in
// px or pt. Unit-less numbers are interpreted as pixels, as tweening
// engines do.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "":
		return DimenT{}, ErrNotADimension
	}
	switch {
	case strings.HasSuffix(s, "%"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil {
			return DimenT{}, fmt.Errorf("%w: %q", ErrNotADimension, s)
		}
		return Percentage(n), nil
	case strings.HasSuffix(s, "pt"):
		x, err := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("%w: %q", ErrNotADimension, s)
		}
		return JustDimen(dimen.DU(x * float64(dimen.PT))), nil
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("%w: %q", ErrNotADimension, s)
	}
	return Pixels(x), nil
}

// String renders a dimension as a CSS value. Fixed dimensions are output in
// CSS pixels, zero is output without a unit.
func (d DimenT) String() string {
	switch {
	case d.flags&dimenPercent == dimenPercent:
		return strconv.Itoa(d.n) + "%"
	case d.flags == dimenAuto:
		return "auto"
	case d.flags == dimenInherit:
		return "inherit"
	case d.flags == dimenInitial:
		return "initial"
	case d.flags == dimenAbsolute:
		if d.d == 0 {
			return "0"
		}
		px := math.Round(float64(d.d)/float64(dimen.PT)*pxPerPT*100) / 100
		return strconv.FormatFloat(px, 'f', -1, 64) + "px"
	}
	return ""
}

// IsOffset is true for dimensions usable as the offset of a tween, i.e. fixed
// lengths and percentages.
func IsOffset(d DimenT) bool {
	return DimenPattern[bool](d).OneOf(DimenPatterns[bool]{
		Just:    true,
		Percent: true,
	})
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result value for each kind of dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

// DimenPattern starts an expression selecting a value by the kind of d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern value for the kind of the dimension, or the
// default value.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&dimenPercent == dimenPercent:
		return patterns.Percent
	case m.dimen.flags == dimenAuto:
		return patterns.Auto
	case m.dimen.flags == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags == dimenInitial:
		return patterns.Initial
	case m.dimen.flags == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}
