package tween

import (
	"fmt"
	"strings"

	"github.com/npillmayer/reveal/css"
	"github.com/npillmayer/reveal/dom/style"
	"golang.org/x/net/html"
)

// Timing holds the timing parameters of a tween. Durations and delays are
// in seconds.
type Timing struct {
	Duration float64
	Delay    float64
	Stagger  float64 // offset between the start of consecutive targets
	Ease     string  // name of an easing function, e.g. "power3.out"
	Paused   bool    // create the tween without starting it
}

// Vars are the variables of a tween: the properties to tween, and timing.
type Vars struct {
	Props *style.PropertyMap
	Timing
}

// Props is a convenience function to create vars from key-value pairs,
// e.g. Props("opacity", "0", "y", "30%").
func Props(kv ...string) Vars {
	pmap := style.NewPropertyMap()
	for i := 0; i+1 < len(kv); i += 2 {
		pmap.Add(kv[i], style.Property(kv[i+1]))
	}
	return Vars{Props: pmap}
}

// With returns a copy of v with timing t.
func (v Vars) With(t Timing) Vars {
	v.Timing = t
	return v
}

// Property returns the value of a tween property.
func (v Vars) Property(key string) (style.Property, bool) {
	if v.Props == nil {
		return style.NullStyle, false
	}
	return v.Props.Property(key)
}

// Offset interprets a tween property as a CSS dimension, as is the case for
// offsets like y or x.
func (v Vars) Offset(key string) (css.DimenT, error) {
	p, ok := v.Property(key)
	if !ok {
		return css.DimenT{}, fmt.Errorf("%w: no property %q", css.ErrNotADimension, key)
	}
	return css.ParseDimen(p.String())
}

// OffsetKeys are the tween properties which are offsets, given as CSS
// dimensions.
var OffsetKeys = []string{"x", "y"}

// Normalize checks the offsets of v and rewrites them in canonical form,
// e.g. "10" to "10px". It returns an error wrapping css.ErrNotADimension
// if an offset is neither a length nor a percentage. v is not modified.
func (v Vars) Normalize() (Vars, error) {
	if v.Props == nil {
		return v, nil
	}
	props := style.NewPropertyMap().Merge(v.Props)
	for _, key := range OffsetKeys {
		if _, ok := props.Property(key); !ok {
			continue
		}
		d, err := v.Offset(key)
		if err != nil {
			return v, fmt.Errorf("offset %s: %w", key, err)
		}
		if !css.IsOffset(d) {
			return v, fmt.Errorf("offset %s: %w: %s is not a length", key, css.ErrNotADimension, d)
		}
		props.Add(key, style.Property(d.String()))
	}
	v.Props = props
	return v, nil
}

func (v Vars) String() string {
	var b strings.Builder
	b.WriteString("{")
	if v.Props != nil {
		for i, kv := range v.Props.Properties() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(kv.Key + ": " + kv.Value.String())
		}
	}
	if v.Duration != 0 {
		fmt.Fprintf(&b, ", duration: %g", v.Duration)
	}
	if v.Delay != 0 {
		fmt.Fprintf(&b, ", delay: %g", v.Delay)
	}
	if v.Stagger != 0 {
		fmt.Fprintf(&b, ", stagger: %g", v.Stagger)
	}
	if v.Ease != "" {
		fmt.Fprintf(&b, ", ease: %s", v.Ease)
	}
	if v.Paused {
		b.WriteString(", paused")
	}
	b.WriteString("}")
	return b.String()
}

// Tween is a handle to a running or paused tween.
type Tween interface {
	Play()
	Pause()
	Reverse()
	Seek(progress float64) // progress in [0…1]
}

// Animator creates tweens. Implementations wrap a tweening engine.
type Animator interface {
	// From tweens targets from the values in vars to their current state.
	From(targets []*html.Node, vars Vars) Tween
	// FromTo tweens targets from one state to another.
	FromTo(targets []*html.Node, from, to Vars) Tween
	// Set applies properties immediately.
	Set(targets []*html.Node, vars Vars)
	// KillTweensOf stops every tween of targets.
	KillTweensOf(targets []*html.Node)
}
