package trigger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/tween"
	"github.com/npillmayer/reveal/visibility"
	"golang.org/x/net/html"
)

// ErrUnknownTrigger is returned for unrecognized trigger names.
var ErrUnknownTrigger = errors.New("unknown trigger")

// Kind is a kind of trigger.
type Kind int8

// Trigger kinds.
const (
	ScrollInView Kind = iota
	Click
	Hover
	Load
)

func (k Kind) String() string {
	switch k {
	case ScrollInView:
		return "scroll-in-view"
	case Click:
		return "click"
	case Hover:
		return "hover"
	case Load:
		return "load"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Parse returns the trigger kind for a value of attribute data-ld-trigger.
// An empty value selects ScrollInView.
func Parse(name string) (Kind, error) {
	switch strings.TrimSpace(name) {
	case "", "scroll-in-view":
		return ScrollInView, nil
	case "click":
		return Click, nil
	case "hover":
		return Hover, nil
	case "load":
		return Load, nil
	}
	return ScrollInView, fmt.Errorf("%w: %q", ErrUnknownTrigger, name)
}

// Threshold is the visible share of the parent which starts a scroll-in-view
// trigger.
const Threshold = 0.01

// RootMargin shrinks the viewport of scroll-in-view triggers to its upper
// half, i.e. elements start when their parent reaches the middle of the
// viewport.
const RootMargin = "0% 0px -50% 0px"

// DOM events a trigger listens to.
const (
	EventClick      = "click"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventLoad       = "load"
)

// Events delivers DOM events. A nil target denotes the window.
type Events interface {
	Listen(target *html.Node, event string, fn func()) visibility.Subscription
}

// Env is the environment of triggers, provided by the host.
type Env struct {
	Events   Events
	Observer visibility.Observer
}

// Wire connects the tween of element el to a trigger. The returned
// subscription disconnects it.
func Wire(el *html.Node, tw tween.Tween, kind Kind, env Env) visibility.Subscription {
	if el == nil || tw == nil {
		return visibility.None
	}
	parent := el.Parent
	if parent == nil && kind != Load {
		tracer().Errorf("<%s> has no parent, cannot wire %s trigger", el.Data, kind)
		return visibility.None
	}
	play := func() {
		Show(el)
		tw.Play()
	}
	if kind == ScrollInView && env.Observer == nil || kind != ScrollInView && env.Events == nil {
		tracer().Errorf("no host support for %s trigger", kind)
		return visibility.None
	}
	switch kind {
	case Click:
		return env.Events.Listen(parent, EventClick, play)
	case Hover:
		return visibility.Group{
			env.Events.Listen(parent, EventMouseEnter, play),
			env.Events.Listen(parent, EventMouseLeave, tw.Reverse),
		}
	case Load:
		return env.Events.Listen(nil, EventLoad, play)
	}
	return env.Observer.Observe(parent, visibility.Options{Threshold: Threshold, RootMargin: RootMargin},
		func(*html.Node) { play() },
		func(*html.Node) {
			tw.Pause()
			tw.Seek(0)
		},
	)
}

// Show makes an element visible.
func Show(el *html.Node) {
	dom.SetStyle(el, "visibility", "visible")
}
