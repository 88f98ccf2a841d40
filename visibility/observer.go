package visibility

import (
	"sync"

	"golang.org/x/net/html"
)

// Options configure an observation.
type Options struct {
	Threshold  float64 // share of the target which has to be visible, in [0…1]
	RootMargin string  // margin around the viewport, as a CSS margin value
}

// Callback is called with the observed target.
type Callback func(target *html.Node)

// Subscription is returned for an observation or an event listener.
// Cancel ends it; it is safe to call Cancel more than once.
type Subscription interface {
	Cancel()
}

// Observer observes the visibility of elements.
type Observer interface {
	Observe(target *html.Node, opts Options, onVisible, onHidden Callback) Subscription
}

// --- Subscriptions ---------------------------------------------------------

// CancelFunc adapts a function to interface Subscription. The function will
// be called at most once.
func CancelFunc(f func()) Subscription {
	return &cancelOnce{f: f}
}

type cancelOnce struct {
	once sync.Once
	f    func()
}

func (c *cancelOnce) Cancel() {
	c.once.Do(func() {
		if c.f != nil {
			c.f()
		}
	})
}

// Group bundles subscriptions, cancelling all of them at once.
type Group []Subscription

// Cancel cancels every subscription of the group.
func (g Group) Cancel() {
	for _, s := range g {
		if s != nil {
			s.Cancel()
		}
	}
}

// None is a subscription which does nothing.
var None Subscription = Group(nil)
