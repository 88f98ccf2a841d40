package trigger

import (
	"sync"

	"github.com/npillmayer/reveal/visibility"
	"golang.org/x/net/html"
)

// Dispatcher is an implementation of Events where events are fired
// explicitly. It is used for tests and for server-side tools. It is safe
// for concurrent use.
type Dispatcher struct {
	mx        sync.Mutex
	serial    int
	listeners map[int]listener
}

type listener struct {
	target *html.Node
	event  string
	fn     func()
}

var _ Events = &Dispatcher{}

// NewDispatcher creates a dispatcher without listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[int]listener)}
}

// Listen is part of interface Events.
func (d *Dispatcher) Listen(target *html.Node, event string, fn func()) visibility.Subscription {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.serial++
	id := d.serial
	d.listeners[id] = listener{target: target, event: event, fn: fn}
	return visibility.CancelFunc(func() {
		d.mx.Lock()
		defer d.mx.Unlock()
		delete(d.listeners, id)
	})
}

// Fire delivers an event to the listeners of target, in the order of
// registration. It returns the number of listeners called.
func (d *Dispatcher) Fire(target *html.Node, event string) int {
	d.mx.Lock()
	var fns []func()
	for id := 1; id <= d.serial; id++ {
		if l, ok := d.listeners[id]; ok && l.target == target && l.event == event {
			fns = append(fns, l.fn)
		}
	}
	d.mx.Unlock()
	tracer().Debugf("event %s: %d listener(s)", event, len(fns))
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Listeners returns the number of active listeners.
func (d *Dispatcher) Listeners() int {
	d.mx.Lock()
	defer d.mx.Unlock()
	return len(d.listeners)
}
