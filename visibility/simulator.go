package visibility

import (
	"sync"

	"golang.org/x/net/html"
)

// Simulator is an Observer where the visible share of targets is set
// explicitly by calling SetRatio. It is safe for concurrent use.
type Simulator struct {
	mx     sync.Mutex
	serial int
	obs    map[int]*observation
}

type observation struct {
	target    *html.Node
	opts      Options
	onVisible Callback
	onHidden  Callback
	state     int8 // 0 = unknown, 1 = visible, -1 = hidden
}

var _ Observer = &Simulator{}

// NewSimulator creates a simulator without observations.
func NewSimulator() *Simulator {
	return &Simulator{obs: make(map[int]*observation)}
}

// Observe is part of interface Observer.
func (sim *Simulator) Observe(target *html.Node, opts Options, onVisible, onHidden Callback) Subscription {
	if target == nil {
		tracer().Errorf("cannot observe nil target")
		return None
	}
	sim.mx.Lock()
	defer sim.mx.Unlock()
	sim.serial++
	id := sim.serial
	sim.obs[id] = &observation{
		target:    target,
		opts:      opts,
		onVisible: onVisible,
		onHidden:  onHidden,
	}
	tracer().Debugf("observing <%s> with threshold %g", target.Data, opts.Threshold)
	return CancelFunc(func() {
		sim.mx.Lock()
		defer sim.mx.Unlock()
		delete(sim.obs, id)
	})
}

// SetRatio sets the visible share of a target. Observations of target are
// notified if the ratio crosses their threshold, or if this is the first
// ratio they see. A ratio of 0 is never visible.
//
// Callbacks are called synchronously in the order of the observations, but
// without holding any lock, i.e. callbacks may cancel their subscription.
func (sim *Simulator) SetRatio(target *html.Node, ratio float64) {
	var calls []func()
	sim.mx.Lock()
	for id := 1; id <= sim.serial; id++ {
		o, ok := sim.obs[id]
		if !ok || o.target != target {
			continue
		}
		visible := ratio > 0 && ratio >= o.opts.Threshold
		switch {
		case visible && o.state != 1:
			o.state = 1
			if o.onVisible != nil {
				calls = append(calls, bind(o.onVisible, target))
			}
		case !visible && o.state != -1:
			o.state = -1
			if o.onHidden != nil {
				calls = append(calls, bind(o.onHidden, target))
			}
		}
	}
	sim.mx.Unlock()
	tracer().Debugf("<%s> is %.0f%% visible, %d callback(s)", target.Data, ratio*100, len(calls))
	for _, call := range calls {
		call()
	}
}

// Show makes target fully visible.
func (sim *Simulator) Show(target *html.Node) {
	sim.SetRatio(target, 1)
}

// Hide moves target out of view.
func (sim *Simulator) Hide(target *html.Node) {
	sim.SetRatio(target, 0)
}

// Observations returns the number of active observations of target.
func (sim *Simulator) Observations(target *html.Node) int {
	sim.mx.Lock()
	defer sim.mx.Unlock()
	n := 0
	for _, o := range sim.obs {
		if o.target == target {
			n++
		}
	}
	return n
}

// Threshold returns the threshold of the first active observation of target.
func (sim *Simulator) Threshold(target *html.Node) (float64, bool) {
	opts, ok := sim.Options(target)
	return opts.Threshold, ok
}

// Options returns the options of the first active observation of target.
func (sim *Simulator) Options(target *html.Node) (Options, bool) {
	sim.mx.Lock()
	defer sim.mx.Unlock()
	for id := 1; id <= sim.serial; id++ {
		if o, ok := sim.obs[id]; ok && o.target == target {
			return o.opts, true
		}
	}
	return Options{}, false
}

func bind(cb Callback, target *html.Node) func() {
	return func() { cb(target) }
}
