package tween

import (
	"fmt"
	"sync"

	"github.com/npillmayer/reveal/dom"
	"golang.org/x/net/html"
)

// Op is an operation of an Animator.
type Op int8

// Animator operations.
const (
	OpFrom Op = iota
	OpFromTo
	OpSet
	OpKill
)

func (op Op) String() string {
	switch op {
	case OpFrom:
		return "from"
	case OpFromTo:
		return "fromTo"
	case OpSet:
		return "set"
	case OpKill:
		return "killTweensOf"
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Call is a recorded call to an Animator.
type Call struct {
	Op      Op
	Targets []*html.Node
	From    Vars
	To      Vars
	Tween   *Recorded // nil for OpSet and OpKill
}

func (c Call) String() string {
	switch c.Op {
	case OpFromTo:
		return fmt.Sprintf("%s(%d targets, %s, %s)", c.Op, len(c.Targets), c.From, c.To)
	case OpKill:
		return fmt.Sprintf("%s(%d targets)", c.Op, len(c.Targets))
	}
	return fmt.Sprintf("%s(%d targets, %s)", c.Op, len(c.Targets), c.From)
}

// Recorder is an Animator which records calls. It is safe for concurrent use.
type Recorder struct {
	mx    sync.Mutex
	calls []Call
}

var _ Animator = &Recorder{}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Call) {
	r.mx.Lock()
	defer r.mx.Unlock()
	tracer().Debugf("tween %s", c)
	r.calls = append(r.calls, c)
}

// From is part of interface Animator.
func (r *Recorder) From(targets []*html.Node, vars Vars) Tween {
	t := newRecorded(vars.Paused)
	r.record(Call{Op: OpFrom, Targets: targets, From: vars, Tween: t})
	return t
}

// FromTo is part of interface Animator.
func (r *Recorder) FromTo(targets []*html.Node, from, to Vars) Tween {
	t := newRecorded(to.Paused)
	r.record(Call{Op: OpFromTo, Targets: targets, From: from, To: to, Tween: t})
	return t
}

// Set is part of interface Animator. Properties are written to the inline
// style of the targets.
func (r *Recorder) Set(targets []*html.Node, vars Vars) {
	r.record(Call{Op: OpSet, Targets: targets, From: vars})
	if vars.Props == nil {
		return
	}
	for _, n := range targets {
		for _, kv := range vars.Props.Properties() {
			dom.SetStyle(n, kv.Key, kv.Value.String())
		}
	}
}

// KillTweensOf is part of interface Animator. Recorded tweens having one of
// the targets in common are marked as killed.
func (r *Recorder) KillTweensOf(targets []*html.Node) {
	r.record(Call{Op: OpKill, Targets: targets})
	r.mx.Lock()
	defer r.mx.Unlock()
	for _, c := range r.calls {
		if c.Tween != nil && overlaps(c.Targets, targets) {
			c.Tween.kill()
		}
	}
}

func overlaps(a, b []*html.Node) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mx.Lock()
	defer r.mx.Unlock()
	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Last returns the most recent call, if any.
func (r *Recorder) Last() (Call, bool) {
	r.mx.Lock()
	defer r.mx.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.calls = r.calls[:0]
}

// --- Recorded tweens -------------------------------------------------------

// State is the playback state of a recorded tween.
type State int8

// States of recorded tweens.
const (
	Paused State = iota
	Playing
	Reversed
	Killed
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case Reversed:
		return "reversed"
	case Killed:
		return "killed"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Recorded is a tween created by a Recorder.
type Recorded struct {
	mx       sync.Mutex
	state    State
	progress float64
	log      []string
}

var _ Tween = &Recorded{}

func newRecorded(paused bool) *Recorded {
	t := &Recorded{state: Playing}
	if paused {
		t.state = Paused
	}
	return t
}

func (t *Recorded) transition(name string, s State) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.log = append(t.log, name)
	if t.state != Killed {
		t.state = s
	}
}

// Play is part of interface Tween.
func (t *Recorded) Play() { t.transition("play", Playing) }

// Pause is part of interface Tween.
func (t *Recorded) Pause() { t.transition("pause", Paused) }

// Reverse is part of interface Tween.
func (t *Recorded) Reverse() { t.transition("reverse", Reversed) }

// Seek is part of interface Tween.
func (t *Recorded) Seek(progress float64) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.log = append(t.log, fmt.Sprintf("seek(%g)", progress))
	t.progress = progress
}

func (t *Recorded) kill() {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.log = append(t.log, "kill")
	t.state = Killed
}

// State returns the playback state.
func (t *Recorded) State() State {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.state
}

// Progress returns the position set by the last Seek.
func (t *Recorded) Progress() float64 {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.progress
}

// Log returns the method calls of the tween, e.g. ["play", "seek(0)"].
func (t *Recorded) Log() []string {
	t.mx.Lock()
	defer t.mx.Unlock()
	log := make([]string, len(t.log))
	copy(log, t.log)
	return log
}
