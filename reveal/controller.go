package reveal

import (
	"sync"

	"github.com/npillmayer/reveal/css"
	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/splitter"
	"github.com/npillmayer/reveal/tween"
	"github.com/npillmayer/reveal/visibility"
	"golang.org/x/net/html"
)

// Parameters of the letter tweens.
const (
	Duration  = 0.2
	Ease      = "power3.out"
	Threshold = 0.1 // visible share of the container which starts the reveal
)

// YOffset is the vertical offset letters start from, relative to their height.
var YOffset = css.Percentage(30)

// hiddenState is the state letters are in before they are revealed.
func hiddenState() tween.Vars {
	return tween.Props("y", YOffset.String(), "opacity", "0")
}

func shownState() tween.Vars {
	return tween.Props("y", css.Zero().String(), "opacity", "1")
}

// Controller drives the reveal of a single text container. Visibility
// callbacks may arrive on any goroutine; they are serialized.
type Controller struct {
	mx       sync.Mutex
	el       *html.Node
	result   *splitter.Result
	letters  []*html.Node
	config   Config
	stagger  float64
	animator tween.Animator
	sub      visibility.Subscription
	closed   bool
}

// Attach splits the content of el into words and letters and starts observing
// its visibility. The container is split once; visibility changes only
// restart or reset the tweens of its letters. Without an observer the
// container is split, but its letters are never animated.
func Attach(el *html.Node, animator tween.Animator, observer visibility.Observer) *Controller {
	c := &Controller{
		el:       el,
		animator: animator,
		config:   ConfigOf(el),
	}
	c.result = splitter.Apply(el)
	letters, err := dom.QueryAll(el, "."+splitter.LetterClass)
	if err != nil {
		tracer().Errorf("cannot select letters: %v", err)
		letters = c.result.Letters()
	}
	c.letters = letters
	c.stagger = c.config.StaggerFor(len(letters))
	tracer().Debugf("text reveal of %d letters, delay=%gs, stagger=%gs",
		len(letters), c.config.Delay, c.stagger)
	if observer == nil {
		tracer().Errorf("no host support for observing visibility, text reveal is inactive")
		c.sub = visibility.None
		return c
	}
	c.sub = observer.Observe(el, visibility.Options{Threshold: Threshold}, c.visible, c.hidden)
	return c
}

// visible plays the reveal, from the hidden state of the letters.
func (c *Controller) visible(*html.Node) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.closed {
		return
	}
	to := shownState().With(tween.Timing{
		Duration: Duration,
		Stagger:  c.stagger,
		Ease:     Ease,
		Delay:    c.config.Delay,
	})
	c.animator.FromTo(c.letters, hiddenState(), to)
}

// hidden stops running tweens and resets the letters.
func (c *Controller) hidden(*html.Node) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.closed {
		return
	}
	c.animator.KillTweensOf(c.letters)
	c.animator.Set(c.letters, hiddenState())
}

// Close stops observing the container. Visibility changes arriving after
// Close are ignored. Close may be called more than once.
func (c *Controller) Close() {
	c.mx.Lock()
	c.closed = true
	c.mx.Unlock()
	c.sub.Cancel()
}

// Letters returns the letters of the container, in document order.
func (c *Controller) Letters() []*html.Node {
	return c.letters
}

// Result returns the outcome of splitting the container.
func (c *Controller) Result() *splitter.Result {
	return c.result
}

// Config returns the configuration read from the container's attributes.
func (c *Controller) Config() Config {
	return c.config
}

// Stagger returns the effective stagger of the letter tweens.
func (c *Controller) Stagger() float64 {
	return c.stagger
}

// Prerender splits el and puts its letters into the hidden state, without
// observing anything. It is used for server-side rendering of pages.
func Prerender(el *html.Node, animator tween.Animator) *splitter.Result {
	r := splitter.Apply(el)
	if len(r.Letters()) > 0 {
		animator.Set(r.Letters(), hiddenState())
	}
	return r
}
