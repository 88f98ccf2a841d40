/*
Package page wires up the animations of a whole page.

Init selects every element carrying attribute data-ld-animation. Text
containers with value "text-reveal" get a staggered letter reveal (see
package reveal), every other value names an animation of the animation table,
which is started by a trigger (see package trigger). Elements with an unknown
animation or trigger are skipped with a trace message.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"sync"

	"github.com/npillmayer/reveal/animation"
	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/reveal"
	"github.com/npillmayer/reveal/trigger"
	"github.com/npillmayer/reveal/tween"
	"github.com/npillmayer/reveal/visibility"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'reveal.page'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.page")
}

// Host bundles the services a page needs from its environment.
type Host struct {
	Animator   tween.Animator
	Observer   visibility.Observer
	Events     trigger.Events
	Animations *animation.Table // nil selects the built-in table
}

// Page holds the animations of a document.
type Page struct {
	mx        sync.Mutex
	texts     []*reveal.Controller
	tweens    map[*html.Node]tween.Tween
	subs      visibility.Group
	skipped   []*html.Node
	closeOnce sync.Once
}

// Init sets up the animations of every element of doc which carries
// attribute data-ld-animation, in document order.
func Init(doc *html.Node, host Host) *Page {
	p := &Page{tweens: make(map[*html.Node]tween.Tween)}
	table := host.Animations
	if table == nil {
		table = animation.Default()
	}
	elements, err := dom.QueryAll(doc, "["+reveal.AttrAnimation+"]")
	if err != nil {
		tracer().Errorf("cannot select animated elements: %v", err)
		return p
	}
	if dom.Matches(doc, "["+reveal.AttrAnimation+"]") {
		elements = append([]*html.Node{doc}, elements...)
	}
	for _, el := range elements {
		name, _ := dom.Attr(el, reveal.AttrAnimation)
		switch name {
		case "":
			tracer().Infof("no animation given for <%s>", el.Data)
			p.skipped = append(p.skipped, el)
		case reveal.Animation:
			p.texts = append(p.texts, reveal.Attach(el, host.Animator, host.Observer))
		default:
			if !p.animate(el, name, table, host) {
				p.skipped = append(p.skipped, el)
			}
		}
	}
	tracer().Infof("animations initialized: %d text reveals, %d animations, %d skipped",
		len(p.texts), len(p.tweens), len(p.skipped))
	return p
}

// animate creates the tween of a named animation and connects its trigger.
func (p *Page) animate(el *html.Node, name string, table *animation.Table, host Host) bool {
	def, err := table.Lookup(name)
	if err != nil {
		tracer().Infof("skipping <%s>: %v", el.Data, err)
		return false
	}
	attr, _ := dom.Attr(el, reveal.AttrTrigger)
	kind, err := trigger.Parse(attr)
	if err != nil {
		tracer().Infof("skipping <%s>: %v", el.Data, err)
		return false
	}
	dom.SetStyle(el, "display", "inline-block")
	tw := def.Apply(host.Animator, el, reveal.ConfigOf(el).Delay)
	p.tweens[el] = tw
	p.subs = append(p.subs, trigger.Wire(el, tw, kind, trigger.Env{
		Events:   host.Events,
		Observer: host.Observer,
	}))
	return true
}

// Texts returns the controllers of the text reveals.
func (p *Page) Texts() []*reveal.Controller {
	return p.texts
}

// Tween returns the tween of an animated element.
func (p *Page) Tween(el *html.Node) (tween.Tween, bool) {
	p.mx.Lock()
	defer p.mx.Unlock()
	tw, ok := p.tweens[el]
	return tw, ok
}

// Skipped returns the elements which could not be animated.
func (p *Page) Skipped() []*html.Node {
	return p.skipped
}

// Close cancels every observation and event listener of the page.
func (p *Page) Close() {
	p.closeOnce.Do(func() {
		for _, c := range p.texts {
			c.Close()
		}
		p.subs.Cancel()
		tracer().Debugf("page closed")
	})
}
