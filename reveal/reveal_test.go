package reveal

import (
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/tween"
	"github.com/npillmayer/reveal/visibility"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseNumber(t *testing.T) {
	for input, expected := range map[string]float64{
		"300":     300,
		"  300ms": 300,
		"0.02":    0.02,
		".5s":     0.5,
		"-12.5":   -12.5,
		"1e3":     1000,
		"1e":      1,
		"7.":      7,
		"+4x":     4,
	} {
		v, ok := ParseNumber(input).Get()
		if !ok || v != expected {
			t.Errorf("expected %q to parse to %g, have %v", input, expected, ParseNumber(input))
		}
	}
	for _, input := range []string{"", "abc", "ms300", ".", "-", "e5"} {
		if !ParseNumber(input).IsNothing() {
			t.Errorf("expected %q to be unparsable, have %v", input, ParseNumber(input))
		}
	}
	v, _ := ParseNumber("-Infinity").Get()
	assert.True(t, math.IsInf(v, -1))
}

func TestConfigOf(t *testing.T) {
	el, err := dom.ParseElement(`<p data-ld-delay="300" data-ld-stagger="0.02s">x</p>`)
	require.NoError(t, err)
	c := ConfigOf(el)
	assert.InDelta(t, 0.3, c.Delay, 1e-9)
	assert.Equal(t, 0.02, c.Stagger)
	//
	el, err = dom.ParseElement(`<p data-ld-delay="soon">x</p>`)
	require.NoError(t, err)
	assert.Equal(t, Config{}, ConfigOf(el))
}

func TestAutoStagger(t *testing.T) {
	assert.Equal(t, 0.05, AutoStagger(10), "1/10 is clamped to the maximum")
	assert.Equal(t, 0.01, AutoStagger(100))
	assert.Equal(t, 0.005, AutoStagger(1000), "1/1000 is clamped to the minimum")
	assert.Equal(t, 0.05, AutoStagger(0))
	assert.Equal(t, 0.1, Config{Stagger: 0.1}.StaggerFor(10))
	assert.Equal(t, 0.05, Config{}.StaggerFor(10))
}

func attach(t *testing.T, markup string) (*Controller, *tween.Recorder, *visibility.Simulator, *html.Node) {
	el, err := dom.ParseElement(markup)
	require.NoError(t, err)
	rec, sim := tween.NewRecorder(), visibility.NewSimulator()
	return Attach(el, rec, sim), rec, sim, el
}

func TestRevealOnVisible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.text")
	defer teardown()
	//
	c, rec, sim, el := attach(t,
		`<h1 data-ld-animation="text-reveal" data-ld-delay="200">Hello, <em>you</em></h1>`)
	require.Len(t, c.Letters(), 9)
	assert.Equal(t, 0.05, c.Stagger())
	th, ok := sim.Threshold(el)
	require.True(t, ok)
	assert.Equal(t, Threshold, th)
	//
	sim.SetRatio(el, 0.5)
	call, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, tween.OpFromTo, call.Op)
	assert.Equal(t, c.Letters(), call.Targets)
	assert.Equal(t, "{y: 30%, opacity: 0}", call.From.String())
	assert.Equal(t, "{y: 0, opacity: 1, duration: 0.2, delay: 0.2, stagger: 0.05, ease: power3.out}",
		call.To.String())
}

func TestAttachWithoutObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.text")
	defer teardown()
	//
	el, err := dom.ParseElement(`<p data-ld-animation="text-reveal">Hi there</p>`)
	require.NoError(t, err)
	rec := tween.NewRecorder()
	c := Attach(el, rec, nil)
	assert.Len(t, c.Letters(), 7)
	assert.Empty(t, rec.Calls())
	c.Close()
}

func TestResetOnHidden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.text")
	defer teardown()
	//
	c, rec, sim, el := attach(t, `<p data-ld-stagger="0.1">ab</p>`)
	sim.Show(el)
	sim.Hide(el)
	calls := rec.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, tween.OpKill, calls[1].Op)
	assert.Equal(t, tween.OpSet, calls[2].Op)
	assert.Equal(t, tween.Killed, calls[0].Tween.State())
	for _, l := range c.Letters() {
		s, _ := dom.Attr(l, "style")
		assert.Equal(t, "y: 30%; opacity: 0", s)
	}
	sim.Show(el)
	call, _ := rec.Last()
	assert.Equal(t, tween.OpFromTo, call.Op, "reveal restarts")
	assert.Equal(t, 0.1, call.To.Stagger)
}

func TestCloseIgnoresCallbacks(t *testing.T) {
	c, rec, sim, el := attach(t, `<p>text</p>`)
	c.Close()
	c.Close()
	sim.Show(el)
	assert.Empty(t, rec.Calls())
	assert.Equal(t, 0, sim.Observations(el))
	// callbacks already dispatched are ignored, too
	c.visible(el)
	c.hidden(el)
	assert.Empty(t, rec.Calls())
}

func TestConcurrentCallbacks(t *testing.T) {
	c, rec, _, el := attach(t, `<p>some text</p>`)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.visible(el)
			} else {
				c.hidden(el)
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, rec.Calls(), 4+4*2)
	c.Close()
}

func TestPrerender(t *testing.T) {
	el, err := dom.ParseElement(`<h2>Hi there</h2>`)
	require.NoError(t, err)
	r := Prerender(el, tween.NewRecorder())
	assert.Len(t, r.Letters(), 7)
	for _, l := range r.Letters() {
		s, _ := dom.Attr(l, "style")
		assert.Equal(t, "y: 30%; opacity: 0", s)
	}
}
