package tween

import (
	"testing"

	"github.com/npillmayer/reveal/css"
	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func letters(t *testing.T) []*html.Node {
	nodes, err := dom.ParseFragment(`<span class="letter">a</span><span class="letter">b</span>`)
	require.NoError(t, err)
	return nodes
}

func TestVars(t *testing.T) {
	v := Props("y", "30%", "opacity", "0").With(Timing{Duration: 0.2, Ease: "power3.out"})
	assert.Equal(t, "{y: 30%, opacity: 0, duration: 0.2, ease: power3.out}", v.String())
	y, err := v.Offset("y")
	require.NoError(t, err)
	assert.True(t, css.IsOffset(y))
	assert.Equal(t, "30%", y.String())
	_, err = v.Offset("x")
	assert.ErrorIs(t, err, css.ErrNotADimension)
	_, ok := Vars{}.Property("y")
	assert.False(t, ok)
}

func TestNormalizeOffsets(t *testing.T) {
	v := Props("y", "10", "x", " -30% ", "opacity", "0")
	n, err := v.Normalize()
	require.NoError(t, err)
	y, _ := n.Property("y")
	assert.Equal(t, "10px", y.String())
	x, _ := n.Property("x")
	assert.Equal(t, "-30%", x.String())
	orig, _ := v.Property("y")
	assert.Equal(t, "10", orig.String())
	//
	_, err = Props("y", "wide").Normalize()
	assert.ErrorIs(t, err, css.ErrNotADimension)
	_, err = Props("x", "auto").Normalize()
	assert.ErrorIs(t, err, css.ErrNotADimension)
	n, err = Vars{}.Normalize()
	require.NoError(t, err)
	assert.Nil(t, n.Props)
}

func TestRecorderSetWritesInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.tween")
	defer teardown()
	//
	targets := letters(t)
	r := NewRecorder()
	r.Set(targets, Props("opacity", "0", "y", "30%"))
	for _, n := range targets {
		s, _ := dom.Attr(n, "style")
		assert.Equal(t, "y: 30%; opacity: 0", s)
	}
	r.Set(targets, Props("opacity", "1"))
	s, _ := dom.Attr(targets[0], "style")
	assert.Equal(t, "y: 30%; opacity: 1", s)
	assert.Len(t, r.Calls(), 2)
}

func TestRecordedTweenStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.tween")
	defer teardown()
	//
	r := NewRecorder()
	tw := r.From(letters(t), Props("clip-path", "inset(0 100% 0 0)").With(Timing{Duration: 1, Paused: true}))
	rec := tw.(*Recorded)
	assert.Equal(t, Paused, rec.State())
	tw.Play()
	assert.Equal(t, Playing, rec.State())
	tw.Reverse()
	assert.Equal(t, Reversed, rec.State())
	tw.Pause()
	tw.Seek(0)
	assert.Equal(t, []string{"play", "reverse", "pause", "seek(0)"}, rec.Log())
	assert.Equal(t, 0.0, rec.Progress())
	c, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, OpFrom, c.Op)
	assert.Same(t, rec, c.Tween)
}

func TestKillTweensOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.tween")
	defer teardown()
	//
	targets := letters(t)
	other, err := dom.ParseFragment(`<span>x</span>`)
	require.NoError(t, err)
	r := NewRecorder()
	t1 := r.FromTo(targets, Props("opacity", "0"), Props("opacity", "1")).(*Recorded)
	t2 := r.FromTo(other, Props("opacity", "0"), Props("opacity", "1")).(*Recorded)
	r.KillTweensOf(targets[1:])
	assert.Equal(t, Killed, t1.State())
	assert.Equal(t, Playing, t2.State())
	t1.Play()
	assert.Equal(t, Killed, t1.State(), "killed tweens stay killed")
	r.Reset()
	assert.Empty(t, r.Calls())
}
