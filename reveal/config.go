package reveal

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/maybe"
	"golang.org/x/net/html"
)

// Attributes configuring animations.
const (
	AttrAnimation = "data-ld-animation"
	AttrDelay     = "data-ld-delay"
	AttrStagger   = "data-ld-stagger"
	AttrTrigger   = "data-ld-trigger"
)

// Animation is the value of AttrAnimation selecting the text reveal.
const Animation = "text-reveal"

// Bounds for the stagger computed from the number of letters.
const (
	StaggerMin = 0.005
	StaggerMax = 0.05
)

// Config is the configuration of an animated element.
type Config struct {
	Delay   float64 // in seconds
	Stagger float64 // in seconds, 0 = auto
}

// ConfigOf reads the configuration from the attributes of an element.
// Missing or unparsable values default to 0.
func ConfigOf(el *html.Node) Config {
	return Config{
		Delay:   Number(el, AttrDelay).Map(millisToSeconds).WithDefault(0),
		Stagger: Number(el, AttrStagger).WithDefault(0),
	}
}

func millisToSeconds(ms float64) float64 {
	return ms * 0.001
}

// StaggerFor returns the stagger for a number of letters. A configured
// stagger of 0 is replaced by 1/letters, clamped to [StaggerMin…StaggerMax].
func (c Config) StaggerFor(letters int) float64 {
	if c.Stagger != 0 {
		return c.Stagger
	}
	return AutoStagger(letters)
}

// AutoStagger computes a stagger from the number of letters.
func AutoStagger(letters int) float64 {
	if letters <= 0 {
		return StaggerMax
	}
	return math.Min(StaggerMax, math.Max(StaggerMin, 1/float64(letters)))
}

// Number reads a numeric attribute of el.
func Number(el *html.Node, attr string) maybe.Maybe[float64] {
	v, ok := dom.Attr(el, attr)
	if !ok {
		return maybe.Nothing[float64]()
	}
	return ParseNumber(v)
}

var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// ParseNumber parses the longest prefix of s which is a decimal number,
// ignoring leading whitespace. "300ms" yields 300, "abc" yields Nothing.
func ParseNumber(s string) maybe.Maybe[float64] {
	prefix := numberPrefix.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if prefix == "" {
		return maybe.Nothing[float64]()
	}
	if strings.HasSuffix(prefix, "Infinity") {
		if prefix[0] == '-' {
			return maybe.Just(math.Inf(-1))
		}
		return maybe.Just(math.Inf(1))
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// exponent out of range
		return maybe.Of(f, math.IsInf(f, 0))
	}
	return maybe.Just(f)
}
