package animation

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/npillmayer/reveal/dom/style/cssom"
	"github.com/npillmayer/reveal/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/reveal/tween"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// Errors of table loading and lookup.
var (
	ErrUnknownAnimation = errors.New("unknown animation")
	ErrUnknownStrategy  = errors.New("unknown tween strategy")
)

// Strategy is the way a tween is constructed.
type Strategy int8

// Tween strategies.
const (
	From Strategy = iota
	FromTo
)

func (s Strategy) String() string {
	switch s {
	case From:
		return "from"
	case FromTo:
		return "fromTo"
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy returns the strategy for its name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "from":
		return From, nil
	case "fromTo":
		return FromTo, nil
	}
	return From, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Definition defines a named animation.
type Definition struct {
	Name     string
	Strategy Strategy
	From     tween.Vars
	To       tween.Vars // FromTo only
}

// Apply creates the tween for element el, starting after delay seconds.
func (d Definition) Apply(anim tween.Animator, el *html.Node, delay float64) tween.Tween {
	targets := []*html.Node{el}
	switch d.Strategy {
	case FromTo:
		to := d.To
		to.Delay = delay
		return anim.FromTo(targets, d.From, to)
	}
	from := d.From
	from.Delay = delay
	return anim.From(targets, from)
}

// Table maps animation names to definitions.
type Table struct {
	defs map[string]Definition
}

// Lookup finds an animation by name.
func (t *Table) Lookup(name string) (Definition, error) {
	if t != nil {
		if d, ok := t.defs[name]; ok {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
}

// Names returns the names of all animations, sorted.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of animations.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.defs)
}

// --- Loading ---------------------------------------------------------------

//go:embed animations.yaml
var defaultTable []byte

var defaults struct {
	once  sync.Once
	table *Table
}

// Default returns the built-in animation table.
func Default() *Table {
	defaults.once.Do(func() {
		t, err := Parse(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("built-in animation table is broken: %v", err))
		}
		defaults.table = t
	})
	return defaults.table
}

type entry struct {
	Strategy string `yaml:"strategy"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Timing   timing `yaml:"timing"`
}

type timing struct {
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
	Paused   bool    `yaml:"paused"`
}

// Load reads an animation table in YAML format.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading animation table: %w", err)
	}
	return Parse(data)
}

// Parse parses an animation table in YAML format.
func Parse(data []byte) (*Table, error) {
	var entries map[string]entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing animation table: %w", err)
	}
	t := &Table{defs: make(map[string]Definition, len(entries))}
	for name, e := range entries {
		d, err := e.definition(name)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		t.defs[name] = d
	}
	tracer().Debugf("loaded %d animations", len(t.defs))
	return t, nil
}

func (e entry) definition(name string) (Definition, error) {
	d := Definition{Name: name}
	var err error
	if d.Strategy, err = ParseStrategy(e.Strategy); err != nil {
		return d, err
	}
	p := douceuradapter.Parser{}
	from, err := cssom.PropertyMap(p, e.From)
	if err != nil {
		return d, err
	}
	t := tween.Timing{Duration: e.Timing.Duration, Ease: e.Timing.Ease, Paused: e.Timing.Paused}
	if d.From, err = (tween.Vars{Props: from}).Normalize(); err != nil {
		return d, err
	}
	if d.Strategy == From {
		d.From.Timing = t
		return d, nil
	}
	to, err := cssom.PropertyMap(p, e.To)
	if err != nil {
		return d, err
	}
	d.To, err = tween.Vars{Props: to, Timing: t}.Normalize()
	return d, err
}
