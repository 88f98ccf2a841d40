/*
Package maybe implements an option type for values which may be absent.

Configuration of reveal animations is read from element attributes, which an
author may omit or fill with garbage. Parsing such an attribute results in a
Maybe, and the consumer decides about the default:

    delay := attrNumber(el, "data-ld-delay").Map(msToSeconds).WithDefault(0)

Maybe values may be matched in a switch statement:

    var v float64
    switch m := x.Match(); m {
    case m.Just(&v):
        // use v
    case m.Nothing():
        // fall back
    }

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	OrElse(Maybe[T]) Maybe[T]
	String() string
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of is Just(x) if ok, Nothing otherwise. It bridges the comma-ok idiom.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get unwraps the value in comma-ok style.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// OrElse returns m if it holds a value, other otherwise.
func (m maybe[T]) OrElse(other Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return other
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Filter turns a value not satisfying a predicate into Nothing.
func Filter[T any](pred func(T) bool, x Maybe[T]) Maybe[T] {
	if v, ok := x.Get(); ok && pred(v) {
		return x
	}
	return Nothing[T]()
}

// OneOf returns the first of a list of maybes which holds a value.
func OneOf[T any](maybes ...Maybe[T]) Maybe[T] {
	for _, m := range maybes {
		if !m.IsNothing() {
			return m
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for matching in switch statements. T has to be comparable
// for switch cases to work.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
