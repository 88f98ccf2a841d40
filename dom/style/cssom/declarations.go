package cssom

import (
	"errors"
	"strings"

	"github.com/npillmayer/reveal/dom/style"
)

// ErrEmptyDeclarations is returned for a block without any declaration.
var ErrEmptyDeclarations = errors.New("no CSS declarations found")

// DeclarationParser is an interface to abstract away a CSS parser
// implementation. Clients for the animation tables will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
type DeclarationParser interface {
	// Declarations parses a block of declarations, without surrounding braces.
	Declarations(block string) ([]style.KeyValue, error)
}

// PropertyMap parses a block of CSS declarations into a style property map.
func PropertyMap(p DeclarationParser, block string) (*style.PropertyMap, error) {
	if strings.TrimSpace(block) == "" {
		return style.NewPropertyMap(), nil
	}
	kvs, err := p.Declarations(block)
	if err != nil {
		tracer().Errorf("cannot parse CSS declarations %q: %v", block, err)
		return nil, err
	}
	if len(kvs) == 0 {
		return nil, ErrEmptyDeclarations
	}
	return style.MapOf(kvs...), nil
}
