/*
Package douceuradapter is a concrete implementation of interface cssom.DeclarationParser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/reveal/dom/style"
	"github.com/npillmayer/reveal/dom/style/cssom"
)

// Parser is an adapter for interface cssom.DeclarationParser.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.DeclarationParser.
type Parser struct{}

// Declarations parses a block of CSS declarations. The last declaration
// does not need to be terminated by a semicolon, as is common for inline
// styles.
//
// Interface cssom.DeclarationParser
func (Parser) Declarations(block string) ([]style.KeyValue, error) {
	block = strings.TrimSpace(block)
	if !strings.HasSuffix(block, ";") && !strings.HasSuffix(block, "}") {
		block += ";" // douceur drops an unterminated last value
	}
	decls, err := parser.ParseDeclarations(block)
	if err != nil {
		return nil, err
	}
	return KeyValues(decls), nil
}

var _ cssom.DeclarationParser = Parser{}

// KeyValues converts douceur declarations to style key-value pairs.
// Declarations marked as important keep their marker in the value.
func KeyValues(decls []*css.Declaration) []style.KeyValue {
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		v := strings.TrimSpace(d.Value)
		if d.Important {
			v += " !important"
		}
		kvs = append(kvs, style.KeyValue{Key: strings.ToLower(d.Property), Value: style.Property(v)})
	}
	return kvs
}
