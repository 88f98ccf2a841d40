/*
Command reveal splits text containers of HTML into words and letters, and
inspects the animations of a page.

    reveal split 'Caf&eacute; <em>au lait</em>'
    reveal prerender --hide page.html > page.split.html
    reveal animations
    reveal tree --dot 'Hello, world' | dot -Tsvg > tree.svg

Input is taken from the arguments or, if there are none, from stdin.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
