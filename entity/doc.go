/*
Package entity decodes the small set of named HTML character entities which
authors typically type into rich text containers.

Decoding is deliberately not complete. Text containers of a page are handed to
us as inner HTML, and the splitter has to tell markup apart from text. It does so
with the help of this package: recognized references are replaced by their
literal character, every other reference is left untouched and will be resolved
by the HTML parser later on, exactly like a browser would.

Decoding is a single pass over the input. Output of a replacement is never
scanned again, i.e.

    Decode("&amp;amp;") == "&amp;"

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package entity
