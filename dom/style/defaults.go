package style

import (
	"golang.org/x/net/html"
)

// Elements which are part of inline content of a text container.
// Other elements will be treated as opaque blocks by the splitter.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true,
	"code": true, "data": true, "del": true, "dfn": true, "em": true, "i": true,
	"ins": true, "kbd": true, "mark": true, "q": true, "s": true, "samp": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
	"time": true, "u": true, "var": true, "font": true, "label": true,
}

// Void elements do not have any content and no end tag.
var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

// IsVoidElement returns true for HTML elements without content, like <img>.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "template":
		return "none"
	case "img", "wbr", "br", "input":
		return "inline"
	}
	if inlineElements[node.Data] {
		return "inline"
	}
	tracer().Debugf("HTML element %s will be set to display: block", node.Data)
	return "block"
}
