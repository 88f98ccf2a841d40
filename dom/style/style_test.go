package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestPropertyMapAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reveal.dom")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("clip-path", "  inset(0   100% 0 0) ")
	pmap.Add("opacity", "0")
	pmap.Add("y", "30%")
	if pmap.Size() != 3 {
		t.Logf("map = %s", pmap)
		t.Errorf("expected 3 property groups, have %d", pmap.Size())
	}
	p, ok := pmap.Property("clip-path")
	if !ok || p != "inset(0 100% 0 0)" {
		t.Errorf("expected clip-path to be normalized, is %q", p)
	}
	var empty PropertyMap
	empty.Add("opacity", "1") // zero value must be usable
	if p, _ := empty.Property("opacity"); p != "1" {
		t.Errorf("expected opacity 1 in zero-value map, is %q", p)
	}
}

func TestPropertyMapMerge(t *testing.T) {
	from := MapOf(KeyValue{"y", "30%"}, KeyValue{"opacity", "0"})
	to := MapOf(KeyValue{"y", "0"})
	merged := from.Merge(to)
	if p, _ := merged.Property("y"); p != "0" {
		t.Errorf("expected y to be overwritten by merge, is %q", p)
	}
	if p, _ := from.Property("y"); p != "30%" {
		t.Errorf("expected merge not to modify receiver, y=%q", p)
	}
	kvs := merged.Properties()
	if len(kvs) != 2 || kvs[0].Key != "y" || kvs[1].Key != "opacity" {
		t.Errorf("expected properties sorted by group (Transform, Visibility), are %v", kvs)
	}
}

func TestGroupNames(t *testing.T) {
	if g := GroupNameFromPropertyKey("clip-path"); g != PGClip {
		t.Errorf("expected clip-path in group Clip, is %s", g)
	}
	if g := GroupNameFromPropertyKey("funny-margin"); g != PGX {
		t.Errorf("expected unknown property in group X, is %s", g)
	}
}

func TestDisplayProperty(t *testing.T) {
	em := &html.Node{Type: html.ElementNode, Data: "em"}
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	if d := DisplayPropertyForHTMLNode(em); d != "inline" {
		t.Errorf("expected <em> to be inline, is %s", d)
	}
	if d := DisplayPropertyForHTMLNode(div); d != "block" {
		t.Errorf("expected <div> to be block, is %s", d)
	}
	if !IsVoidElement("img") || IsVoidElement("span") {
		t.Error("expected img to be void and span not to be void")
	}
}
