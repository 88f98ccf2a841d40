package css_test

import (
	"testing"

	"github.com/npillmayer/reveal/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	kind := func(d css.DimenT) string {
		return css.DimenPattern[string](d).OneOf(css.DimenPatterns[string]{
			Auto:    "auto",
			Just:    "fixed",
			Percent: "relative",
			Default: "other",
		})
	}
	if k := kind(css.JustDimen(dimen.PT * 10)); k != "fixed" {
		t.Errorf("expected Just(10pt) to be a fixed value, is %s", k)
	}
	if k := kind(css.Auto()); k != "auto" {
		t.Errorf("expected dimen auto to match auto, is %s", k)
	}
	if k := kind(css.Percentage(80)); k != "relative" {
		t.Errorf("expected Percentage(80) to be a percentage value, is %s", k)
	}
	if k := kind(css.DimenT{}); k != "other" {
		t.Errorf("expected an unset dimension to match the default, is %s", k)
	}
}

func TestDimenParse(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"30%", "30%"},
		{"0", "0"},
		{"10px", "10px"},
		{"  -20PX ", "-20px"},
		{"7.5pt", "10px"},
		{"auto", "auto"},
		{"inherit", "inherit"},
	} {
		d, err := css.ParseDimen(tc.in)
		if err != nil {
			t.Errorf("expected %q to parse, got error %v", tc.in, err)
			continue
		}
		if d.String() != tc.out {
			t.Errorf("expected %q to render as %q, is %q", tc.in, tc.out, d.String())
		}
	}
	for _, bad := range []string{"", "wide", "3.5%", "px"} {
		if _, err := css.ParseDimen(bad); err == nil {
			t.Errorf("expected %q not to be a dimension", bad)
		}
	}
}

func TestIsOffset(t *testing.T) {
	for _, in := range []string{"30%", "-30%", "0", "10px", "12pt"} {
		d, err := css.ParseDimen(in)
		if err != nil || !css.IsOffset(d) {
			t.Errorf("expected %q to be an offset", in)
		}
	}
	for _, in := range []string{"auto", "inherit", "initial"} {
		d, err := css.ParseDimen(in)
		if err != nil || css.IsOffset(d) {
			t.Errorf("expected %q not to be an offset", in)
		}
	}
}
