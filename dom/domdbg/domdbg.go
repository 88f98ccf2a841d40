/*
Package domdbg implements helpers to debug a split DOM tree.

PrintTree renders a fragment as an indented tree, suitable for test logs.
ToGraphViz outputs a GraphViz (DOT) diagram of a fragment, where word and
letter wrappers are colored and inline styles of elements (as set by reveal
animations) are shown as style property groups.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/dom/style"
	"github.com/npillmayer/reveal/dom/style/cssom"
	"github.com/npillmayer/reveal/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// tracer traces with key 'reveal.dom'.
func tracer() tracing.Trace {
	return tracing.Select("reveal.dom")
}

// PrintTree returns an indented tree representation of a list of sibling nodes.
func PrintTree(nodes ...*html.Node) string {
	p := tp.New()
	for _, n := range nodes {
		ppt(p, n)
	}
	return p.String()
}

func ppt(p tp.Tree, n *html.Node) {
	if n == nil {
		return
	}
	if n.FirstChild == nil {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		ppt(branch, ch)
	}
}

func label(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.ElementNode:
		if c, ok := dom.Attr(n, "class"); ok {
			return fmt.Sprintf("<%s .%s>", n.Data, strings.Join(strings.Fields(c), "."))
		}
		return "<" + n.Data + ">"
	}
	return fmt.Sprintf("#%d", n.Type)
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// ToGraphViz outputs a diagram for a list of sibling nodes, usually the
// result of splitting a container. The diagram is in GraphViz (DOT) format.
// The inline style of elements is shown as a chain of style property groups.
func ToGraphViz(w io.Writer, nodes ...*html.Node) {
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"fillcolor":   fillColor,
			"istext":      func(n *html.Node) bool { return n.Type == html.TextNode },
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	dict := make(map[*html.Node]string, 4096)
	for _, n := range nodes {
		walk(n, w, dict, &gparams)
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a list of nodes and a testing.T, it will
// create a Graphiviz image of the nodes and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(t *testing.T, nodes ...*html.Node) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(tmpfile, nodes...)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *html.Node
	Name string
}

func walk(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
	domStyles(n, w, dict, gparams)
}

// domStyles draws the inline style of an element.
func domStyles(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	s, ok := dom.Attr(n, "style")
	if !ok {
		return
	}
	pmap, err := cssom.PropertyMap(douceuradapter.Parser{}, s)
	if err != nil {
		tracer().Errorf("ignoring style of <%s>: %v", n.Data, err)
		return
	}
	var prev *style.PropertyGroup
	for _, g := range []string{style.PGVisibility, style.PGTransform, style.PGClip, style.PGX} {
		pg := pmap.Group(g)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			panic(err)
		}
		if prev == nil {
			if err := gparams.PgedgeTmpl.Execute(w, pgedge{dict[n], pg}); err != nil {
				panic(err)
			}
		} else if err := gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg}); err != nil {
			panic(err)
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *html.Node, n2 *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(n *html.Node) string {
	s := "\"\\\""
	if r := []rune(n.Data); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func fillColor(n *html.Node) string {
	switch {
	case dom.HasClass(n, "letter"):
		return "darkseagreen2"
	case dom.HasClass(n, "word"):
		return "gold"
	}
	return "lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if istext .N }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor={{ fillcolor .N }} ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
