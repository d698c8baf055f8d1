/*
Package domdbg implements helpers to debug a scoped DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/kremling/dom"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	ScopeAttr string // attribute prefix marking scoped elements
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Elements carrying an attribute starting with
// scopePrefix (default "data-") are highlighted and labeled with their
// scope. <style> elements inserted by a HeadSink are labeled with the
// scope they belong to.
func ToGraphViz(doc *dom.Document, w io.Writer, scopePrefix string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", ScopeAttr: scopePrefix}
	if gparams.ScopeAttr == "" {
		gparams.ScopeAttr = "data-"
	}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(doc.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Tag   string
	Label string
	Scope string
	Kind  string
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode && strings.TrimSpace(ch.Data) == "" {
			continue
		}
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	d := node{Name: name, Tag: n.Data, Label: fmt.Sprintf("%q", n.Data), Kind: "element"}
	switch n.Type {
	case html.DocumentNode:
		d.Label, d.Kind = `"#document"`, "document"
	case html.TextNode:
		d.Label, d.Kind = shortText(n.Data), "text"
	case html.ElementNode:
		for _, a := range n.Attr {
			if a.Key != dom.ScopeAttr && strings.HasPrefix(a.Key, gparams.ScopeAttr) {
				d.Scope = a.Key + "=" + a.Val
			}
		}
		if s, ok := dom.Attr(n, dom.ScopeAttr); ok {
			d.Label, d.Kind = fmt.Sprintf("%q", "style "+s), "style"
		}
	default:
		d.Kind = "other"
	}
	return gparams.NodeTmpl.Execute(w, d)
}

type edge struct {
	N1, N2 string
}

func domEdge(n1, n2 *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	return gparams.EdgeTmpl.Execute(w, edge{nodeName(n1, dict), nodeName(n2, dict)})
}

func nodeName(n *html.Node, dict map[*html.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func shortText(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 16 {
		s = string(r[:16]) + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Kind "text" }}{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "style" }}{{ .Name }}	[ label={{ .Label }} shape=note style=filled fillcolor=ivory3 ] ;
{{ else if .Scope }}{{ .Name }}	[ label=<{{ .Tag }}<br/><font point-size="10">{{ .Scope }}</font>> shape=ellipse style=filled fillcolor=gold ] ;
{{ else }}{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
