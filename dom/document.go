package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/kremling/scope"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned if a document lacks a <head> element.
var ErrNoHead = errors.New("document has no head element")

const emptyDocument = `<!DOCTYPE html><html><head></head><body></body></html>`

// Document is an HTML document.
type Document struct {
	root *html.Node
}

// NewDocument creates an empty HTML document.
func NewDocument() *Document {
	d, err := Parse(strings.NewReader(emptyDocument))
	if err != nil {
		panic(err) // cannot happen for a constant document
	}
	return d
}

// Parse reads an HTML document. Missing <html>, <head> and <body> elements
// are supplied by the HTML parser.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return &Document{root: root}, nil
}

// Wrap makes a document from an existing parse tree.
func Wrap(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Head returns the <head> element, or nil.
func (d *Document) Head() *html.Node {
	return FindElement(atom.Head, d.root)
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *html.Node {
	return FindElement(atom.Body, d.root)
}

// StyleElements returns all <style> elements of the document in document
// order.
func (d *Document) StyleElements() []*html.Node {
	var styles []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			styles = append(styles, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(d.root)
	return styles
}

// Select returns all elements matching a CSS selector.
func (d *Document) Select(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return sel.MatchAll(d.root), nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

// FindElement returns the first element of type a in the sub-tree of h.
func FindElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// --- Scoping elements ------------------------------------------------------

// Scope puts a scope identifier onto an element. An existing attribute of
// the same name is overwritten. Nodes other than elements are left alone.
func Scope(n *html.Node, id scope.ID) {
	if n == nil || n.Type != html.ElementNode || id.IsZero() {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == id.Attr {
			n.Attr[i].Val = id.Value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: id.Attr, Val: id.Value})
}

// ScopeChildren puts a scope identifier onto every child element of n,
// but not onto n itself. It returns the number of elements scoped.
func ScopeChildren(n *html.Node, id scope.ID) int {
	if n == nil {
		return 0
	}
	count := 0
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			Scope(ch, id)
			count++
		}
	}
	return count
}

// Unscope removes the attribute named attr from an element.
func Unscope(n *html.Node, attr string) {
	if n == nil {
		return
	}
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != attr {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// Attr returns the value of attribute key of n, if present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
