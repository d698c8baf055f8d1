package dom

import (
	"errors"
	"fmt"

	"github.com/npillmayer/kremling/registry"
	"github.com/npillmayer/kremling/scope"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ScopeAttr is the attribute of inserted <style> elements naming their scope.
const ScopeAttr = "data-kremling-scope"

// ErrForeignFragment is returned when removing a fragment the sink did not
// create or has removed already.
var ErrForeignFragment = errors.New("fragment does not belong to this document")

// StyleFragment is a <style> element inserted by a HeadSink.
type StyleFragment struct {
	elem  *html.Node
	scope scope.ID
}

// Text returns the CSS text of the style element.
func (f *StyleFragment) Text() string {
	if f.elem.FirstChild == nil {
		return ""
	}
	return f.elem.FirstChild.Data
}

// Element returns the <style> element.
func (f *StyleFragment) Element() *html.Node {
	return f.elem
}

// Scope returns the scope the fragment has been inserted for.
func (f *StyleFragment) Scope() scope.ID {
	return f.scope
}

// IsConnected is true as long as the fragment is part of a document.
func (f *StyleFragment) IsConnected() bool {
	return f.elem.Parent != nil
}

// HeadSink inserts stylesheet fragments into the head of a document.
type HeadSink struct {
	doc *Document
}

// Sink returns a sink for the head of d.
func (d *Document) Sink() *HeadSink {
	return &HeadSink{doc: d}
}

// Insert appends a <style> element with text to the document's head.
func (s *HeadSink) Insert(text string, id scope.ID) (registry.Fragment, error) {
	head := s.doc.Head()
	if head == nil {
		return nil, ErrNoHead
	}
	elem := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Style.String(),
		DataAtom: atom.Style,
		Attr: []html.Attribute{
			{Key: "type", Val: "text/css"},
			{Key: ScopeAttr, Val: id.String()},
		},
	}
	elem.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	head.AppendChild(elem)
	tracer().Debugf("dom: inserted <style> for %s", id)
	return &StyleFragment{elem: elem, scope: id}, nil
}

// Remove detaches a fragment's <style> element from the document.
func (s *HeadSink) Remove(f registry.Fragment) error {
	sf, ok := f.(*StyleFragment)
	if !ok || sf == nil {
		return fmt.Errorf("%w: %T", ErrForeignFragment, f)
	}
	if sf.elem.Parent == nil || !s.contains(sf.elem) {
		return ErrForeignFragment
	}
	sf.elem.Parent.RemoveChild(sf.elem)
	tracer().Debugf("dom: removed <style> for %s", sf.scope)
	return nil
}

func (s *HeadSink) contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == s.doc.root {
			return true
		}
	}
	return false
}

var _ registry.Sink = &HeadSink{}
