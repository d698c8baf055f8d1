package registry

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the registry as a tree, for debugging.
func (r *Registry) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	header := fmt.Sprintf("Registry(ns=%s, entries=%d, next=%d)\n",
		r.namespace, len(r.entries), r.counter.Peek())
	printer := tp.New()
	for _, e := range r.sorted() {
		a := e.artifact
		branch := printer.AddBranch(a.Scope.String())
		branch.AddNode(fmt.Sprintf("refs   %d", a.Refs))
		branch.AddNode(fmt.Sprintf("source %q", abbrev(a.Source)))
		if a.Precompiled {
			branch.AddNode("text   (precompiled)")
		} else {
			branch.AddNode(fmt.Sprintf("text   %q", abbrev(a.Text)))
		}
	}
	return header + printer.String()
}
