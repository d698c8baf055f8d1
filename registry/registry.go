package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/kremling/rewrite"
	"github.com/npillmayer/kremling/scope"
	"go.uber.org/multierr"
)

// Fragment is a stylesheet unit inserted into a document.
type Fragment interface {
	Text() string // the CSS text of the fragment
}

// Sink is where rendered stylesheets go, usually the head of a document.
// The registry is the only component to call a sink.
type Sink interface {
	Insert(text string, id scope.ID) (Fragment, error)
	Remove(Fragment) error
}

// Artifact is the outcome of acquiring a CSS source.
type Artifact struct {
	Source      string   // the raw source, used as cache key
	Scope       scope.ID // attribute to put on scoped elements
	Text        string   // the CSS text inserted into the sink
	Refs        int      // number of clients holding the artifact
	Precompiled bool     // has Text been scoped by a build step?
}

// Attributes returns the scope descriptor to spread onto scoped elements.
func (a Artifact) Attributes() map[string]string {
	return a.Scope.Descriptor()
}

type entry struct {
	artifact Artifact
	fragment Fragment
	seq      int // insertion order, for stable dumps
}

// Registry maps CSS sources to artifacts. There is at most one artifact, and
// therefore at most one fragment in the sink, for every distinct source.
//
// Clients usually create one registry per document and share it between
// all parts of the application which style that document.
// Operations are serialized, and every operation completes synchronously,
// including the calls to the sink.
type Registry struct {
	mu        sync.Mutex
	sink      Sink
	namespace string
	warn      WarningHandler
	counter   scope.Counter
	entries   map[string]*entry
	seq       int
}

// Option configures a registry.
type Option func(*Registry)

// WithNamespace sets the namespace used for scope attributes if a client
// does not provide one. The default is scope.DefaultNamespace.
func WithNamespace(namespace string) Option {
	return func(r *Registry) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithWarningHandler sets a receiver for non-fatal diagnostics. The default
// handler traces warnings.
func WithWarningHandler(h WarningHandler) Option {
	return func(r *Registry) {
		if h != nil {
			r.warn = h
		}
	}
}

// New creates an empty registry inserting fragments into sink.
func New(sink Sink, opts ...Option) *Registry {
	if sink == nil {
		panic("registry needs a sink")
	}
	r := &Registry{
		sink:      sink,
		namespace: scope.DefaultNamespace,
		warn:      traceWarning,
		entries:   make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Namespace returns the default namespace of r.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Acquire returns the artifact for src and increments its reference count.
//
// If src is new to the registry, a scope identifier is allocated, the CSS is
// rendered and inserted into the sink. Raw CSS gets an attribute
// "data-<namespace>" with the next counter value, precompiled CSS uses its
// own namespace and id. namespace may be empty, selecting the namespace of a
// precompiled artifact or the registry's default namespace.
//
// If src is known, the existing artifact is shared. namespace is ignored in
// this case: the first client to acquire a source determines its scope.
func (r *Registry) Acquire(src Source, namespace string) (Artifact, error) {
	src, err := normalize(src)
	if err != nil {
		tracer().Errorf("registry: %v", err)
		return Artifact{}, err
	}
	if css, ok := src.(CSS); ok {
		r.checkAnchor(string(css))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	//
	key := src.Key()
	if e, ok := r.entries[key]; ok {
		e.artifact.Refs++
		tracer().Debugf("registry: hit for %s, refs=%d", e.artifact.Scope, e.artifact.Refs)
		return e.artifact, nil
	}
	artifact := r.render(src, namespace)
	fragment, err := r.sink.Insert(artifact.Text, artifact.Scope)
	if err != nil {
		err = fmt.Errorf("cannot insert styles for %s: %w", artifact.Scope, err)
		tracer().Errorf("registry: %v", err)
		return Artifact{}, err
	}
	artifact.Refs = 1
	r.seq++
	r.entries[key] = &entry{artifact: artifact, fragment: fragment, seq: r.seq}
	tracer().Debugf("registry: inserted styles for %s", artifact.Scope)
	return artifact, nil
}

// render allocates a scope identifier and renders the text for a new source.
func (r *Registry) render(src Source, namespace string) Artifact {
	switch x := src.(type) {
	case Precompiled:
		if namespace == "" {
			namespace = x.Namespace
		}
		if namespace == "" {
			namespace = r.namespace
		}
		return Artifact{
			Source:      x.Styles,
			Scope:       scope.ID{Attr: namespace, Value: x.ID},
			Text:        x.Styles,
			Precompiled: true,
		}
	}
	if namespace == "" {
		namespace = r.namespace
	}
	css := src.Key()
	id := scope.Counted(scope.AttrName(namespace), r.counter.Next())
	return Artifact{
		Source: css,
		Scope:  id,
		Text:   rewrite.Transform(css, id.Selector()),
	}
}

func (r *Registry) checkAnchor(css string) {
	if strings.TrimSpace(css) == "" || rewrite.HasAnchor(css) {
		return
	}
	r.warn(MalformedSelectorWarning{FirstRule: rewrite.FirstRule(css)})
}

// Release decrements the reference count for src. When the count drops to
// zero, the fragment is removed from the sink and the artifact is dropped.
// Releasing a source which is not held by anyone returns ErrNotAcquired.
func (r *Registry) Release(src Source) error {
	src, err := normalize(src)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	//
	key := src.Key()
	e, ok := r.entries[key]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrNotAcquired, abbrev(key))
		tracer().Errorf("registry: %v", err)
		return err
	}
	e.artifact.Refs--
	if e.artifact.Refs > 0 {
		tracer().Debugf("registry: released %s, refs=%d", e.artifact.Scope, e.artifact.Refs)
		return nil
	}
	delete(r.entries, key)
	tracer().Debugf("registry: removing styles for %s", e.artifact.Scope)
	if err := r.sink.Remove(e.fragment); err != nil {
		err = fmt.Errorf("cannot remove styles for %s: %w", e.artifact.Scope, err)
		tracer().Errorf("registry: %v", err)
		return err
	}
	return nil
}

// Lookup returns the artifact for src, if present.
func (r *Registry) Lookup(src Source) (Artifact, bool) {
	src, err := normalize(src)
	if err != nil {
		return Artifact{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[src.Key()]; ok {
		return e.artifact, true
	}
	return Artifact{}, false
}

// Len returns the number of artifacts present.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Artifacts returns all artifacts present, in order of insertion.
func (r *Registry) Artifacts() []Artifact {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.sorted()
	artifacts := make([]Artifact, len(entries))
	for i, e := range entries {
		artifacts[i] = e.artifact
	}
	return artifacts
}

// Reset removes all fragments from the sink, drops all artifacts, and
// restarts scope identifier allocation at 0. It is intended for test
// isolation. Errors from the sink are collected; every fragment is
// attempted.
func (r *Registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var err error
	for _, e := range r.sorted() {
		err = multierr.Append(err, r.sink.Remove(e.fragment))
	}
	r.entries = make(map[string]*entry)
	r.counter.Reset()
	r.seq = 0
	return err
}

func (r *Registry) sorted() []*entry {
	entries := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})
	return entries
}

func abbrev(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:40]) + "…"
	}
	return s
}
