package registry

import (
	"github.com/npillmayer/kremling/scope"
)

// Binding ties a CSS source to the life cycle of one client, e.g. a UI
// component. Create it on attach, call Update whenever the client's CSS or
// namespace may have changed, and Close it on detach.
//
// A Binding holds exactly one reference to its current source.
type Binding struct {
	reg       *Registry
	src       Source
	namespace string
	artifact  Artifact
	closed    bool
}

// Bind acquires src for a new client.
func (r *Registry) Bind(src Source, namespace string) (*Binding, error) {
	src, err := normalize(src)
	if err != nil {
		return nil, err
	}
	a, err := r.Acquire(src, namespace)
	if err != nil {
		return nil, err
	}
	return &Binding{reg: r, src: src, namespace: namespace, artifact: a}, nil
}

// Update switches the binding to a new source. If neither source nor
// namespace changed, Update does nothing. Otherwise the old source is
// released before the new one is acquired. If acquiring fails, the binding
// holds no reference any more and is closed.
func (b *Binding) Update(src Source, namespace string) error {
	if b.closed {
		return ErrBindingClosed
	}
	src, err := normalize(src)
	if err != nil {
		return err
	}
	if src == b.src && namespace == b.namespace {
		return nil
	}
	tracer().Debugf("binding: css for %s changed", b.artifact.Scope)
	if err := b.reg.Release(b.src); err != nil {
		b.closed = true
		return err
	}
	a, err := b.reg.Acquire(src, namespace)
	if err != nil {
		b.closed = true
		return err
	}
	b.src, b.namespace, b.artifact = src, namespace, a
	return nil
}

// Scope returns the scope identifier for the current source.
func (b *Binding) Scope() scope.ID {
	if b.closed {
		return scope.ID{}
	}
	return b.artifact.Scope
}

// Attributes returns the scope descriptor for the current source, or an
// empty map if b is closed.
func (b *Binding) Attributes() map[string]string {
	return b.Scope().Descriptor()
}

// Close releases the binding's source. Closing twice is a no-op.
func (b *Binding) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.reg.Release(b.src)
}
