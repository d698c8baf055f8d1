package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingLifecycle(t *testing.T) {
	reg, sink, teardown := setup(t)
	defer teardown()
	//
	b, err := reg.Bind(CSS("& .foo {}"), "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"data-kremling": "0"}, b.Attributes())
	// re-rendering with the same css changes nothing
	require.NoError(t, b.Update(CSS("& .foo {}"), ""))
	a, ok := reg.Lookup(CSS("& .foo {}"))
	require.True(t, ok)
	assert.Equal(t, 1, a.Refs)
	assert.Len(t, sink.fragments, 1)
	//
	require.NoError(t, b.Close())
	assert.Empty(t, sink.fragments)
	assert.NoError(t, b.Close(), "closing twice is a no-op")
	assert.ErrorIs(t, b.Update(CSS("& .bar {}"), ""), ErrBindingClosed)
	assert.Empty(t, b.Attributes())
}

func TestBindingUpdateSwitchesSource(t *testing.T) {
	reg, sink, teardown := setup(t)
	defer teardown()
	//
	b, err := reg.Bind(CSS("& .foo {}"), "")
	require.NoError(t, err)
	require.NoError(t, b.Update(CSS("& .bar {}"), ""))
	assert.Equal(t, "1", b.Scope().Value)
	_, ok := reg.Lookup(CSS("& .foo {}"))
	assert.False(t, ok, "old source should have been released")
	require.Len(t, sink.fragments, 1)
	assert.Equal(t, `[data-kremling="1"] .bar, [data-kremling="1"].bar {}`, sink.fragments[0].text)
}

func TestBindingsShareStyles(t *testing.T) {
	reg, sink, teardown := setup(t)
	defer teardown()
	//
	b1, err := reg.Bind(CSS("& .foo {}"), "")
	require.NoError(t, err)
	b2, err := reg.Bind(CSS("& .foo {}"), "")
	require.NoError(t, err)
	assert.Equal(t, b1.Scope(), b2.Scope())
	require.NoError(t, b1.Close())
	assert.Len(t, sink.fragments, 1, "fragment is still in use by b2")
	require.NoError(t, b2.Close())
	assert.Empty(t, sink.fragments)
}

func TestBindingNamespaceChange(t *testing.T) {
	reg, _, teardown := setup(t)
	defer teardown()
	//
	b, err := reg.Bind(CSS("& .foo {}"), "yoshi")
	require.NoError(t, err)
	require.NoError(t, b.Update(CSS("& .foo {}"), "kackle"))
	assert.Equal(t, "data-kackle", b.Scope().Attr)
	assert.Equal(t, "1", b.Scope().Value)
}

func TestBindingPrecompiled(t *testing.T) {
	reg, _, teardown := setup(t)
	defer teardown()
	//
	p := &Precompiled{ID: "8", Styles: "[star-wars='8'] .kenobi, [star-wars='8'].kenobi{}", Namespace: "star-wars"}
	b, err := reg.Bind(p, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"star-wars": "8"}, b.Attributes())
	_, ok := reg.Lookup(p)
	assert.True(t, ok)
	require.NoError(t, b.Close())
	_, ok = reg.Lookup(p)
	assert.False(t, ok)
	//
	_, err = reg.Bind(Precompiled{Styles: "x"}, "")
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}
