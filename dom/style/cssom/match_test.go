package cssom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/kremling/dom"
	"github.com/npillmayer/kremling/dom/style/cssom"
	"github.com/npillmayer/kremling/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/kremling/registry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head></head><body>
<section id="a"><div id="a1"></div><p id="a2" class="note"></p></section>
<section id="b"><div id="b1"></div><p id="b2" class="note"></p></section>
</body></html>`

func ids(t *testing.T, m cssom.Match) []string {
	var result []string
	for _, n := range m.Nodes {
		id, _ := dom.Attr(n, "id")
		result = append(result, id)
	}
	return result
}

func TestScopedRulesStayInScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kremling.cssom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	reg := registry.New(doc.Sink())
	a, err := reg.Acquire(registry.CSS("& div { color: pink; }\n& .note { color: red; }"), "")
	require.NoError(t, err)
	sectionA, _ := doc.Select("#a")
	dom.Scope(sectionA[0], a.Scope)
	//
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	matches, err := cssom.MatchRules(doc.Root(), sheets[0])
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, []string{"a1"}, ids(t, matches[0]))
	assert.Equal(t, []string{"a2"}, ids(t, matches[1]))
	//
	b2, _ := doc.Select("#b2")
	rules, err := cssom.RulesFor(b2[0], sheets[0])
	require.NoError(t, err)
	assert.Empty(t, rules, "unscoped elements must not be styled")
	a2, _ := doc.Select("#a2")
	rules, err = cssom.RulesFor(a2[0], sheets[0])
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestPrecompiledRulesMatch(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	reg := registry.New(doc.Sink())
	a, err := reg.Acquire(registry.Precompiled{
		ID:        "15",
		Namespace: "donkey-kong",
		Styles:    `[donkey-kong="15"] .note { color: red; }`,
	}, "")
	require.NoError(t, err)
	sectionB, _ := doc.Select("#b")
	dom.Scope(sectionB[0], a.Scope)
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	matches, err := cssom.MatchRules(doc.Root(), sheets[0])
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{"b2"}, ids(t, matches[0]))
}
