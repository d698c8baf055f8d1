package douceuradapter

import (
	"testing"

	"github.com/npillmayer/kremling/dom"
	"github.com/npillmayer/kremling/registry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRewrittenFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kremling.cssom")
	defer teardown()
	//
	doc := dom.NewDocument()
	reg := registry.New(doc.Sink())
	_, err := reg.Acquire(registry.CSS(`
      & .someRule, .wow {
        background-color: red !important;
      }
      & div { margin-top: 15px; }
    `), "")
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	rules := sheets[0].Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, `[data-kremling="0"] .someRule, [data-kremling="0"].someRule, .wow`, rules[0].Selector())
	assert.Equal(t, []string{"background-color"}, rules[0].Properties())
	assert.Equal(t, "red", rules[0].Value("background-color"))
	assert.True(t, rules[0].IsImportant("background-color"))
	assert.Equal(t, `[data-kremling="0"] div, div[data-kremling="0"]`, rules[1].Selector())
	assert.Equal(t, "15px", rules[1].Value("margin-top"))
	assert.Equal(t, "", rules[1].Value("color"))
}

func TestAtRulesAreFlattened(t *testing.T) {
	sheet, err := Parse(`@media print { .a { color: black; } } .b { color: red; }`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".a", rules[0].Selector())
	assert.Equal(t, ".b", rules[1].Selector())
}

func TestAppendRules(t *testing.T) {
	a, err := Parse(`.a { color: red; }`)
	require.NoError(t, err)
	b, err := Parse(`.b { color: blue; }`)
	require.NoError(t, err)
	empty, err := Parse(``)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 2)
	assert.False(t, a.Empty())
}
