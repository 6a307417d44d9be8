package selector_test

import (
	"testing"

	"github.com/npillmayer/katas/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilderChaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katas.selector")
	defer teardown()
	//
	sel := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
	assert.NoError(t, sel.Err())
	assert.Equal(t, `a[href$=".png"]:focus`, sel.String())
}

func TestBuilderEntryPointsAreIndependent(t *testing.T) {
	a := selector.Class("menu")
	b := selector.Class("menu")
	a.Class("open")
	assert.Equal(t, ".menu.open", a.String())
	assert.Equal(t, ".menu", b.String())
}

func TestBuilderCombine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katas.selector")
	defer teardown()
	//
	sel := selector.Combine(selector.Element("div").ID("main"), selector.Adjacent,
		selector.Element("table").ID("data"))
	assert.Equal(t, "div#main + table#data", sel.String())
}

func TestBuilderCombineReturnsLeft(t *testing.T) {
	left := selector.Element("ul")
	got := selector.Combine(left, selector.Child, selector.Element("li"))
	assert.Same(t, left, got)
	assert.Equal(t, "ul > li", got.String())
}

func TestBuilderSpecificity(t *testing.T) {
	sel := selector.Element("a").ID("x").Class("y").PseudoClass("hover")
	assert.Equal(t, 121, sel.Specificity())

	chain := selector.Combine(selector.Element("div"), selector.Descendant,
		selector.ID("main").Class("wide"))
	assert.Equal(t, 111, chain.Specificity())
}
