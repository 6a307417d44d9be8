/*
Package selector builds CSS selector strings through a fluent interface.

A selector is assembled from fragments — element, id, classes, attributes,
pseudo-classes and a pseudo-element — and rendered with String:

    sel := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
    sel.String()    // a[href$=".png"]:focus

Fragments have to be given in the order above, and element, id and
pseudo-element may occur at most once per selector. Violations of the
grammar are recorded at the offending call, which leaves the selector
untouched, and may be inspected with Err.

Selectors combine into chains with Combine or CombineWith:

    sel := selector.Combine(selector.Element("ul"), selector.Child,
        selector.Element("li").PseudoClass("first-child"))
    sel.String()    // ul > li:first-child

This package only builds selector strings. It will not parse selectors,
validate fragment contents, nor match selectors against a DOM.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'katas.selector'.
func tracer() tracing.Trace {
	return tracing.Select("katas.selector")
}
