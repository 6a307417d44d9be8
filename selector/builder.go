package selector

// Combinator is a token joining two selectors to express a structural
// relationship between the nodes they describe.
type Combinator string

// The combinators of CSS level 3.
const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

// Each of the following entry points starts a fresh selector, seeded
// with a single fragment. Further fragments are then chained onto the
// returned selector:
//
//     selector.Element("a").ID("x").Class("y")

// Element starts a selector with an element (tag) name.
func Element(name string) *Selector {
	return build().Element(name)
}

// ID starts a selector with an id.
func ID(name string) *Selector {
	return build().ID(name)
}

// Class starts a selector with a class.
func Class(name string) *Selector {
	return build().Class(name)
}

// Attr starts a selector with an attribute spec.
func Attr(spec string) *Selector {
	return build().Attr(spec)
}

// PseudoClass starts a selector with a pseudo-class.
func PseudoClass(name string) *Selector {
	return build().PseudoClass(name)
}

// PseudoElement starts a selector with a pseudo-element.
func PseudoElement(name string) *Selector {
	return build().PseudoElement(name)
}

// Combine appends right to left's combinator chain and returns left.
// left and right stay independent selectors, each with its own fragment
// grammar; right may itself be a combined chain.
func Combine(left *Selector, c Combinator, right *Selector) *Selector {
	return left.CombineWith(c, right)
}

// build is the shared constructor behind the entry points above.
func build() *Selector {
	return &Selector{}
}
