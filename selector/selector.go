package selector

import (
	"errors"
	"fmt"
	"strings"
)

// fragment enumerates the fragment kinds of a compound selector, ordered
// the way the selector grammar wants them to appear.
type fragment uint8

// Enum values for type fragment
const (
	noFragment            fragment = iota
	elementFragment                // tag name, e.g. div
	idFragment                     // #id
	classFragment                  // .class
	attributeFragment              // [attr]
	pseudoClassFragment            // :pseudo-class
	pseudoElementFragment          // ::pseudo-element
)

func (f fragment) String() string {
	switch f {
	case elementFragment:
		return "element"
	case idFragment:
		return "id"
	case classFragment:
		return "class"
	case attributeFragment:
		return "attribute"
	case pseudoClassFragment:
		return "pseudo-class"
	case pseudoElementFragment:
		return "pseudo-element"
	}
	return "<no fragment>"
}

// Flags for the singleton slots of a selector.
const (
	slotElement uint8 = 1 << iota
	slotID
	slotPseudoElement
)

// Grammar violations recorded by the fragment methods of Selector.
var (
	// ErrDuplicateFragment flags a second element, id or pseudo-element
	// on the same selector.
	ErrDuplicateFragment = errors.New("fragment may occur at most once per selector")
	// ErrFragmentOrder flags a fragment following one of a later kind.
	ErrFragmentOrder = errors.New("fragment out of order")
)

// Selector accumulates the fragments of one compound CSS selector,
// together with an optional chain of combined selectors. The zero value
// is an empty selector, ready for use; usually a Selector is obtained
// from one of the package-level entry points.
//
// Selectors are not safe for concurrent mutation.
type Selector struct {
	tag           string   // element name
	id            string   // id, stored with its '#' sigil
	classes       []string // class fragments, each ".name"
	attributes    []string // attribute fragments, each "[spec]"
	pseudoClasses []string // pseudo-class fragments, each ":name"
	pseudoElement string   // pseudo-element, stored as "::name"
	combined      []link   // combinator chain, in call order
	progress      fragment // most specific fragment kind present
	slots         uint8    // occupied singleton slots
	err           error    // first grammar violation
}

// link is one entry of a combinator chain: a combinator token together
// with the selector to the right of it.
type link struct {
	combinator Combinator
	sel        *Selector
}

// admit gates the addition of a fragment of kind f. Singleton kinds pass
// their slot flag, all others pass 0. A violation records the error on s
// and rejects the fragment; fragment state is then left untouched.
func (s *Selector) admit(f fragment, slot uint8) bool {
	if slot != 0 && s.slots&slot != 0 {
		s.violation(fmt.Errorf("%s %w", f, ErrDuplicateFragment))
		return false
	}
	if f < s.progress {
		s.violation(fmt.Errorf("%s after %s: %w", f, s.progress, ErrFragmentOrder))
		return false
	}
	s.progress = f
	s.slots |= slot
	return true
}

func (s *Selector) violation(err error) {
	tracer().Errorf("selector grammar: %v", err)
	if s.err == nil {
		s.err = err
	}
}

// Element sets the element (tag) name of s. An element may occur at most
// once per selector and has to come before all other fragments.
func (s *Selector) Element(name string) *Selector {
	if s.admit(elementFragment, slotElement) {
		s.tag = name
	}
	return s
}

// ID sets the id of s. An id may occur at most once per selector.
func (s *Selector) ID(name string) *Selector {
	if s.admit(idFragment, slotID) {
		s.id = "#" + name
	}
	return s
}

// Class appends a class fragment to s. Classes render in the order they
// were added.
func (s *Selector) Class(name string) *Selector {
	if s.admit(classFragment, 0) {
		s.classes = append(s.classes, "."+name)
	}
	return s
}

// Attr appends an attribute fragment to s. spec is the raw text between
// the brackets, e.g. `href$=".png"`, and is not validated.
func (s *Selector) Attr(spec string) *Selector {
	if s.admit(attributeFragment, 0) {
		s.attributes = append(s.attributes, "["+spec+"]")
	}
	return s
}

// PseudoClass appends a pseudo-class fragment to s.
func (s *Selector) PseudoClass(name string) *Selector {
	if s.admit(pseudoClassFragment, 0) {
		s.pseudoClasses = append(s.pseudoClasses, ":"+name)
	}
	return s
}

// PseudoElement sets the pseudo-element of s. A pseudo-element may occur
// at most once per selector and closes the fragment sequence.
func (s *Selector) PseudoElement(name string) *Selector {
	if s.admit(pseudoElementFragment, slotPseudoElement) {
		s.pseudoElement = "::" + name
	}
	return s
}

// CombineWith appends other to s's combinator chain and returns s.
// Combination is not subject to the fragment grammar: it may follow any
// fragment state, and any number of selectors may be chained.
func (s *Selector) CombineWith(c Combinator, other *Selector) *Selector {
	tracer().Debugf("combining selector '%s' with '%s'", s.compound(), other.compound())
	s.combined = append(s.combined, link{combinator: c, sel: other})
	return s
}

// Err returns the first grammar violation recorded on s, if any.
// Violations satisfy errors.Is for ErrDuplicateFragment or
// ErrFragmentOrder respectively.
func (s *Selector) Err() error {
	return s.err
}

// compound renders the selector's own fragments, except for the
// pseudo-element, which has to trail the combinator chain.
func (s *Selector) compound() string {
	var b strings.Builder
	b.WriteString(s.tag)
	b.WriteString(s.id)
	for _, c := range s.classes {
		b.WriteString(c)
	}
	for _, a := range s.attributes {
		b.WriteString(a)
	}
	for _, p := range s.pseudoClasses {
		b.WriteString(p)
	}
	return b.String()
}

// String renders s as a CSS selector. Fragments of the same kind are
// concatenated without separators; combined selectors follow with their
// combinator set off by a single space on each side. The spacing is kept
// literal even for the descendant combinator, which is itself a space.
//
// String is a pure function of s and never blocked by a recorded
// grammar violation.
func (s *Selector) String() string {
	var b strings.Builder
	b.WriteString(s.compound())
	for _, l := range s.combined {
		b.WriteString(" ")
		b.WriteString(string(l.combinator))
		b.WriteString(" ")
		b.WriteString(l.sel.String())
	}
	b.WriteString(s.pseudoElement)
	return b.String()
}

// Specificity sums up the CSS specificity of s, including all selectors
// of its combinator chain: 100 for an id, 10 for each class, attribute
// or pseudo-class, and 1 for an element or pseudo-element.
func (s *Selector) Specificity() int {
	sp := 0
	if s.slots&slotID != 0 {
		sp += 100
	}
	sp += 10 * (len(s.classes) + len(s.attributes) + len(s.pseudoClasses))
	if s.slots&slotElement != 0 {
		sp++
	}
	if s.slots&slotPseudoElement != 0 {
		sp++
	}
	for _, l := range s.combined {
		sp += l.sel.Specificity()
	}
	return sp
}
