package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/widgets"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		panic("Finder found no elements: " + r.describe())
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// Widgets returns the widgets of all matches in traversal order.
func (r FinderResult) Widgets() []core.Widget {
	out := make([]core.Widget, len(r.elements))
	for i, e := range r.elements {
		out[i] = e.Widget()
	}
	return out
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// matcher is a Finder built from a per-element predicate.
type matcher struct {
	match func(core.Element) bool
	desc  string
}

func (f *matcher) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, f.match)
}

func (f *matcher) Description() string {
	return f.desc
}

// ByType matches elements whose widget has type T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &matcher{
		match: func(e core.Element) bool { return reflect.TypeOf(e.Widget()) == t },
		desc:  fmt.Sprintf("ByType(%s)", t),
	}
}

// ByKey matches elements whose widget key equals key.
func ByKey(key any) Finder {
	return &matcher{
		match: func(e core.Element) bool { return keysEqual(e.Widget().Key(), key) },
		desc:  fmt.Sprintf("ByKey(%v)", key),
	}
}

// ByText matches a [widgets.Text] with exactly this content or a
// [widgets.Button] with exactly this label.
func ByText(text string) Finder {
	return byVisibleText(func(s string) bool { return s == text }, fmt.Sprintf("ByText(%q)", text))
}

// ByTextContaining matches a [widgets.Text] or [widgets.Button] whose
// visible text contains substring.
func ByTextContaining(substring string) Finder {
	return byVisibleText(func(s string) bool { return strings.Contains(s, substring) },
		fmt.Sprintf("ByTextContaining(%q)", substring))
}

func byVisibleText(accept func(string) bool, desc string) Finder {
	return &matcher{
		match: func(e core.Element) bool {
			text, ok := visibleText(e.Widget())
			return ok && accept(text)
		},
		desc: desc,
	}
}

// ByGroup matches [widgets.Group] elements with the given name.
func ByGroup(name string) Finder {
	return &matcher{
		match: func(e core.Element) bool {
			g, ok := e.Widget().(widgets.Group)
			return ok && g.Name == name
		},
		desc: fmt.Sprintf("ByGroup(%q)", name),
	}
}

// ByPredicate matches elements satisfying fn.
func ByPredicate(fn func(core.Element) bool) Finder {
	return &matcher{match: fn, desc: "ByPredicate(...)"}
}

// descendantFinder matches elements below a match of another finder.
type descendantFinder struct {
	of, matching Finder
}

func (f *descendantFinder) Evaluate(root core.Element) []core.Element {
	var results []core.Element
	seen := make(map[core.Element]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// the ancestor itself is excluded
		ancestor.VisitChildren(func(child core.Element) bool {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
			return true
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches elements satisfying matching that sit below an
// element satisfying of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder matches elements above a match of another finder.
type ancestorFinder struct {
	of, matching Finder
}

func (f *ancestorFinder) Evaluate(root core.Element) []core.Element {
	targets := f.of.Evaluate(root)
	if len(targets) == 0 {
		return nil
	}
	var results []core.Element
	for _, candidate := range f.matching.Evaluate(root) {
		for _, target := range targets {
			if isAncestorOf(candidate, target) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor matches elements satisfying matching that contain an element
// satisfying of in their subtree.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// isAncestorOf returns true if ancestor contains descendant in its subtree.
func isAncestorOf(ancestor, descendant core.Element) bool {
	found := false
	walkTree(ancestor, func(e core.Element) bool {
		found = found || e == descendant
		return !found
	})
	return found
}

// collectMatches performs depth-first pre-order traversal, collecting
// elements that satisfy the predicate.
func collectMatches(root core.Element, predicate func(core.Element) bool) []core.Element {
	var results []core.Element
	walkTree(root, func(e core.Element) bool {
		if predicate(e) {
			results = append(results, e)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal of the element tree.
// Returning false from visitor skips that element's children.
func walkTree(root core.Element, visitor func(core.Element) bool) {
	if !visitor(root) {
		return
	}
	root.VisitChildren(func(child core.Element) bool {
		walkTree(child, visitor)
		return true
	})
}

// visibleText returns the text a leaf widget shows.
func visibleText(w core.Widget) (string, bool) {
	switch w := w.(type) {
	case widgets.Text:
		return w.Content, true
	case widgets.Button:
		return w.Label, true
	}
	return "", false
}

func keysEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
