package widgets

import (
	"maps"
	"slices"

	"github.com/go-drift/hoist/pkg/core"
)

// Group is a named container with presentation attributes.
//
// Children are reconciled by key: a keyed child that moves keeps its element
// and any state below it. Unkeyed children are matched by position.
type Group struct {
	// Name identifies the group in rendered output. Empty renders as "group".
	Name string
	// Attributes are free-form presentation attributes (class, id, role...).
	Attributes map[string]string
	// Children are the widgets inside the group. Nil entries are skipped.
	Children []core.Widget
}

func (g Group) CreateElement() core.Element {
	return core.NewMultiChildElement()
}

func (g Group) Key() any {
	return nil
}

// ChildWidgets returns the group's children.
func (g Group) ChildWidgets() []core.Widget {
	return g.Children
}

// Tag returns the name used for the group in rendered output.
func (g Group) Tag() string {
	if g.Name == "" {
		return "group"
	}
	return g.Name
}

// SortedAttributes returns the attribute names in lexical order.
func (g Group) SortedAttributes() []string {
	return slices.Sorted(maps.Keys(g.Attributes))
}

// GroupOf creates an unnamed group with the given children.
func GroupOf(children ...core.Widget) Group {
	return Group{Children: children}
}
