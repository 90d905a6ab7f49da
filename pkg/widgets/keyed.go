package widgets

import "github.com/go-drift/hoist/pkg/core"

// Keyed attaches a key to a child so that a parent [Group] can follow it
// across reorders. ID must be comparable; non-comparable IDs are treated as
// if the child were unkeyed.
type Keyed struct {
	core.StatelessBase
	ID    any
	Child core.Widget
}

// Key returns the wrapper's ID.
func (k Keyed) Key() any {
	return k.ID
}

func (k Keyed) Build(ctx core.BuildContext) core.Widget {
	return k.Child
}
