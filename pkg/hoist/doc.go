// Package hoist renders content declared in one part of a widget tree at a
// different place in the same tree.
//
// A [Component] is created once with [New] and hands out three linked
// widgets:
//
//   - [Provider] establishes a scope and owns its [Registry].
//   - [Hoist] registers its Child with the nearest Provider of the same
//     Component and renders nothing where it stands.
//   - [Slot] renders every registered entry, ordered by Priority and then
//     by registration order.
//
// Typical use puts the Slot in a shared region such as a header and lets
// deeply nested pages contribute to it:
//
//	actions := hoist.New(hoist.WithName("header-actions"))
//
//	actions.Provider(widgets.GroupOf(
//		widgets.Group{Name: "header", Children: []core.Widget{actions.Slot()}},
//		page,
//	))
//
//	// somewhere inside page
//	actions.HoistAt(1, widgets.ButtonOf("Settings", openSettings))
//
// Components are independent: a Hoist only ever reaches Providers created
// by its own Component, and the nearest one wins when Providers of the same
// Component are nested. Using a Hoist or Slot with no such Provider above it
// panics with *errors.MissingScopeError.
//
// Registry mutations notify subscribers synchronously. A Slot reacts by
// scheduling a rebuild, which runs in the same build flush.
package hoist
