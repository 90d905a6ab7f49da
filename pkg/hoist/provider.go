package hoist

import "github.com/go-drift/hoist/pkg/core"

// Provider owns a Registry for its subtree. Slots and Hoists of the same
// Component below it share that Registry; the Registry is discarded when
// the Provider unmounts.
//
// Providers nest: a Slot or Hoist binds to the nearest Provider of its own
// Component and ignores Providers of other Components in between.
type Provider struct {
	core.StatefulBase
	Component *Component
	Child     core.Widget
}

func (p Provider) CreateState() core.State {
	return &providerState{}
}

type providerState struct {
	core.StateBase
	component *Component
	registry  *Registry
}

func (s *providerState) InitState() {
	w := s.Element().Widget().(Provider)
	s.component = componentOf(w.Component, "Provider")
	s.registry = s.own(s.component)
}

// own creates a registry that is closed when the state is disposed, after
// every descendant has unmounted.
func (s *providerState) own(c *Component) *Registry {
	return core.UseController(s, c.newRegistry)
}

func (s *providerState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(Provider)
	next := componentOf(w.Component, "Provider")
	if next == s.component {
		return
	}
	// A different component means a different scope; descendants re-resolve
	// when the scope widget below notifies them.
	s.registry.Close()
	s.component = next
	s.registry = s.own(next)
}

func (s *providerState) Build(ctx core.BuildContext) core.Widget {
	return scope{
		component: s.component,
		registry:  s.registry,
		child:     s.Element().Widget().(Provider).Child,
	}
}

// scope exposes a Provider's registry to its descendants.
type scope struct {
	core.InheritedBase
	component *Component
	registry  *Registry
	child     core.Widget
}

func (s scope) ChildWidget() core.Widget { return s.child }

func (s scope) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(scope)
	return !ok || s.registry != old.registry
}
