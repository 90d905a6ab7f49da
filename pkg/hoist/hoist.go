package hoist

import "github.com/go-drift/hoist/pkg/core"

// Hoist contributes Child to the Slots of its Component and renders nothing
// where it stands.
//
// The entry is registered when the Hoist mounts, replaced in place when the
// Hoist is rebuilt with new content or priority, and removed exactly once
// when it unmounts. Mounting a Hoist outside a Provider of its Component
// panics with *errors.MissingScopeError.
type Hoist struct {
	core.StatefulBase
	Component *Component
	// Priority orders entries in the Slot; lower values render first.
	// Entries with equal priority render in mount order.
	Priority int
	Child    core.Widget
}

func (h Hoist) CreateState() core.State {
	return &hoistState{}
}

type hoistState struct {
	core.StateBase
	component *Component
	registry  *Registry
	id        Identity
}

func (s *hoistState) InitState() {
	w := s.Element().Widget().(Hoist)
	s.component = componentOf(w.Component, "Hoist")
	s.registry = s.component.mustRegistry(s.Element(), "Hoist")
	s.id = NewIdentity()
	s.registry.Upsert(s.id, w.Child, w.Priority)
	s.OnDispose(func() {
		s.registry.Remove(s.id)
	})
}

func (s *hoistState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(Hoist)
	s.component = componentOf(w.Component, "Hoist")
	s.bind(s.component.mustRegistry(s.Element(), "Hoist"))
}

// DidChangeDependencies follows a scope that changed registry. A scope that
// no longer matches may be waiting for this widget's own update, so a failed
// lookup is left to DidUpdateWidget.
func (s *hoistState) DidChangeDependencies() {
	if found, ok := s.component.lookup(s.Element()); ok && found.registry != s.registry {
		s.bind(found.registry)
	}
}

// bind moves the entry into registry and upserts the current content.
func (s *hoistState) bind(registry *Registry) {
	if registry != s.registry {
		s.registry.Remove(s.id)
		s.registry = registry
	}
	w := s.Element().Widget().(Hoist)
	s.registry.Upsert(s.id, w.Child, w.Priority)
}

func (s *hoistState) Build(ctx core.BuildContext) core.Widget {
	return nil
}
