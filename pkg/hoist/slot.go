package hoist

import (
	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/widgets"
)

// slotTag names the group a Slot renders.
const slotTag = "slot"

// Slot renders the content hoisted into the nearest Provider of its
// Component, in priority order.
//
// With no entries the Slot renders nothing. Otherwise it renders a
// [widgets.Group] carrying Attributes unchanged, with one child per entry.
// Each child is keyed by its entry's Identity, so content that moves keeps
// its element and state.
type Slot struct {
	core.StatefulBase
	Component *Component
	// Attributes are forwarded to the rendered group.
	Attributes map[string]string
}

func (s Slot) CreateState() core.State {
	return &slotState{}
}

type slotState struct {
	core.StateBase
	component   *Component
	registry    *Registry
	unsubscribe func()
}

func (s *slotState) InitState() {
	w := s.Element().Widget().(Slot)
	s.component = componentOf(w.Component, "Slot")
	s.subscribe(s.component.mustRegistry(s.Element(), "Slot"))
	s.OnDispose(func() {
		s.unsubscribe()
	})
}

func (s *slotState) subscribe(registry *Registry) {
	s.registry = registry
	s.unsubscribe = registry.Subscribe(func() {
		s.SetState(nil)
	})
}

func (s *slotState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(Slot)
	s.component = componentOf(w.Component, "Slot")
	s.bind(s.component.mustRegistry(s.Element(), "Slot"))
}

func (s *slotState) DidChangeDependencies() {
	if found, ok := s.component.lookup(s.Element()); ok {
		s.bind(found.registry)
	}
}

// bind follows registry if it is not the one already subscribed to.
func (s *slotState) bind(registry *Registry) {
	if registry == s.registry {
		return
	}
	s.unsubscribe()
	s.subscribe(registry)
	s.SetState(nil)
}

func (s *slotState) Build(ctx core.BuildContext) core.Widget {
	entries := s.registry.Snapshot()
	if len(entries) == 0 {
		return nil
	}
	children := make([]core.Widget, len(entries))
	for i, entry := range entries {
		children[i] = widgets.Keyed{ID: entry.Identity, Child: entry.Content}
	}
	return widgets.Group{
		Name:       slotTag,
		Attributes: s.Element().Widget().(Slot).Attributes,
		Children:   children,
	}
}
