package core

import (
	"reflect"
	"testing"
)

type salutation struct {
	StatelessBase
	name string
}

func (g salutation) Build(ctx BuildContext) Widget { return testLeafWidget{id: g.name} }

type tally struct {
	StatefulBase
}

func (tally) CreateState() State { return &testState{} }

// registryScope has the shape of a provider scope: descendants care only
// about which registry it carries.
type registryScope struct {
	InheritedBase
	registry *[]string
	child    Widget
}

func (s registryScope) ChildWidget() Widget { return s.child }

func (s registryScope) UpdateShouldNotify(old InheritedWidget) bool {
	return s.registry != old.(registryScope).registry
}

var registryScopeType = reflect.TypeFor[registryScope]()

func TestBases_CreateMatchingElements(t *testing.T) {
	tests := []struct {
		widget Widget
		want   Element
	}{
		{salutation{name: "hi"}, &StatelessElement{}},
		{tally{}, &StatefulElement{}},
		{registryScope{}, &InheritedElement{}},
	}
	for _, tt := range tests {
		got := tt.widget.CreateElement()
		if reflect.TypeOf(got) != reflect.TypeOf(tt.want) {
			t.Errorf("%T: expected %T, got %T", tt.widget, tt.want, got)
		}
		if tt.widget.Key() != nil {
			t.Errorf("%T: expected nil key, got %v", tt.widget, tt.widget.Key())
		}
	}
}

func TestStatelessBase_BuildsChild(t *testing.T) {
	root := MountRoot(salutation{name: "hi"}, NewBuildOwner()).(*StatelessElement)

	if root.child == nil || root.child.Widget().(testLeafWidget).id != "hi" {
		t.Fatalf("expected leaf child %q, got %v", "hi", root.child)
	}
}

func TestStateful_ToggleShowsAndHidesChild(t *testing.T) {
	owner := NewBuildOwner()
	var toggle func(func(bool) bool)
	widget := Stateful(
		func() bool { return true },
		func(show bool, ctx BuildContext, setState func(func(bool) bool)) Widget {
			toggle = setState
			if !show {
				return nil
			}
			return testLeafWidget{id: "action"}
		},
	)
	flip := func(show bool) bool { return !show }

	root := MountRoot(widget, owner).(*StatefulElement)
	if root.child == nil {
		t.Fatal("expected child while shown")
	}
	shown := root.child

	toggle(flip)
	owner.FlushBuild()
	if root.child != nil {
		t.Fatalf("expected no child while hidden, got %v", root.child)
	}

	toggle(flip)
	owner.FlushBuild()
	if root.child == nil {
		t.Fatal("expected child after showing again")
	}
	if root.child == shown {
		t.Error("expected a fresh element after the child was removed")
	}
}

func TestStateful_StateSurvivesParentUpdate(t *testing.T) {
	owner := NewBuildOwner()
	var seen []int
	var bump func(func(int) int)
	inline := func() Widget {
		return Stateful(
			func() int { return 1 },
			func(n int, ctx BuildContext, setState func(func(int) int)) Widget {
				seen = append(seen, n)
				bump = setState
				return nil
			},
		)
	}

	root := MountRoot(registryScope{child: inline()}, owner)
	bump(func(n int) int { return n + 1 })
	owner.FlushBuild()
	root.Update(registryScope{child: inline()})
	owner.FlushBuild()

	if got := seen[len(seen)-1]; got != 2 {
		t.Errorf("expected state 2 to survive the update, builds saw %v", seen)
	}
}

func TestInheritedBase_NotifiesOnlyWhenRegistryChanges(t *testing.T) {
	owner := NewBuildOwner()
	var notified []string
	reader := testStatefulWidget{createStateFn: func() State {
		s := &dependentState{notified: &notified}
		s.name = "reader"
		s.buildFn = func(ctx BuildContext) Widget {
			ctx.DependOnInheritedWhere(registryScopeType, func(w InheritedWidget) bool {
				return w.(registryScope).registry != nil
			})
			return nil
		}
		return s
	}}
	first, second := new([]string), new([]string)

	root := MountRoot(registryScope{registry: first, child: reader}, owner)
	root.Update(registryScope{registry: first, child: reader})
	owner.FlushBuild()
	if len(notified) != 0 {
		t.Fatalf("expected no notification for the same registry, got %v", notified)
	}

	root.Update(registryScope{registry: second, child: reader})
	owner.FlushBuild()
	if len(notified) != 1 {
		t.Errorf("expected one notification for a new registry, got %v", notified)
	}
	if count := root.(*InheritedElement).DependentCount(); count != 1 {
		t.Errorf("expected the reader to stay registered once, got %d", count)
	}
}
