package core

import (
	"cmp"
	"reflect"
	"slices"
)

// InheritedElement is the element that hosts an [InheritedWidget] and tracks
// the descendants that depend on it.
//
// When a descendant calls [BuildContext.DependOnInherited], it registers as a
// dependent of this element. When the InheritedWidget is updated and
// [InheritedWidget.UpdateShouldNotify] returns true, every mounted dependent
// is notified and scheduled for rebuild, in the order the dependents first
// registered. Dependents deregister when they unmount.
type InheritedElement struct {
	elementBase
	child         Element
	dependents    map[Element]uint64
	nextDependent uint64
}

// NewInheritedElement creates an InheritedElement.
// The widget and build owner are set later by the framework during inflation.
func NewInheritedElement() *InheritedElement {
	element := &InheritedElement{
		dependents: make(map[Element]uint64),
	}
	element.setSelf(element)
	return element
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(oldWidget) {
		for _, dependent := range e.orderedDependents() {
			notifyDependent(dependent)
		}
	}
	e.MarkNeedsBuild()
}

func (e *InheritedElement) Unmount() {
	e.detach()
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
}

func (e *InheritedElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	childWidget := e.widget.(InheritedWidget).ChildWidget()
	e.child = updateChild(e.child, childWidget, e, e.buildOwner, nil)
}

func (e *InheritedElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// AddDependent registers an element as depending on this inherited widget.
// Registering again keeps the element's original place in the notify order.
func (e *InheritedElement) AddDependent(dependent Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]uint64)
	}
	if _, ok := e.dependents[dependent]; ok {
		return
	}
	e.nextDependent++
	e.dependents[dependent] = e.nextDependent
	if base, ok := dependent.(interface{ addDependency(*InheritedElement) }); ok {
		base.addDependency(e)
	}
}

// RemoveDependent unregisters an element as depending on this inherited widget.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// DependentCount returns the number of registered dependents.
func (e *InheritedElement) DependentCount() int {
	return len(e.dependents)
}

// orderedDependents returns the dependents in registration order.
func (e *InheritedElement) orderedDependents() []Element {
	out := make([]Element, 0, len(e.dependents))
	for dependent := range e.dependents {
		out = append(out, dependent)
	}
	slices.SortFunc(out, func(a, b Element) int {
		return cmp.Compare(e.dependents[a], e.dependents[b])
	})
	return out
}

// notifyDependent triggers DidChangeDependencies on the dependent element.
func notifyDependent(element Element) {
	if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
		return
	}
	if stateful, ok := element.(*StatefulElement); ok {
		if stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
		stateful.MarkNeedsBuild()
		return
	}
	element.MarkNeedsBuild()
}

// dependOnInheritedImpl walks up from element to the nearest InheritedElement
// whose widget has the requested type and satisfies match (nil accepts any).
func dependOnInheritedImpl(element Element, inheritedType reflect.Type, match func(InheritedWidget) bool) any {
	var current Element
	if base, ok := element.(interface{ parentElement() Element }); ok {
		current = base.parentElement()
	}

	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType || (widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				if match == nil || match(inherited.widget.(InheritedWidget)) {
					inherited.AddDependent(element)
					return inherited.widget
				}
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}
