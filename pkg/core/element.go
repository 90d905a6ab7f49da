package core

import (
	"reflect"
	"time"

	"github.com/go-drift/hoist/pkg/errors"
)

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool

	// inherited elements this element registered with as a dependent
	dependencies []*InheritedElement
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) Slot() any {
	return e.slot
}

func (e *elementBase) UpdateSlot(newSlot any) {
	e.slot = newSlot
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

func (e *elementBase) attach(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
}

func (e *elementBase) addDependency(inherited *InheritedElement) {
	e.dependencies = append(e.dependencies, inherited)
}

// detach marks the element unmounted and drops it from every inherited
// element it depends on.
func (e *elementBase) detach() {
	e.mounted = false
	for _, inherited := range e.dependencies {
		inherited.RemoveDependent(e.self)
	}
	e.dependencies = nil
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) DependOnInherited(inheritedType reflect.Type) any {
	return dependOnInheritedImpl(e.self, inheritedType, nil)
}

func (e *elementBase) DependOnInheritedWhere(inheritedType reflect.Type, match func(InheritedWidget) bool) any {
	return dependOnInheritedImpl(e.self, inheritedType, match)
}

// safeBuild executes a build function with panic recovery.
// If the build panics, it reports the error and returns a placeholder widget.
// Fatal errors are reported and re-panicked.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				if errors.IsFatal(r) {
					panic(r)
				}
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)

		if builder := GetErrorWidgetBuilder(); builder != nil {
			if errWidget := builder(buildErr); errWidget != nil {
				return errWidget
			}
		}
		return errorPlaceholder{err: buildErr}
	}
	return built
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates a StatelessElement.
// The widget and build owner are set by the framework during inflation.
func NewStatelessElement() *StatelessElement {
	element := &StatelessElement{}
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.detach()
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner, nil)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates a StatefulElement.
// The widget and build owner are set by the framework during inflation.
func NewStatefulElement() *StatefulElement {
	element := &StatefulElement{}
	element.setSelf(element)
	return element
}

// State returns the State object owned by this element.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ setElement(*StatefulElement) }); ok {
		setter.setElement(e)
	} else if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.detach()
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner, nil)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// LeafElement hosts a widget without children (text, buttons).
type LeafElement struct {
	elementBase
}

// NewLeafElement creates a LeafElement.
func NewLeafElement() *LeafElement {
	element := &LeafElement{}
	element.setSelf(element)
	return element
}

func (e *LeafElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
}

func (e *LeafElement) Update(newWidget Widget) {
	e.widget = newWidget
}

func (e *LeafElement) Unmount() {
	e.detach()
}

func (e *LeafElement) RebuildIfNeeded() {
	e.dirty = false
}

func (e *LeafElement) VisitChildren(visitor func(Element) bool) {}

// MultiChildElement hosts a MultiChildWidget and reconciles its children by key.
type MultiChildElement struct {
	elementBase
	children []Element
}

// NewMultiChildElement creates a MultiChildElement.
func NewMultiChildElement() *MultiChildElement {
	element := &MultiChildElement{}
	element.setSelf(element)
	return element
}

// Mount mounts the children one at a time, so a child that panics leaves
// its earlier siblings reachable for Unmount.
func (e *MultiChildElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = false
	var previous Element
	for _, widget := range e.widget.(MultiChildWidget).ChildWidgets() {
		if widget == nil {
			continue
		}
		child := updateChild(nil, widget, e, e.buildOwner, IndexedSlot{Index: len(e.children), PreviousSibling: previous})
		e.children = append(e.children, child)
		previous = child
	}
}

func (e *MultiChildElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *MultiChildElement) Unmount() {
	e.detach()
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *MultiChildElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widgets := e.widget.(MultiChildWidget).ChildWidgets()
	e.children = updateChildren(e, e.children, widgets, e.buildOwner)
}

func (e *MultiChildElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// MountRoot inflates and mounts widget as the root of a new tree.
// If mounting panics, whatever was mounted is unmounted again before the
// panic continues.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	mountChild(element, nil, nil)
	return element
}

// mountChild mounts element, unmounting it again if Mount panics.
func mountChild(element Element, parent Element, slot any) {
	mounted := false
	defer func() {
		if !mounted {
			unmountPartial(element)
		}
	}()
	element.Mount(parent, slot)
	mounted = true
}

func unmountPartial(element Element) {
	defer errors.Recover("core.Mount")
	element.Unmount()
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		if existing.Slot() != slot {
			existing.UpdateSlot(slot)
		}
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	mountChild(element, parent, slot)
	return element
}

// updateChildren reconciles oldChildren against newWidgets. Keyed children
// are matched by key regardless of position; the rest are matched in order.
// Old children that find no match are unmounted in their previous order.
func updateChildren(parent Element, oldChildren []Element, newWidgets []Widget, owner *BuildOwner) []Element {
	keyed := make(map[any]Element)
	var unkeyed []Element
	for _, child := range oldChildren {
		key := child.Widget().Key()
		if key != nil && isComparable(key) {
			if _, dup := keyed[key]; !dup {
				keyed[key] = child
				continue
			}
		}
		unkeyed = append(unkeyed, child)
	}

	used := make(map[Element]bool, len(oldChildren))
	updated := make([]Element, 0, len(newWidgets))
	nextUnkeyed := 0
	var previous Element
	for _, widget := range newWidgets {
		if widget == nil {
			continue
		}
		var existing Element
		if key := widget.Key(); key != nil && isComparable(key) {
			if match, ok := keyed[key]; ok && !used[match] {
				existing = match
			}
		} else if nextUnkeyed < len(unkeyed) {
			existing = unkeyed[nextUnkeyed]
			nextUnkeyed++
		}
		if existing != nil {
			used[existing] = true
		}
		slot := IndexedSlot{Index: len(updated), PreviousSibling: previous}
		child := updateChild(existing, widget, parent, owner, slot)
		if child != nil {
			updated = append(updated, child)
			previous = child
		}
	}

	for _, child := range oldChildren {
		if !used[child] {
			child.Unmount()
		}
	}
	return updated
}

// CanUpdate reports whether an element mounted for existing can be
// reconfigured with next instead of being replaced.
func CanUpdate(existing, next Widget) bool {
	return canUpdateWidget(existing, next)
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return keysEqual(existing.Key(), next.Key())
}

func keysEqual(a, b any) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// isComparable reports whether v can be used with == without panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}
