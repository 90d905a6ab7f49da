package core

import "reflect"

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its child from configuration alone.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget exposes a value to all descendants that depend on it.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// MultiChildWidget is implemented by widgets that hold an ordered list of
// children. Children carrying a non-nil comparable key keep their element
// (and any state below it) when they move within the list.
type MultiChildWidget interface {
	Widget
	ChildWidgets() []Widget
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	Widget() Widget
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
	Slot() any
	UpdateSlot(newSlot any)
}

// BuildContext is the handle a widget receives during build to look up
// ancestors.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
	// DependOnInherited returns the nearest ancestor InheritedWidget of the
	// given type and registers the caller as a dependent. Returns nil if none.
	DependOnInherited(inheritedType reflect.Type) any
	// DependOnInheritedWhere is DependOnInherited restricted to ancestors
	// accepted by match. Nearer ancestors of the same type that do not match
	// are skipped.
	DependOnInheritedWhere(inheritedType reflect.Type, match func(InheritedWidget) bool) any
}

// Listenable is anything that can notify zero-argument listeners.
// AddListener returns a function that removes the listener.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is implemented by controllers that release resources.
type Disposable interface {
	Dispose()
}

// IndexedSlot identifies a child's position inside a multi-child element.
type IndexedSlot struct {
	Index           int
	PreviousSibling Element
}
