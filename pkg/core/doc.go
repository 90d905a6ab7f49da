// Package core provides the widget and element framework that hosts hoist.
//
// Widgets are immutable descriptions; elements are their mounted instances
// and own the lifecycle. The binding layer in package hoist uses exactly
// the pieces defined here:
//
//   - StatefulWidget/State with InitState, DidUpdateWidget and Dispose for
//     registration on mount, update and unmount.
//   - InheritedWidget plus [BuildContext.DependOnInheritedWhere] to find the
//     nearest provider scope belonging to one particular component.
//   - [Listenable] and [UseListenable] for the subscribe/unsubscribe pair a
//     slot holds for its mount lifetime.
//   - [MultiChildWidget] with keyed reconciliation so reordered children keep
//     their elements.
//
// # Build scheduling
//
// SetState marks an element dirty and hands it to the [BuildOwner]. A call to
// [BuildOwner.FlushBuild] rebuilds dirty elements shallowest first and keeps
// going until nothing is dirty, so work scheduled during a flush completes in
// the same flush.
//
// # Build errors
//
// A panic inside Build is recovered, reported through package errors and
// replaced by a placeholder. Errors for which errors.IsFatal is true are
// re-panicked instead and surface at the caller of Mount or FlushBuild.
package core
