package testing

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/errors"
	"github.com/go-drift/hoist/pkg/outline"
	"github.com/go-drift/hoist/pkg/widgets"
)

// DefaultMaxFrames bounds PumpAndSettle.
const DefaultMaxFrames = 100

// ErrNotSettled is returned when PumpAndSettle runs out of frames.
var ErrNotSettled = stderrors.New("PumpAndSettle: framework did not settle")

// WidgetTester provides isolated widget testing without a host.
// It drives the same build phase a host would and exposes the mounted
// element tree for inspection.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
}

// NewWidgetTester creates a tester with a fresh build owner.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree, disposing every state in it.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// BuildOwner returns the owner that schedules rebuilds for this tester.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// PumpWidget mounts a widget, replacing any previously mounted tree, and
// runs one frame. Pumping a nil widget just unmounts the current tree.
//
// Panics carrying fatal errors (see [errors.IsFatal]) are returned as
// errors; the partially mounted tree is unmounted and nothing stays mounted.
func (t *WidgetTester) PumpWidget(widget core.Widget) (err error) {
	defer func() {
		if err != nil {
			t.Cleanup()
		}
	}()
	defer errors.RecoverInto("testing.PumpWidget", &err)

	t.Cleanup()
	if widget == nil {
		return nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// UpdateWidget reconfigures the mounted root with widget, keeping element
// identity wherever the widget type and key match, and runs one frame.
// With nothing mounted it behaves like PumpWidget.
func (t *WidgetTester) UpdateWidget(widget core.Widget) (err error) {
	if t.root == nil || widget == nil || !core.CanUpdate(t.root.Widget(), widget) {
		return t.PumpWidget(widget)
	}
	defer errors.RecoverInto("testing.UpdateWidget", &err)

	t.root.Update(widget)
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, then a build flush.
func (t *WidgetTester) Pump() (err error) {
	defer errors.RecoverInto("testing.Pump", &err)

	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle pumps until no work is pending, at most maxFrames times
// (DefaultMaxFrames when maxFrames <= 0).
func (t *WidgetTester) PumpAndSettle(maxFrames int) error {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	for range maxFrames {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
	}
	return ErrNotSettled
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// Outline returns the rendered outline of the mounted tree.
func (t *WidgetTester) Outline() string {
	return outline.Render(t.root)
}

// Texts returns the visible texts of the mounted tree in order.
func (t *WidgetTester) Texts() []string {
	return outline.Texts(t.root)
}

// Tap finds the first [widgets.Button] matched by finder (the element itself
// or its first Button descendant) and invokes its handler.
// It returns an error when nothing tappable is found or the button is disabled.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("tap: %s found no elements", finder.Description())
	}
	buttons := collectMatches(result.First(), func(e core.Element) bool {
		_, ok := e.Widget().(widgets.Button)
		return ok
	})
	if len(buttons) == 0 {
		return fmt.Errorf("tap: %s matched no button", finder.Description())
	}
	button := buttons[0].Widget().(widgets.Button)
	if !button.Tap() {
		return fmt.Errorf("tap: button %q is disabled or has no handler", button.Label)
	}
	return nil
}
