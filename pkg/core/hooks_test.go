package core

import "testing"

// MockDisposable for testing UseController
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	// We can't easily test SetState being called without a real element,
	// but we can verify the subscription is set up
	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseListenable_NotifyMarksElementDirty(t *testing.T) {
	owner := NewBuildOwner()
	builds := 0
	notifier := NewNotifier()
	state := &testState{buildFn: func(BuildContext) Widget {
		builds++
		return nil
	}}
	root := MountRoot(testStatefulWidget{createStateFn: func() State {
		UseListenable(state, notifier)
		return state
	}}, owner)

	notifier.Notify()
	owner.FlushBuild()
	if builds != 2 {
		t.Errorf("Expected 2 builds after notify, got %d", builds)
	}

	root.Unmount()
	notifier.Notify()
	if owner.NeedsWork() {
		t.Error("Expected no scheduled work after the state was disposed")
	}
}

func TestOnDispose_UnregisterSkipsCleanup(t *testing.T) {
	base := &StateBase{}
	var ran []string
	base.OnDispose(func() { ran = append(ran, "first") })
	unregister := base.OnDispose(func() { ran = append(ran, "second") })
	base.OnDispose(func() { ran = append(ran, "third") })

	unregister()
	base.Dispose()
	base.Dispose()

	if len(ran) != 2 || ran[0] != "third" || ran[1] != "first" {
		t.Errorf("Expected [third first], got %v", ran)
	}
}

func TestOnDispose_AfterDisposeRunsImmediately(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.OnDispose(func() { ran = true })
	if !ran {
		t.Error("Expected cleanup registered after dispose to run immediately")
	}
}

func TestSetState_AfterDisposeIsNoop(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	called := false
	base.SetState(func() { called = true })
	if called {
		t.Error("Expected SetState to skip fn after dispose")
	}
}

func TestManaged_Value(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Expected 42, got %d", state.Value())
	}
}

func TestManaged_Set(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 0)

	state.Set(100)

	if state.Value() != 100 {
		t.Errorf("Expected 100, got %d", state.Value())
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	state.Update(func(v int) int { return v * 2 })

	if state.Value() != 20 {
		t.Errorf("Expected 20, got %d", state.Value())
	}
}

func TestManaged_StringType(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, "hello")

	if state.Value() != "hello" {
		t.Errorf("Expected 'hello', got '%s'", state.Value())
	}

	state.Set("world")

	if state.Value() != "world" {
		t.Errorf("Expected 'world', got '%s'", state.Value())
	}
}

func TestManaged_StructType(t *testing.T) {
	type Person struct {
		Name string
		Age  int
	}

	base := &StateBase{}
	state := NewManaged(base, Person{Name: "Alice", Age: 30})

	if state.Value().Name != "Alice" || state.Value().Age != 30 {
		t.Errorf("Unexpected struct value: %+v", state.Value())
	}

	state.Update(func(p Person) Person {
		p.Age++
		return p
	})

	if state.Value().Age != 31 {
		t.Errorf("Expected age 31, got %d", state.Value().Age)
	}
}
