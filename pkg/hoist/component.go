package hoist

import (
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/errors"
)

// Component ties a Provider, its Slots and its Hoists together. Widgets of
// one Component only ever see the Registry of a Provider of the same
// Component, so independent components never observe each other.
type Component struct {
	name   string
	logger *slog.Logger
}

// Option configures a Component.
type Option func(*Component)

// WithName sets the name used in error messages and logs.
func WithName(name string) Option {
	return func(c *Component) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger handed to every Registry the Component creates.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Component. Each call yields an independent
// Provider/Slot/Hoist trio:
//
//	var headerActions = hoist.New(hoist.WithName("header-actions"))
//
//	headerActions.Provider(page)      // owns the registry
//	headerActions.Slot()              // renders the hoisted content
//	headerActions.HoistAt(1, button)  // contributes content from anywhere below
func New(opts ...Option) *Component {
	c := &Component{
		name:   "hoist-" + uuid.NewString(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the component's name.
func (c *Component) Name() string {
	return c.name
}

// Provider returns a Provider of this component wrapping child.
func (c *Component) Provider(child core.Widget) Provider {
	return Provider{Component: c, Child: child}
}

// Slot returns a Slot of this component.
func (c *Component) Slot() Slot {
	return Slot{Component: c}
}

// SlotWith returns a Slot that forwards attrs to the group it renders.
func (c *Component) SlotWith(attrs map[string]string) Slot {
	return Slot{Component: c, Attributes: attrs}
}

// Hoist returns a Hoist of this component with priority 0.
func (c *Component) Hoist(child core.Widget) Hoist {
	return Hoist{Component: c, Child: child}
}

// HoistAt returns a Hoist of this component with the given priority.
func (c *Component) HoistAt(priority int, child core.Widget) Hoist {
	return Hoist{Component: c, Priority: priority, Child: child}
}

// RegistryOf returns the Registry of the nearest enclosing Provider of this
// component. It returns a *errors.MissingScopeError when there is none.
func (c *Component) RegistryOf(ctx core.BuildContext) (*Registry, error) {
	if s, ok := c.lookup(ctx); ok {
		return s.registry, nil
	}
	return nil, c.missing("RegistryOf")
}

func (c *Component) newRegistry() *Registry {
	return NewRegistry(WithRegistryName(c.name), WithRegistryLogger(c.logger))
}

var scopeType = reflect.TypeFor[scope]()

func (c *Component) lookup(ctx core.BuildContext) (scope, bool) {
	found := ctx.DependOnInheritedWhere(scopeType, func(w core.InheritedWidget) bool {
		return w.(scope).component == c
	})
	s, ok := found.(scope)
	return s, ok
}

// mustRegistry is RegistryOf for widgets that cannot work without a scope.
// It panics with *errors.MissingScopeError, which the element tree lets
// through to the caller of Mount or FlushBuild.
func (c *Component) mustRegistry(ctx core.BuildContext, widget string) *Registry {
	if s, ok := c.lookup(ctx); ok {
		return s.registry
	}
	panic(c.missing(widget))
}

func (c *Component) missing(widget string) *errors.MissingScopeError {
	return &errors.MissingScopeError{Widget: widget, Provider: c.name}
}

// componentOf returns the widget's component, panicking on nil.
func componentOf(c *Component, widget string) *Component {
	if c == nil {
		panic("hoist: " + widget + " has no Component; create one with hoist.New")
	}
	return c
}
