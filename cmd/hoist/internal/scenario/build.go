package scenario

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/hoist"
	"github.com/go-drift/hoist/pkg/widgets"
)

// Builder turns scenarios into widget trees. It keeps one hoist.Component
// per system name for its whole life, so successive builds of an edited
// scenario update the mounted tree instead of replacing it.
type Builder struct {
	logger     *slog.Logger
	components map[string]*hoist.Component
}

// NewBuilder returns a Builder whose components log through logger.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		logger:     logger,
		components: make(map[string]*hoist.Component),
	}
}

// Component returns the component for a system, creating it on first use.
func (b *Builder) Component(system string) *hoist.Component {
	c, ok := b.components[system]
	if !ok {
		c = hoist.New(hoist.WithName(system), hoist.WithLogger(b.logger))
		b.components[system] = c
	}
	return c
}

// Build returns the widget tree for s. s should already be validated.
func (b *Builder) Build(s *Scenario) (core.Widget, error) {
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("build scenario: no root node")
	}
	if s.Root.Hidden {
		return nil, fmt.Errorf("build scenario: root node is hidden")
	}
	return b.node(s.Root)
}

func (b *Builder) node(n *Node) (core.Widget, error) {
	children, err := b.children(n)
	if err != nil {
		return nil, err
	}

	var w core.Widget
	switch n.Kind {
	case KindGroup:
		w = widgets.Group{Name: n.Name, Attributes: n.Attributes, Children: children}
	case KindText:
		color, err := widgets.ParseColor(n.Color)
		if err != nil {
			return nil, err
		}
		w = widgets.Text{Content: n.Text, Color: color}
	case KindButton:
		color, err := widgets.ParseColor(n.Color)
		if err != nil {
			return nil, err
		}
		w = widgets.Button{Label: n.Text, Color: color}
	case KindProvider:
		w = b.Component(n.System).Provider(single(children))
	case KindSlot:
		w = b.Component(n.System).SlotWith(n.Attributes)
	case KindHoist:
		w = b.Component(n.System).HoistAt(n.Priority, single(children))
	default:
		return nil, fmt.Errorf("build scenario: unknown node kind %q", n.Kind)
	}

	if n.Key != "" {
		w = widgets.Keyed{ID: n.Key, Child: w}
	}
	return w, nil
}

func (b *Builder) children(n *Node) ([]core.Widget, error) {
	var out []core.Widget
	for _, child := range n.Children {
		if child.Hidden {
			continue
		}
		w, err := b.node(child)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// single collapses children into one widget.
func single(children []core.Widget) core.Widget {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	return widgets.GroupOf(children...)
}
