// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/widgets"
)

// Counter is a stateful widget that displays a count and increments on tap.
type Counter struct {
	core.StatefulBase
	Initial int
	OnTap   func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count int
	onTap func(int)
}

func (s *counterState) InitState() {
	w := s.Element().Widget().(Counter)
	s.count = w.Initial
	s.onTap = w.OnTap
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Group{
		Name: "counter",
		Children: []core.Widget{
			widgets.Text{Content: fmt.Sprintf("%d", s.count)},
			widgets.Button{
				Label: "+",
				OnTap: func() {
					s.SetState(func() {
						s.count++
					})
					if s.onTap != nil {
						s.onTap(s.count)
					}
				},
			},
		},
	}
}

func (s *counterState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(Counter); ok {
		s.onTap = w.OnTap
	}
}
