package scenario

import (
	"log/slog"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/errors"
	"github.com/go-drift/hoist/pkg/outline"
)

// Session keeps one scenario tree mounted across reloads.
//
// Each Apply reconfigures the mounted tree with the new scenario, so a
// hoist that survives an edit keeps its entry and sequence id. A Session
// is not safe for concurrent use.
type Session struct {
	logger  *slog.Logger
	builder *Builder
	owner   *core.BuildOwner
	root    core.Element
}

// NewSession returns an empty Session.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		logger:  logger,
		builder: NewBuilder(logger),
		owner:   core.NewBuildOwner(),
	}
}

// Apply builds s and mounts it, updating the current tree in place when
// its root is compatible. Errors raised while mounting, such as a hoist
// with no provider above it, are returned and leave the session empty.
func (s *Session) Apply(sc *Scenario) (err error) {
	w, err := s.builder.Build(sc)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			s.discard()
		}
	}()
	defer errors.RecoverInto("scenario.Apply", &err)

	if s.root != nil && core.CanUpdate(s.root.Widget(), w) {
		s.logger.Debug("updating mounted scenario")
		s.root.Update(w)
	} else {
		s.discard()
		s.logger.Debug("mounting scenario")
		s.root = core.MountRoot(w, s.owner)
	}
	s.owner.FlushBuild()
	return nil
}

// Outline renders the mounted tree, or "" when nothing is mounted.
func (s *Session) Outline() string {
	if s.root == nil {
		return ""
	}
	return outline.Render(s.root)
}

// Close unmounts the tree.
func (s *Session) Close() {
	s.discard()
}

func (s *Session) discard() {
	root := s.root
	s.root = nil
	s.owner = core.NewBuildOwner()
	if root == nil {
		return
	}
	defer errors.Recover("scenario.discard")
	root.Unmount()
}
