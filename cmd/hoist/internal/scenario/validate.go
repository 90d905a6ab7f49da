package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/go-drift/hoist/pkg/widgets"
)

// FormatMajor is the scenario format major version this build reads.
const FormatMajor = "v1"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(validateNode, Node{})
	})
	return validate
}

// validateNode checks the rules that span more than one field of a node.
func validateNode(sl validator.StructLevel) {
	var n Node
	switch v := sl.Current().Interface().(type) {
	case Node:
		n = v
	case *Node:
		n = *v
	default:
		return
	}
	if n.needsSystem() && n.System == "" {
		sl.ReportError(n.System, "System", "System", "required_for_kind", n.Kind)
	}
	if !n.needsSystem() && n.System != "" {
		sl.ReportError(n.System, "System", "System", "excluded_for_kind", n.Kind)
	}
	if n.Kind == KindHoist && len(n.Children) > 1 {
		sl.ReportError(n.Children, "Children", "Children", "max_one_child", n.Kind)
	}
	if (n.Kind == KindText || n.Kind == KindButton || n.Kind == KindSlot) && len(n.Children) > 0 {
		sl.ReportError(n.Children, "Children", "Children", "no_children", n.Kind)
	}
	if n.Color != "" {
		if _, err := widgets.ParseColor(n.Color); err != nil {
			sl.ReportError(n.Color, "Color", "Color", "color", n.Color)
		}
	}
}

// Validate checks s for structural errors, an unsupported format version
// and references to undeclared systems.
func Validate(s *Scenario) error {
	if s == nil {
		return errors.New("invalid scenario: nil")
	}
	if err := validatorInstance().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid scenario: %s", describe(verrs))
		}
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if err := checkVersion(s.Version); err != nil {
		return err
	}
	return checkSystems(s)
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func checkVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid scenario: version %q is not a semantic version", version)
	}
	if major := semver.Major(v); major != FormatMajor {
		return fmt.Errorf("unsupported scenario version %s: this build reads %s.x", version, FormatMajor)
	}
	return nil
}

func checkSystems(s *Scenario) error {
	var err error
	walk(s.Root, func(n *Node) {
		if err == nil && n.needsSystem() && !slices.Contains(s.Systems, n.System) {
			err = fmt.Errorf("invalid scenario: %s node refers to undeclared system %q", n.Kind, n.System)
		}
	})
	return err
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		walk(child, fn)
	}
}
