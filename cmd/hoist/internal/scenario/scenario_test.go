package scenario

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/hoist/pkg/errors"
)

const headerYAML = `
version: 1.2.0
systems: [header]
root:
  kind: provider
  system: header
  children:
    - kind: group
      name: header
      children:
        - kind: slot
          system: header
          attributes:
            class: actions
    - kind: group
      name: main
      children:
        - kind: hoist
          system: header
          priority: 2
          children:
            - kind: button
              text: Profile
        - kind: hoist
          system: header
          priority: 1
          children:
            - kind: button
              text: Settings
              color: tomato
`

const headerHCL = `
version = "1.2.0"
systems = ["header"]

node "provider" {
  system = "header"

  node "group" {
    name = "header"
    node "slot" {
      system     = "header"
      attributes = { class = "actions" }
    }
  }

  node "group" {
    name = "main"
    node "hoist" {
      system   = "header"
      priority = 2
      node "button" { text = "Profile" }
    }
    node "hoist" {
      system   = "header"
      priority = 1
      node "button" {
        text  = "Settings"
        color = "tomato"
      }
    }
  }
}
`

const headerOutline = `<group>
  <header>
    <slot class="actions">
      [Settings] #ff6347
      [Profile]
  <main>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func render(t *testing.T, s *Scenario) string {
	t.Helper()
	session := NewSession(nil)
	t.Cleanup(session.Close)
	require.NoError(t, session.Apply(s))
	return session.Outline()
}

func TestLoad_YAML(t *testing.T) {
	s, err := Load(writeFile(t, "header.yaml", headerYAML))
	require.NoError(t, err)

	require.Equal(t, "1.2.0", s.Version)
	require.Equal(t, []string{"header"}, s.Systems)
	require.Equal(t, KindProvider, s.Root.Kind)
	require.Len(t, s.Root.Children, 2)
	require.Equal(t, headerOutline, render(t, s))
}

func TestLoad_HCL(t *testing.T) {
	s, err := Load(writeFile(t, "header.hcl", headerHCL))
	require.NoError(t, err)

	require.Equal(t, "header", s.Root.System)
	require.Equal(t, map[string]string{"class": "actions"}, s.Root.Children[0].Children[0].Attributes)
	require.Equal(t, headerOutline, render(t, s))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML([]byte("version: 1.0.0\nsystems: [a]\nroot: {kind: group}\nextra: true\n"))
	require.ErrorContains(t, err, "extra")
}

func TestParseYAML_Empty(t *testing.T) {
	_, err := ParseYAML(nil)
	require.ErrorContains(t, err, "empty document")
}

func TestParseHCL_NeedsOneRoot(t *testing.T) {
	_, err := ParseHCL([]byte(`
version = "1.0.0"
systems = ["a"]
node "group" {}
node "group" {}
`), "two.hcl")
	require.ErrorContains(t, err, "exactly one root node")
}

func TestParseHCL_SyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`version = `), "broken.hcl")
	require.ErrorContains(t, err, "broken.hcl")
}

func TestValidate(t *testing.T) {
	valid := func() *Scenario {
		return &Scenario{
			Version: "1.0.0",
			Systems: []string{"header"},
			Root: &Node{Kind: KindProvider, System: "header", Children: []*Node{
				{Kind: KindSlot, System: "header"},
				{Kind: KindHoist, System: "header", Children: []*Node{{Kind: KindText, Text: "hi"}}},
			}},
		}
	}
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr string
	}{
		{"valid", func(*Scenario) {}, ""},
		{"v prefix", func(s *Scenario) { s.Version = "v1.4.0" }, ""},
		{"missing version", func(s *Scenario) { s.Version = "" }, "Scenario.Version"},
		{"not semver", func(s *Scenario) { s.Version = "one" }, "not a semantic version"},
		{"future major", func(s *Scenario) { s.Version = "2.0.0" }, "unsupported scenario version 2.0.0"},
		{"no systems", func(s *Scenario) { s.Systems = nil }, "Scenario.Systems"},
		{"duplicate systems", func(s *Scenario) { s.Systems = []string{"header", "header"} }, "unique"},
		{"no root", func(s *Scenario) { s.Root = nil }, "Scenario.Root"},
		{"unknown kind", func(s *Scenario) { s.Root.Children[0].Kind = "portal" }, "oneof"},
		{"slot without system", func(s *Scenario) { s.Root.Children[0].System = "" }, "required_for_kind"},
		{"text with system", func(s *Scenario) { s.Root.Children[1].Children[0].System = "header" }, "excluded_for_kind"},
		{"undeclared system", func(s *Scenario) { s.Root.Children[0].System = "footer" }, `undeclared system "footer"`},
		{"bad color", func(s *Scenario) { s.Root.Children[1].Children[0].Color = "octarine" }, "color"},
		{"hoist with two children", func(s *Scenario) {
			h := s.Root.Children[1]
			h.Children = append(h.Children, &Node{Kind: KindText})
		}, "max_one_child"},
		{"text with children", func(s *Scenario) {
			txt := s.Root.Children[1].Children[0]
			txt.Children = []*Node{{Kind: KindText}}
		}, "no_children"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := Validate(s)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestBuild_HiddenNodesAreSkipped(t *testing.T) {
	s := &Scenario{
		Version: "1.0.0",
		Systems: []string{"bar"},
		Root: &Node{Kind: KindProvider, System: "bar", Children: []*Node{
			{Kind: KindSlot, System: "bar"},
			{Kind: KindHoist, System: "bar", Hidden: true, Children: []*Node{{Kind: KindText, Text: "hidden"}}},
			{Kind: KindHoist, System: "bar", Children: []*Node{{Kind: KindText, Text: "shown"}}},
		}},
	}

	require.Equal(t, "<group>\n  <slot>\n    \"shown\"\n", render(t, s))
}

func TestBuild_HiddenRoot(t *testing.T) {
	_, err := NewBuilder(nil).Build(&Scenario{Root: &Node{Kind: KindGroup, Hidden: true}})
	require.ErrorContains(t, err, "hidden")
}

func TestBuilder_ComponentsPersist(t *testing.T) {
	b := NewBuilder(nil)

	first := b.Component("header")

	require.Same(t, first, b.Component("header"))
	require.NotSame(t, first, b.Component("footer"))
	require.Equal(t, "header", first.Name())
}

func TestSession_ReloadUpdatesInPlace(t *testing.T) {
	session := NewSession(nil)
	defer session.Close()
	scenario := func(settings int, showHelp bool) *Scenario {
		return &Scenario{
			Version: "1.0.0",
			Systems: []string{"header"},
			Root: &Node{Kind: KindProvider, System: "header", Children: []*Node{
				{Kind: KindSlot, System: "header"},
				{Kind: KindHoist, System: "header", Priority: settings, Children: []*Node{{Kind: KindButton, Text: "Settings"}}},
				{Kind: KindHoist, System: "header", Priority: 2, Children: []*Node{{Kind: KindButton, Text: "Profile"}}},
				{Kind: KindHoist, System: "header", Priority: 9, Hidden: !showHelp, Children: []*Node{{Kind: KindButton, Text: "Help"}}},
			}},
		}
	}

	require.NoError(t, session.Apply(scenario(1, false)))
	require.Equal(t, "<group>\n  <slot>\n    [Settings]\n    [Profile]\n", session.Outline())
	root := session.root

	require.NoError(t, session.Apply(scenario(3, true)))
	require.Equal(t, "<group>\n  <slot>\n    [Profile]\n    [Settings]\n    [Help]\n", session.Outline())
	require.Same(t, root, session.root)

	require.NoError(t, session.Apply(scenario(3, false)))
	require.Equal(t, "<group>\n  <slot>\n    [Profile]\n    [Settings]\n", session.Outline())
}

func TestSession_RenamedSystemRebinds(t *testing.T) {
	session := NewSession(nil)
	defer session.Close()
	scenario := func(system string) *Scenario {
		return &Scenario{
			Version: "1.0.0",
			Systems: []string{system},
			Root: &Node{Kind: KindProvider, System: system, Children: []*Node{
				{Kind: KindSlot, System: system},
				{Kind: KindHoist, System: system, Priority: 1, Children: []*Node{{Kind: KindText, Text: "first"}}},
				{Kind: KindHoist, System: system, Priority: 1, Children: []*Node{{Kind: KindText, Text: "second"}}},
			}},
		}
	}
	const want = "<group>\n  <slot>\n    \"first\"\n    \"second\"\n"

	require.NoError(t, session.Apply(scenario("header")))
	require.Equal(t, want, session.Outline())
	root := session.root

	require.NoError(t, session.Apply(scenario("toolbar")))
	require.Equal(t, want, session.Outline())
	require.Same(t, root, session.root)
}

func TestSession_MissingProvider(t *testing.T) {
	session := NewSession(nil)
	s := &Scenario{
		Version: "1.0.0",
		Systems: []string{"header"},
		Root: &Node{Kind: KindGroup, Children: []*Node{
			{Kind: KindHoist, System: "header", Children: []*Node{{Kind: KindText, Text: "orphan"}}},
		}},
	}

	err := session.Apply(s)

	var scope *errors.MissingScopeError
	require.True(t, stderrors.As(err, &scope), "got %v", err)
	require.Equal(t, "Hoist", scope.Widget)
	require.Equal(t, "header", scope.Provider)
	require.Empty(t, session.Outline())
}

func TestSession_RecoversAfterError(t *testing.T) {
	session := NewSession(nil)
	defer session.Close()
	bad := &Scenario{Root: &Node{Kind: KindSlot, System: "x"}}
	good := &Scenario{Root: &Node{Kind: KindText, Text: "ok"}}

	require.Error(t, session.Apply(bad))
	require.NoError(t, session.Apply(good))
	require.Equal(t, "\"ok\"\n", session.Outline())
}
