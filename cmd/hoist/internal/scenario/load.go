package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates the scenario at path. Files ending in
// .hcl are parsed as HCL, everything else as YAML.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s *Scenario
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		s, err = ParseHCL(data, path)
	} else {
		s, err = ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseYAML decodes a YAML scenario. Unknown fields are rejected. The
// result is not validated.
func ParseYAML(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse scenario: empty document")
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// hclFile is the top-level shape of an HCL scenario.
type hclFile struct {
	Version string     `hcl:"version"`
	Systems []string   `hcl:"systems"`
	Nodes   []*hclNode `hcl:"node,block"`
}

type hclNode struct {
	Kind       string            `hcl:"kind,label"`
	Name       string            `hcl:"name,optional"`
	Text       string            `hcl:"text,optional"`
	Color      string            `hcl:"color,optional"`
	System     string            `hcl:"system,optional"`
	Priority   int               `hcl:"priority,optional"`
	Attributes map[string]string `hcl:"attributes,optional"`
	Key        string            `hcl:"key,optional"`
	Hidden     bool              `hcl:"hidden,optional"`
	Children   []*hclNode        `hcl:"node,block"`
}

// ParseHCL decodes an HCL scenario. filename is only used in diagnostics.
// The file must contain exactly one top-level node block, the root. The
// result is not validated.
func ParseHCL(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse scenario %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode scenario %s: %w", filename, diags)
	}
	if len(parsed.Nodes) != 1 {
		return nil, fmt.Errorf("decode scenario %s: want exactly one root node block, found %d", filename, len(parsed.Nodes))
	}

	return &Scenario{
		Version: parsed.Version,
		Systems: parsed.Systems,
		Root:    parsed.Nodes[0].node(),
	}, nil
}

func (h *hclNode) node() *Node {
	n := &Node{
		Kind:       h.Kind,
		Name:       h.Name,
		Text:       h.Text,
		Color:      h.Color,
		System:     h.System,
		Priority:   h.Priority,
		Attributes: h.Attributes,
		Key:        h.Key,
		Hidden:     h.Hidden,
	}
	for _, child := range h.Children {
		n.Children = append(n.Children, child.node())
	}
	return n
}
