// Package scenario loads hoist demo scenarios and turns them into widget
// trees.
//
// A scenario declares the hoisting systems it uses and a tree of nodes:
//
//	version: 1.0.0
//	systems: [header]
//	root:
//	  kind: provider
//	  system: header
//	  children:
//	    - kind: slot
//	      system: header
//	    - kind: hoist
//	      system: header
//	      priority: 1
//	      children:
//	        - kind: button
//	          text: Settings
//
// The same document can be written in HCL, with one labelled node block per
// node:
//
//	version = "1.0.0"
//	systems = ["header"]
//
//	node "provider" {
//	  system = "header"
//	  node "slot" { system = "header" }
//	  node "hoist" {
//	    system   = "header"
//	    priority = 1
//	    node "button" { text = "Settings" }
//	  }
//	}
package scenario

// Node kinds.
const (
	KindGroup    = "group"
	KindText     = "text"
	KindButton   = "button"
	KindProvider = "provider"
	KindSlot     = "slot"
	KindHoist    = "hoist"
)

// Scenario is a parsed scenario document.
type Scenario struct {
	// Version is the scenario format version, a semantic version whose
	// major component must match FormatMajor.
	Version string `yaml:"version" validate:"required"`
	// Systems names every hoisting system the tree refers to.
	Systems []string `yaml:"systems" validate:"required,min=1,unique,dive,required"`
	Root    *Node    `yaml:"root" validate:"required"`
}

// Node is one widget in a scenario tree.
type Node struct {
	Kind string `yaml:"kind" validate:"required,oneof=group text button provider slot hoist"`
	// Name is the tag of a group.
	Name string `yaml:"name"`
	// Text is the content of a text node or the label of a button.
	Text string `yaml:"text"`
	// Color is a color name or #hex value for text and buttons.
	Color string `yaml:"color"`
	// System names the hoisting system of provider, slot and hoist nodes.
	System string `yaml:"system"`
	// Priority orders a hoist node within its slot.
	Priority   int               `yaml:"priority"`
	Attributes map[string]string `yaml:"attributes"`
	// Key keeps a node's widget state across reloads when siblings move.
	Key string `yaml:"key"`
	// Hidden leaves the node and its subtree out of the built tree.
	Hidden   bool    `yaml:"hidden"`
	Children []*Node `yaml:"children" validate:"dive,required"`
}

// needsSystem reports whether the node kind belongs to a hoisting system.
func (n *Node) needsSystem() bool {
	switch n.Kind {
	case KindProvider, KindSlot, KindHoist:
		return true
	}
	return false
}
