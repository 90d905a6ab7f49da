// Package outline renders a mounted element tree as indented text.
//
// Only widgets from package widgets produce output. Every other element is
// transparent: its children are rendered in its place at the same depth.
// A subtree that builds nothing renders nothing.
//
//	<toolbar class="actions">
//	  [Save] #4682b4
//	  "3 unsaved"
package outline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-drift/hoist/pkg/core"
	"github.com/go-drift/hoist/pkg/widgets"
)

const indentUnit = "  "

// Render returns the outline of the tree rooted at root, one node per line.
// The result ends with a newline unless it is empty.
func Render(root core.Element) string {
	var sb strings.Builder
	_ = Write(&sb, root)
	return sb.String()
}

// Write writes the outline of root to w.
func Write(w io.Writer, root core.Element) error {
	for _, line := range Lines(root) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the outline of root without trailing newlines.
func Lines(root core.Element) []string {
	if root == nil {
		return nil
	}
	var lines []string
	walk(root, 0, func(depth int, line string) {
		lines = append(lines, strings.Repeat(indentUnit, depth)+line)
	})
	return lines
}

// Texts returns the visible text of every Text and Button in tree order.
func Texts(root core.Element) []string {
	if root == nil {
		return nil
	}
	var texts []string
	visit(root, func(e core.Element) {
		switch w := e.Widget().(type) {
		case widgets.Text:
			texts = append(texts, w.Content)
		case widgets.Button:
			texts = append(texts, w.Label)
		}
	})
	return texts
}

func walk(e core.Element, depth int, emit func(depth int, line string)) {
	childDepth := depth
	switch w := e.Widget().(type) {
	case widgets.Group:
		emit(depth, groupLine(w))
		childDepth = depth + 1
	case widgets.Text:
		emit(depth, withColor(strconv.Quote(w.Content), w.Color))
	case widgets.Button:
		line := "[" + w.Label + "]"
		if w.Disabled {
			line += " disabled"
		}
		emit(depth, withColor(line, w.Color))
	}
	e.VisitChildren(func(child core.Element) bool {
		walk(child, childDepth, emit)
		return true
	})
}

func visit(e core.Element, fn func(core.Element)) {
	fn(e)
	e.VisitChildren(func(child core.Element) bool {
		visit(child, fn)
		return true
	})
}

func groupLine(g widgets.Group) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(g.Tag())
	for _, name := range g.SortedAttributes() {
		fmt.Fprintf(&sb, " %s=%q", name, g.Attributes[name])
	}
	sb.WriteString(">")
	return sb.String()
}

func withColor(line string, c widgets.Color) string {
	if c.IsZero() {
		return line
	}
	return line + " " + c.Hex()
}
