package widgets

import "github.com/go-drift/hoist/pkg/core"

// Text displays a string.
//
//	Text{Content: "Saved"}
//	Text{Content: "Error", Color: ResolveColor("crimson")}
type Text struct {
	// Content is the text string to display.
	Content string
	// Color is the text color. Zero means the host default.
	Color Color
}

func (t Text) CreateElement() core.Element {
	return core.NewLeafElement()
}

func (t Text) Key() any {
	return nil
}

// WithColor returns a copy of the text with the given color.
func (t Text) WithColor(color Color) Text {
	t.Color = color
	return t
}
