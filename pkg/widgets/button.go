package widgets

import "github.com/go-drift/hoist/pkg/core"

// Button is a labelled action.
//
// Example using struct literal:
//
//	Button{
//	    Label:    "Submit",
//	    OnTap:    handleSubmit,
//	    Color:    ResolveColor("seagreen"),
//	    Disabled: !isValid,
//	}
//
// Example using the helper:
//
//	ButtonOf("Submit", handleSubmit).WithDisabled(!isValid)
//
// A Button with an OnTap handler is not a comparable value, so re-hoisting
// one always notifies the registry's listeners.
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called by Tap when the button is enabled.
	OnTap func()
	// Disabled disables the button when true.
	Disabled bool
	// Color is the background color. Zero means the host default.
	Color Color
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

func (b Button) CreateElement() core.Element {
	return core.NewLeafElement()
}

func (b Button) Key() any {
	return nil
}

// WithColor returns a copy of the button with the given background color.
func (b Button) WithColor(color Color) Button {
	b.Color = color
	return b
}

// WithDisabled returns a copy of the button with the disabled flag set.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// Tap invokes OnTap unless the button is disabled or has no handler.
// It reports whether the handler ran.
func (b Button) Tap() bool {
	if b.Disabled || b.OnTap == nil {
		return false
	}
	b.OnTap()
	return true
}
