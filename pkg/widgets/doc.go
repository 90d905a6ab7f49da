// Package widgets provides the leaf and container widgets that hoisted
// content is made of.
//
// The widgets here do no layout or painting. They describe content that
// package outline turns into text and that tests inspect through finders.
//
// # Widget Construction
//
// Widgets are plain struct literals:
//
//	widgets.Group{
//	    Name:       "toolbar",
//	    Attributes: map[string]string{"class": "actions"},
//	    Children: []core.Widget{
//	        widgets.Button{Label: "Save", Color: widgets.ResolveColor("steelblue")},
//	        widgets.Text{Content: "3 unsaved"},
//	    },
//	}
//
// # Keys
//
// [Group] reconciles its children by key. Wrap a child in [Keyed] to give it
// a stable identity so it keeps its element when siblings are reordered:
//
//	widgets.Keyed{ID: "save", Child: widgets.Button{Label: "Save"}}
package widgets
