package widgets_test

import (
	"testing"

	"github.com/go-drift/hoist/pkg/core"
	hoisttest "github.com/go-drift/hoist/pkg/testing"
	"github.com/go-drift/hoist/pkg/widgets"
)

func TestText_Renders(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.Text{Content: "hello"})

	result := tester.Find(hoisttest.ByType[widgets.Text]())
	if !result.Exists() {
		t.Fatal("expected Text element to exist")
	}
	if got := tester.Outline(); got != "\"hello\"\n" {
		t.Errorf("unexpected outline %q", got)
	}
}

func TestText_WithColor(t *testing.T) {
	text := widgets.Text{Content: "x"}.WithColor(widgets.ResolveColor("red"))
	if text.Color.Hex() != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", text.Color.Hex())
	}
}

func TestButton_Tap(t *testing.T) {
	taps := 0
	button := widgets.ButtonOf("Go", func() { taps++ })

	if !button.Tap() {
		t.Error("expected enabled button to run its handler")
	}
	if button.WithDisabled(true).Tap() {
		t.Error("expected disabled button to skip its handler")
	}
	if (widgets.Button{Label: "noop"}).Tap() {
		t.Error("expected button without handler to report false")
	}
	if taps != 1 {
		t.Errorf("expected 1 tap, got %d", taps)
	}
}

func TestGroup_Tag(t *testing.T) {
	if got := (widgets.Group{}).Tag(); got != "group" {
		t.Errorf("expected default tag 'group', got %q", got)
	}
	if got := (widgets.Group{Name: "nav"}).Tag(); got != "nav" {
		t.Errorf("expected tag 'nav', got %q", got)
	}
}

func TestGroup_SortedAttributes(t *testing.T) {
	g := widgets.Group{Attributes: map[string]string{"role": "x", "class": "y", "id": "z"}}
	got := g.SortedAttributes()
	want := []string{"class", "id", "role"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

type labeled struct {
	core.StatefulBase
	label string
}

func (p labeled) CreateState() core.State { return &labelState{} }

type labelState struct {
	core.StateBase
}

func (s *labelState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Text{Content: s.Element().Widget().(labeled).label}
}

func TestGroup_KeyedChildrenKeepState(t *testing.T) {
	tester := hoisttest.NewWidgetTesterWithT(t)
	build := func(order ...string) core.Widget {
		children := make([]core.Widget, len(order))
		for i, id := range order {
			children[i] = widgets.Keyed{ID: id, Child: labeled{label: id}}
		}
		return widgets.Group{Children: children}
	}

	if err := tester.PumpWidget(build("a", "b", "c")); err != nil {
		t.Fatal(err)
	}
	before := map[string]core.State{}
	for _, e := range tester.Find(hoisttest.ByType[labeled]()).All() {
		before[e.Widget().(labeled).label] = e.(*core.StatefulElement).State()
	}

	if err := tester.UpdateWidget(build("c", "a", "b")); err != nil {
		t.Fatal(err)
	}

	texts := tester.Texts()
	if len(texts) != 3 || texts[0] != "c" || texts[1] != "a" || texts[2] != "b" {
		t.Fatalf("expected reordered texts [c a b], got %v", texts)
	}
	for _, e := range tester.Find(hoisttest.ByType[labeled]()).All() {
		label := e.Widget().(labeled).label
		if e.(*core.StatefulElement).State() != before[label] {
			t.Errorf("expected state for %q to move with its key", label)
		}
	}
}

func TestKeyed_Key(t *testing.T) {
	k := widgets.Keyed{ID: 7, Child: widgets.Text{}}
	if k.Key() != 7 {
		t.Errorf("expected key 7, got %v", k.Key())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "steelblue", want: "#4682b4"},
		{in: " SteelBlue ", want: "#4682b4"},
		{in: "#4682B4", want: "#4682b4"},
		{in: "#4682b480", want: "#4682b480"},
		{in: "#123", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "notacolor", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := widgets.ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Hex() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.Hex())
			}
		})
	}
}

func TestResolveColor_Empty(t *testing.T) {
	if !widgets.ResolveColor("").IsZero() {
		t.Error("expected empty name to resolve to the zero color")
	}
	if !widgets.ResolveColor("nope").IsZero() {
		t.Error("expected unknown name to resolve to the zero color")
	}
}
