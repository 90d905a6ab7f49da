package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/hoist/pkg/testing/internal/testbed"
	"github.com/go-drift/hoist/pkg/widgets"
)

// recordingT captures failures from MatchesFile.
type recordingT struct {
	failures []string
	fatal    bool
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatal = true
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recordingT) Name() string { return "TestRecording" }

func TestCaptureSnapshot_Lines(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 2})

	snap := tester.CaptureSnapshot()
	want := "<counter>\n  \"2\"\n  [+]\n"
	if snap.String() != want {
		t.Errorf("expected %q, got %q", want, snap.String())
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "same"})

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Changed(t *testing.T) {
	a := &Snapshot{Lines: []string{`"one"`}}
	b := &Snapshot{Lines: []string{`"two"`}}

	if a.Diff(b) == "" {
		t.Error("expected a diff for different snapshots")
	}
}

func TestSnapshot_FileRoundTrip(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 9})
	path := filepath.Join(t.TempDir(), "nested", "counter.outline")

	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	rec := &recordingT{}
	snap.MatchesFile(rec, path)
	if len(rec.failures) != 0 {
		t.Errorf("expected match, got %v", rec.failures)
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.outline")
	if err := os.WriteFile(path, []byte("\"old\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOIST_UPDATE_SNAPSHOTS", "")

	rec := &recordingT{}
	(&Snapshot{Lines: []string{`"new"`}}).MatchesFile(rec, path)

	if len(rec.failures) != 1 || rec.fatal {
		t.Fatalf("expected a single non-fatal failure, got %v", rec.failures)
	}
	if !strings.Contains(rec.failures[0], "HOIST_UPDATE_SNAPSHOTS=1") {
		t.Errorf("expected update instructions, got %q", rec.failures[0])
	}
}

func TestSnapshot_MatchesFile_Missing(t *testing.T) {
	t.Setenv("HOIST_UPDATE_SNAPSHOTS", "")
	rec := &recordingT{}
	(&Snapshot{}).MatchesFile(rec, filepath.Join(t.TempDir(), "absent.outline"))

	if !rec.fatal {
		t.Error("expected a fatal failure for a missing snapshot file")
	}
}
