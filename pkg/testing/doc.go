// Package testing provides a widget testing harness for hoist trees.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestToolbar(t *testing.T) {
//	    tester := hoisttest.NewWidgetTesterWithT(t)
//	    if err := tester.PumpWidget(MyScreen{}); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    // Find elements
//	    save := tester.Find(hoisttest.ByText("Save")).First()
//
//	    // Simulate taps on buttons
//	    tester.Tap(hoisttest.ByText("Save"))
//	    tester.Pump()
//
//	    // Assert on visible output
//	    fmt.Println(tester.Texts())
//	}
//
// PumpWidget and Pump return integration errors such as
// [errors.MissingScopeError] instead of panicking.
//
// # Snapshot Testing
//
// Capture and compare outline snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/toolbar.outline")
//
// Update snapshots with:
//
//	HOIST_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import hoisttest "github.com/go-drift/hoist/pkg/testing"
package testing
