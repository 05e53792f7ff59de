// Command weakdemo is a small desktop sample contrasting unchecked pointer
// access with weak-reference access to an object that deletes itself after
// a random delay.
//
// Two buttons attempt to read the object's label: the "unchecked" button
// goes through a raw pointer and cannot tell that the object is gone, so
// it reports stale data after deletion; the "weak" button resolves a
// lifetime handle and reports "Object has been deleted" instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/go-drift/weakref/cmd/weakdemo/internal/config"
	"github.com/go-drift/weakref/pkg/diag"
	"github.com/go-drift/weakref/pkg/lifetime"
	"github.com/go-drift/weakref/pkg/scheduler"
	"github.com/go-drift/weakref/pkg/selfdestruct"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	status *widget.Label

	sched    scheduler.Timer
	maxDelay time.Duration

	// unchecked is the raw-pointer baseline: non-nil says nothing about
	// liveness. weak observes the same object through its liveness cell.
	unchecked *selfdestruct.Object
	weak      lifetime.Handle[selfdestruct.Object]
}

// spawn creates a fresh self-destructing object and captures both kinds of
// reference to it, the way surrounding application code would.
func (s *uiState) spawn() {
	obj := selfdestruct.NewWithMaxDelay("Self Destructing Object", s.sched, s.maxDelay)
	s.unchecked = obj
	s.weak = obj.Weak()
	s.status.SetText(fmt.Sprintf("Created; it deletes itself within %v", s.maxDelay))
}

// checkWeak reads the label through the weak handle.
func (s *uiState) checkWeak() {
	if label, ok := selfdestruct.Access(s.weak); ok {
		s.status.SetText("Name: " + label)
	} else {
		s.status.SetText("Object has been deleted")
	}
}

// checkUnchecked mirrors the raw-pointer check from the original hazard:
// the nil test always passes, so after deletion this reads stale data
// without noticing.
func (s *uiState) checkUnchecked() {
	if s.unchecked != nil {
		s.status.SetText("Name: " + s.unchecked.Label() + " (unchecked, possibly stale)")
	} else {
		s.status.SetText("Object has been deleted")
	}
}

func main() {
	var configDir string
	flag.StringVar(&configDir, "config", ".", "Directory containing weakdemo.yaml")
	flag.Parse()

	cfg, err := config.LoadOptional(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weakdemo: %v\n", err)
		os.Exit(1)
	}
	diag.SetHandler(&diag.LogHandler{Verbose: cfg.Verbose})

	a := app.NewWithID("com.godrift.weakdemo")
	w := a.NewWindow("Weak Reference Demo")
	w.Resize(fyne.NewSize(420, 240))

	state := &uiState{
		app:    a,
		window: w,
		status: widget.NewLabel(""),
		// Destruction runs on the UI thread so button checks and the
		// delete action share one logical timeline.
		sched:    scheduler.Timer{Dispatch: fyne.Do},
		maxDelay: cfg.MaxDelay(),
	}
	state.spawn()

	content := container.NewVBox(
		widget.NewLabel("The object deletes itself after a random delay."),
		widget.NewButton("check (weak reference)", state.checkWeak),
		widget.NewButton("check (unchecked pointer)", state.checkUnchecked),
		widget.NewButton("new object", state.spawn),
		state.status,
	)
	w.SetContent(content)
	w.ShowAndRun()
}
