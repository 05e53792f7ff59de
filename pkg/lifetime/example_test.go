package lifetime_test

import (
	"fmt"

	"github.com/go-drift/weakref/pkg/lifetime"
)

type widget struct {
	name string
}

// This example shows the full life of a weak handle: bound while the
// target is alive, observing absence after the owner invalidates the cell.
func ExampleHandle_Resolve() {
	w := &widget{name: "toolbar"}
	cell := lifetime.NewCell(w)

	h := lifetime.Bind(cell)
	if got, ok := h.Resolve(); ok {
		fmt.Println("alive:", got.name)
	}

	// The owner tears the widget down.
	cell.Invalidate()

	if _, ok := h.Resolve(); !ok {
		fmt.Println("gone")
	}

	// Output:
	// alive: toolbar
	// gone
}
