// Package builtin provides the standard command set of the shell:
// help, quit, and the dataset ingestion and listing commands for the
// in-memory graph store.
package builtin

import (
	"github.com/aretw0/gsh/pkg/graph"
	"github.com/aretw0/gsh/pkg/registry"
)

// Renderer transforms help text before it is written, e.g. markdown to
// ANSI. A nil renderer passes the text through unchanged.
type Renderer func(string) (string, error)

// Register wires the full built-in command set into reg, operating on
// store.
func Register(reg *registry.Registry, store *graph.Store, renderer Renderer) {
	reg.Register(
		&Help{Registry: reg, Renderer: renderer},
		&Quit{Registry: reg},
		&AddNodes{Store: store},
		&AddArcs{Store: store},
		&ListNodes{Store: store},
		&ListArcs{Store: store},
	)
}
