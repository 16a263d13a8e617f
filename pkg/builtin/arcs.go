package builtin

import (
	"context"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/domain"
	"github.com/aretw0/gsh/pkg/graph"
)

// AddArcs reads an arc dataset (two node IDs per line, terminated by a
// blank line) from the session stream and adds it to the store.
type AddArcs struct {
	command.Base
	Store *graph.Store
}

func (a *AddArcs) Name() string     { return "add-arcs" }
func (a *AddArcs) Synopsis() string { return "add-arcs" }
func (a *AddArcs) Help() string {
	return `Read a set of arcs from the following input lines, one arc as
"tail head" per line, terminated by a blank line, and add them to the
graph. Endpoints are added as nodes implicitly.

On any malformed line the whole set is rejected, but input is still
consumed up to the terminating blank line.`
}
func (a *AddArcs) ReturnType() command.ReturnType { return command.ReturnNone }

func (a *AddArcs) Execute(ctx context.Context, env *command.Env, args []string) error {
	if len(args) != 0 {
		command.SyntaxError(a, env.Out)
		return nil
	}
	ds, ok := a.ReadDataset(env.In, 2)
	if !ok {
		return nil
	}
	added := a.Store.AddArcs(ds)
	a.Successf("%d arcs added.", added)
	return nil
}

// ListArcs exposes the arc set as a dataset for the host to print.
type ListArcs struct {
	command.Base
	Store *graph.Store

	data domain.Dataset
}

func (l *ListArcs) Name() string     { return "list-arcs" }
func (l *ListArcs) Synopsis() string { return "list-arcs" }
func (l *ListArcs) Help() string {
	return "List all arcs in the graph as tail/head pairs, ordered by tail, then head."
}
func (l *ListArcs) ReturnType() command.ReturnType { return command.ReturnArcList }

func (l *ListArcs) Execute(ctx context.Context, env *command.Env, args []string) error {
	if len(args) != 0 {
		command.SyntaxError(l, env.Out)
		return nil
	}
	l.data = l.Store.Arcs()
	l.Successf("%d arcs.", len(l.data))
	return nil
}

// Data returns the arc records of the last execution.
func (l *ListArcs) Data() domain.Dataset { return l.data }
