package builtin

import (
	"context"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/domain"
	"github.com/aretw0/gsh/pkg/graph"
)

// AddNodes reads a node-ID dataset (one ID per line, terminated by a
// blank line) from the session stream and adds it to the store.
type AddNodes struct {
	command.Base
	Store *graph.Store
}

func (a *AddNodes) Name() string     { return "add-nodes" }
func (a *AddNodes) Synopsis() string { return "add-nodes" }
func (a *AddNodes) Help() string {
	return `Read a set of node IDs from the following input lines, one ID per
line, terminated by a blank line, and add them to the graph.

Node IDs are decimal integers in the range 1..4294967295. On any
malformed line the whole set is rejected, but input is still consumed
up to the terminating blank line.`
}
func (a *AddNodes) ReturnType() command.ReturnType { return command.ReturnNone }

func (a *AddNodes) Execute(ctx context.Context, env *command.Env, args []string) error {
	if len(args) != 0 {
		command.SyntaxError(a, env.Out)
		return nil
	}
	ds, ok := a.ReadDataset(env.In, 1)
	if !ok {
		return nil
	}
	added := a.Store.AddNodes(ds)
	a.Successf("%d nodes added.", added)
	return nil
}

// ListNodes exposes the node set as a dataset for the host to print.
type ListNodes struct {
	command.Base
	Store *graph.Store

	data domain.Dataset
}

func (l *ListNodes) Name() string     { return "list-nodes" }
func (l *ListNodes) Synopsis() string { return "list-nodes" }
func (l *ListNodes) Help() string {
	return "List all node IDs in the graph in ascending order."
}
func (l *ListNodes) ReturnType() command.ReturnType { return command.ReturnNodeList }

func (l *ListNodes) Execute(ctx context.Context, env *command.Env, args []string) error {
	if len(args) != 0 {
		command.SyntaxError(l, env.Out)
		return nil
	}
	l.data = l.Store.Nodes()
	l.Successf("%d nodes.", len(l.data))
	return nil
}

// Data returns the node records of the last execution.
func (l *ListNodes) Data() domain.Dataset { return l.data }
