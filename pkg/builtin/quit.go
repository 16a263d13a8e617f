package builtin

import (
	"context"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/registry"
)

// Quit requests termination of the shell session.
type Quit struct {
	command.Base
	Registry *registry.Registry
}

func (q *Quit) Name() string     { return "quit" }
func (q *Quit) Synopsis() string { return "quit" }
func (q *Quit) Help() string {
	return "End the session. The shell finishes the current command and exits."
}
func (q *Quit) ReturnType() command.ReturnType { return command.ReturnNone }

func (q *Quit) Execute(ctx context.Context, env *command.Env, args []string) error {
	if len(args) != 0 {
		command.SyntaxError(q, env.Out)
		return nil
	}
	q.Registry.RequestQuit()
	q.Successf("")
	return nil
}
