package gsh_test

import (
	"context"

	"github.com/aretw0/gsh/pkg/command"
)

// pingCommand is a trivial host-defined command used to test
// registration of commands outside the built-in set.
type pingCommand struct {
	command.Base
}

func (p *pingCommand) Name() string                   { return "ping" }
func (p *pingCommand) Synopsis() string               { return "ping" }
func (p *pingCommand) Help() string                   { return "Reply with pong." }
func (p *pingCommand) ReturnType() command.ReturnType { return command.ReturnNone }

func (p *pingCommand) Execute(ctx context.Context, env *command.Env, args []string) error {
	p.Successf("pong")
	return nil
}
