package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/registry"
)

// Help prints the command catalog, or the help text of one command.
type Help struct {
	command.Base
	Registry *registry.Registry
	Renderer Renderer
}

func (h *Help) Name() string     { return "help" }
func (h *Help) Synopsis() string { return "help [command]" }
func (h *Help) Help() string {
	return "List the available commands, or show the detailed help text of one command."
}
func (h *Help) ReturnType() command.ReturnType { return command.ReturnOther }

func (h *Help) Execute(ctx context.Context, env *command.Env, args []string) error {
	switch len(args) {
	case 0:
		for _, c := range h.Registry.Commands() {
			fmt.Fprintf(env.Out, "%-12s %s\n", c.Name(), c.Synopsis())
		}
		h.Successf("")
	case 1:
		c, found := h.Registry.Find(args[0])
		if !found {
			h.Failuref("unknown command %q", args[0])
			fmt.Fprintln(env.Out, h.Status())
			return nil
		}
		text := c.Help()
		if h.Renderer != nil {
			if rendered, err := h.Renderer(text); err == nil {
				text = rendered
			}
		}
		fmt.Fprintln(env.Out, strings.TrimSpace(text))
		h.Successf("")
	default:
		command.SyntaxError(h, env.Out)
	}
	return nil
}
