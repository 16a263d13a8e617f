package gsh

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/domain"
	"github.com/aretw0/gsh/pkg/scan"
)

// Run executes the shell loop until quit is requested, the input
// stream ends, or ctx is cancelled. Command lines and dataset blocks
// are read through one scanner, which keeps the stream framed when a
// command's tabular input ends and the next command begins.
func (s *Shell) Run(ctx context.Context) error {
	in := scan.NewScanner(s.input)
	env := &command.Env{In: in, Out: s.output, Log: s.logger}

	for !s.Registry.Quitting() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			fmt.Fprint(s.output, s.prompt)
		}

		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		}
		if errors.Is(err, domain.ErrLineTooLong) {
			fmt.Fprintln(s.output, domain.Failuref("%v", err))
			continue
		}
		if err != nil {
			return fmt.Errorf("reading command line: %w", err)
		}

		words := scan.Split(line, scan.DefaultDelimiters)
		if len(words) == 0 {
			continue
		}
		name, args := words[0], words[1:]

		cmd, found := s.Registry.Find(name)
		if !found {
			fmt.Fprintln(s.output, domain.Failuref("unknown command %q", name))
			s.logger.Debug("unknown command", "name", name)
			if s.metrics != nil {
				s.metrics.ObserveUnknown()
			}
			continue
		}

		if err := cmd.Execute(ctx, env, args); err != nil {
			return fmt.Errorf("command %s: %w", name, err)
		}

		st := cmd.Status()
		s.logger.Debug("command finished", "name", name, "status", st.Kind.String())
		if s.metrics != nil {
			s.metrics.ObserveCommand(name, st.Kind)
		}

		if cmd.ReturnType() == command.ReturnOther {
			// The command wrote its own output.
			continue
		}
		fmt.Fprintln(s.output, st)

		if dp, ok := cmd.(command.DataProducer); ok && st.Kind == domain.StatusSuccess {
			for _, rec := range dp.Data() {
				fmt.Fprintln(s.output, rec.String())
			}
			fmt.Fprintln(s.output)
		}
	}
	return nil
}
