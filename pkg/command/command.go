// Package command defines the contract every shell command implements
// and the status reporting that goes with it. Concrete commands embed
// Base for the status recorder and are dispatched through the
// registry by name.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/gsh/pkg/domain"
	"github.com/aretw0/gsh/pkg/scan"
)

// ReturnType classifies what shape of result a command yields. The
// host uses it to decide whether output is printed by the command
// itself (ReturnOther, meant for direct human consumption) or
// consumed by another layer.
type ReturnType int

const (
	ReturnNone ReturnType = iota
	ReturnArcList
	ReturnNodeList
	ReturnOther
)

func (t ReturnType) String() string {
	switch t {
	case ReturnArcList:
		return "arc-list"
	case ReturnNodeList:
		return "node-list"
	case ReturnOther:
		return "other"
	default:
		return "none"
	}
}

// Env is the execution environment handed to a command. In is the
// session scanner shared with the shell loop; commands that take
// tabular input must read their dataset blocks from it so the stream
// stays framed for the next command.
type Env struct {
	In  *scan.Scanner
	Out io.Writer
	Log *slog.Logger
}

// Command is the contract of a shell command.
type Command interface {
	// Name is the exact string the command is looked up by.
	Name() string
	// Synopsis is a one-line usage description.
	Synopsis() string
	// Help is the long help text, in markdown.
	Help() string
	// ReturnType tags the shape of the command's result.
	ReturnType() ReturnType
	// Execute runs the command. The error return is for fatal I/O
	// only; ordinary outcomes travel in the status message.
	Execute(ctx context.Context, env *Env, args []string) error

	// Status returns the latest reported status message.
	Status() domain.Status
	// SetStatus overwrites the latest status message.
	SetStatus(domain.Status)
}

// DataProducer is implemented by commands whose result is a dataset
// (ReturnNodeList and ReturnArcList). The host prints the records
// after the status line, one per line, followed by a blank terminator.
type DataProducer interface {
	Data() domain.Dataset
}

// Base holds the latest status message of a command. Embed it in every
// concrete command. There is no history: each report overwrites the
// previous one, so hosts that need the message must read it before
// running the next command.
type Base struct {
	last domain.Status
}

func (b *Base) Status() domain.Status     { return b.last }
func (b *Base) SetStatus(s domain.Status) { b.last = s }

// Successf records a SUCCESS status.
func (b *Base) Successf(format string, args ...any) {
	b.last = domain.Successf(format, args...)
}

// Failuref records a FAILURE status.
func (b *Base) Failuref(format string, args ...any) {
	b.last = domain.Failuref(format, args...)
}

// Errorf records an ERROR status.
func (b *Base) Errorf(format string, args ...any) {
	b.last = domain.Errorf(format, args...)
}

// Nonef records a NONE status.
func (b *Base) Nonef(format string, args ...any) {
	b.last = domain.Nonef(format, args...)
}

// SyntaxError records a FAILURE status carrying the command's
// synopsis. If the command's output is meant for direct human
// consumption (ReturnOther) the message is also written to out
// immediately; for other return types the host prints the status, so
// emitting here would duplicate it.
func SyntaxError(c Command, out io.Writer) {
	st := domain.Failuref("Syntax: %s", c.Synopsis())
	c.SetStatus(st)
	if c.ReturnType() == ReturnOther && out != nil {
		fmt.Fprintln(out, st)
	}
}
