package command_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/gsh/pkg/command"
	"github.com/aretw0/gsh/pkg/domain"
)

// fakeCommand is a minimal command with a configurable return type.
type fakeCommand struct {
	command.Base
	returnType command.ReturnType
}

func (f *fakeCommand) Name() string                   { return "fake" }
func (f *fakeCommand) Synopsis() string               { return "fake <arg>" }
func (f *fakeCommand) Help() string                   { return "A fake command." }
func (f *fakeCommand) ReturnType() command.ReturnType { return f.returnType }
func (f *fakeCommand) Execute(ctx context.Context, env *command.Env, args []string) error {
	return nil
}

func TestBaseKeepsOnlyLatestStatus(t *testing.T) {
	var b command.Base

	b.Successf("first")
	b.Errorf("second")
	b.Failuref("third")

	st := b.Status()
	assert.Equal(t, domain.StatusFailure, st.Kind)
	assert.Equal(t, "FAILED! third", st.String())
}

func TestStatusWireFormat(t *testing.T) {
	var b command.Base

	b.Successf("done.")
	assert.Equal(t, "OK. done.", b.Status().String())

	b.Errorf("broken")
	assert.Equal(t, "ERROR! broken", b.Status().String())

	b.Nonef("nothing to do")
	assert.Equal(t, "NONE. nothing to do", b.Status().String())
}

func TestSyntaxErrorEmitsForOtherReturnType(t *testing.T) {
	cmd := &fakeCommand{returnType: command.ReturnOther}
	var out bytes.Buffer

	command.SyntaxError(cmd, &out)

	// Recorded and emitted immediately.
	assert.Equal(t, domain.StatusFailure, cmd.Status().Kind)
	assert.Equal(t, "FAILED! Syntax: fake <arg>\n", out.String())
}

func TestSyntaxErrorSuppressedForListReturnTypes(t *testing.T) {
	for _, rt := range []command.ReturnType{command.ReturnNone, command.ReturnNodeList, command.ReturnArcList} {
		cmd := &fakeCommand{returnType: rt}
		var out bytes.Buffer

		command.SyntaxError(cmd, &out)

		assert.Equal(t, domain.StatusFailure, cmd.Status().Kind, "return type %v", rt)
		assert.Empty(t, out.String(), "return type %v must not emit immediately", rt)
	}
}
