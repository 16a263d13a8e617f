/*
Package gsh is a small framework for building interactive line-based
command shells whose commands operate on graph-like datasets: sets of
node IDs and tail/head arc pairs.

It provides three things:

  - A uniform command contract: every command has a name, a one-line
    synopsis, help text, a return-type tag, and reports its outcome
    through the four-kind status message protocol (OK. / FAILED! /
    ERROR! / NONE.).
  - A registry that owns the commands of a session, looks them up by
    exact name, and tracks the quit request of the host loop.
  - A strict line-oriented parser for tables of fixed-arity unsigned
    integer records, with per-line validation, report-once error
    policy, and drain-to-block-end framing so the input stream stays
    aligned between commands.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/gsh"
	)

	func main() {
		sh := gsh.New(gsh.WithInteractive(true))
		if err := sh.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}

The shell reads commands from its input stream one line at a time.
Commands that take tabular input (add-nodes, add-arcs) read a block of
records from the same stream, terminated by a blank line. Custom
commands implement the command.Command interface (embed command.Base
for the status recorder) and are added through the shell's Registry.
*/
package gsh
