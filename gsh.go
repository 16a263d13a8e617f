package gsh

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/gsh/internal/logging"
	"github.com/aretw0/gsh/internal/observability"
	"github.com/aretw0/gsh/pkg/builtin"
	"github.com/aretw0/gsh/pkg/graph"
	"github.com/aretw0/gsh/pkg/registry"
)

// Version is the current release of gsh.
const Version = "0.1.0"

// DefaultPrompt is shown before each command line in interactive mode.
const DefaultPrompt = "> "

// Shell drives an interactive line-based command session over a
// registry of commands. It is single-threaded: every command runs to
// completion on the calling goroutine before the next line is read.
type Shell struct {
	// Registry owns the commands of this session. Additional commands
	// may be registered before Run.
	Registry *registry.Registry
	// Store is the in-memory graph the built-in commands operate on.
	Store *graph.Store

	input       io.Reader
	output      io.Writer
	prompt      string
	interactive bool
	renderer    builtin.Renderer
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput sets the command input stream (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.input = r }
}

// WithOutput sets the output stream (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.output = w }
}

// WithPrompt sets the interactive prompt.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithInteractive enables the prompt. The cmd layer sets this from TTY
// detection; embedded and scripted sessions leave it off.
func WithInteractive(v bool) Option {
	return func(s *Shell) { s.interactive = v }
}

// WithRenderer sets the transformation applied to help text before it
// is written, e.g. markdown to ANSI.
func WithRenderer(r builtin.Renderer) Option {
	return func(s *Shell) { s.renderer = r }
}

// WithLogger sets the structured logger (default: no-op).
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithMetrics attaches prometheus collectors for command outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Shell) { s.metrics = m }
}

// New creates a shell with the built-in command set registered.
func New(opts ...Option) *Shell {
	s := &Shell{
		Registry: registry.New(),
		Store:    graph.New(),
		input:    os.Stdin,
		output:   os.Stdout,
		prompt:   DefaultPrompt,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	builtin.Register(s.Registry, s.Store, s.renderer)
	return s
}
