package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/aretw0/gsh"
	httpadapter "github.com/aretw0/gsh/internal/adapters/http"
	"github.com/aretw0/gsh/internal/observability"
	"github.com/aretw0/gsh/internal/presentation/tui"
)

// RunOptions carries the flags of the run command.
type RunOptions struct {
	ConfigPath     string
	ConfigExplicit bool
	Debug          bool
	NoBanner       bool
	Plain          bool
	// Listen, when non-empty, starts the introspection/metrics
	// listener on that address alongside the session.
	Listen string
}

// Run starts an interactive shell session on stdin/stdout.
func Run(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	cfg, err := LoadConfig(opts.ConfigPath, opts.ConfigExplicit)
	if err != nil {
		return err
	}
	if opts.NoBanner {
		cfg.Banner = false
	}
	if opts.Plain {
		cfg.Plain = true
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	shellOpts := []gsh.Option{
		gsh.WithLogger(logger),
		gsh.WithPrompt(cfg.Prompt),
		gsh.WithInteractive(interactive),
	}
	if interactive && !cfg.Plain {
		shellOpts = append(shellOpts, gsh.WithRenderer(tui.NewRenderer()))
	}

	var promReg *prometheus.Registry
	if opts.Listen != "" {
		promReg = prometheus.NewRegistry()
		shellOpts = append(shellOpts, gsh.WithMetrics(observability.New(promReg)))
	}

	sh := gsh.New(shellOpts...)

	if opts.Listen != "" {
		handler := httpadapter.NewHandler(sh.Registry, promReg)
		go func() {
			logger.Info("introspection listener starting", "addr", opts.Listen)
			if err := http.ListenAndServe(opts.Listen, handler); err != nil {
				logger.Warn("introspection listener stopped", "error", err)
			}
		}()
	}

	if interactive && cfg.Banner {
		tui.PrintBanner(gsh.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err = sh.Run(sigCtx)
	if errors.Is(err, context.Canceled) && sigCtx.Signal() != nil {
		fmt.Printf("\nInterrupted (%v)\n", sigCtx.Signal())
		return nil
	}
	return err
}
