// Package registry manages the command set of a shell session.
package registry

import (
	"sync"

	"github.com/aretw0/gsh/pkg/command"
)

// Registry owns every registered command for the lifetime of the
// session and tracks the quit request of the host loop. The shell
// itself is single-threaded; the lock exists for the introspection
// server, which reads the catalog concurrently.
type Registry struct {
	mu       sync.RWMutex
	commands []command.Command
	quit     bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register appends commands in order. Names are not deduplicated; Find
// returns the first match.
func (r *Registry) Register(cmds ...command.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmds...)
}

// Find looks a command up by exact, case-sensitive name. Registries
// are small, so this is a linear scan.
func (r *Registry) Find(name string) (command.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.commands {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []command.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]command.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// RequestQuit marks the session as terminating. This is a user
// request, not an error; the host loop checks Quitting between
// commands.
func (r *Registry) RequestQuit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quit = true
}

// Quitting reports whether a quit was requested.
func (r *Registry) Quitting() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quit
}
