package object

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Callable is a native function. It receives the already-evaluated call
// arguments and returns exactly one Object; failures are returned as *Error.
type Callable interface {
	Call(args ...Object) Object
}

// BuiltinFunction adapts a plain function to Callable.
type BuiltinFunction func(args ...Object) Object

// Call calls f(args...).
func (f BuiltinFunction) Call(args ...Object) Object { return f(args...) }

// Registry is the table of builtins visible from every scope.
// It is built once, frozen, and then shared by reference.
type Registry struct {
	entries map[string]*Builtin
	frozen  bool
	logger  *slog.Logger
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report builtins that return errors.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty, writable registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: make(map[string]*Builtin)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Register adds fn under name. It fails once the registry is frozen or if
// name is empty or already taken.
func (r *Registry) Register(name string, fn Callable) error {
	if r.frozen {
		return fmt.Errorf("register %q: registry is frozen", name)
	}
	if name == "" {
		return fmt.Errorf("register: empty builtin name")
	}
	if fn == nil {
		return fmt.Errorf("register %q: nil callable", name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %q: already registered", name)
	}
	r.entries[name] = &Builtin{Name: name, Fn: &loggedCallable{name: name, fn: fn, logger: r.logger}}
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup finds a builtin by name.
// A nil registry holds nothing.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.entries[name]
	return b, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered builtins.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

type loggedCallable struct {
	name   string
	fn     Callable
	logger *slog.Logger
}

func (c *loggedCallable) Call(args ...Object) Object {
	res := c.fn.Call(args...)
	if err, ok := res.(*Error); ok {
		c.logger.Debug("builtin returned error", "builtin", c.name, "nargs", len(args), "message", err.Message)
	}
	return res
}
