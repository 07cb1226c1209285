// Package builtins provides the standard native functions and the shared,
// read-only registry every interpreter scope falls back to.
package builtins

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/podhmo/minimonkey/object"
)

type config struct {
	stdout io.Writer
	logger *slog.Logger
}

// Option is a functional option for configuring the builtin set.
type Option func(*config)

// WithStdout sets the writer that puts prints to.
func WithStdout(w io.Writer) Option {
	return func(c *config) {
		c.stdout = w
	}
}

// WithLogger sets the logger handed to the registry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *object.Registry
)

// Default returns the process-wide registry, built on first use.
// puts writes to os.Stdout.
func Default() *object.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New builds a fresh, frozen registry holding the standard builtins.
func New(opts ...Option) *object.Registry {
	c := &config{stdout: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	var ropts []object.RegistryOption
	if c.logger != nil {
		ropts = append(ropts, object.WithLogger(c.logger))
	}
	r := object.NewRegistry(ropts...)

	entries := []struct {
		name string
		fn   object.Callable
	}{
		{"len", object.BuiltinFunction(builtinLen)},
		{"puts", &putsBuiltin{w: c.stdout}},
		{"type", object.BuiltinFunction(builtinType)},
		{"str", object.BuiltinFunction(builtinStr)},
		{"int", object.BuiltinFunction(builtinInt)},
	}
	for _, e := range entries {
		if err := r.Register(e.name, e.fn); err != nil {
			panic(err) // should not happen: the names above are fixed
		}
	}
	r.Freeze()
	return r
}

func wrongArgs(got, want int) *object.Error {
	return object.NewError("wrong number of arguments. got=%d, want=%d", got, want)
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	default:
		return object.NewError("argument to %q not supported, got %s", "len", typeOf(args[0]))
	}
}

// putsBuiltin holds its output stream, so each registry can print elsewhere.
type putsBuiltin struct {
	w io.Writer
}

func (p *putsBuiltin) Call(args ...object.Object) object.Object {
	var b strings.Builder
	for _, arg := range args {
		if arg == nil {
			arg = object.NULL
		}
		b.WriteString(arg.Inspect())
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return object.NewError("puts: %v", err)
	}
	return object.NULL
}

func builtinType(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	return &object.String{Value: string(typeOf(args[0]))}
}

func builtinStr(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	if args[0] == nil {
		return &object.String{Value: object.NULL.Inspect()}
	}
	return &object.String{Value: args[0].Inspect()}
}

func builtinInt(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.Integer:
		return arg
	case *object.Boolean:
		if arg.Value {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	case *object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(arg.Value), 10, 64)
		if err != nil {
			return object.NewError("int: cannot convert %q: %v", arg.Value, unwrapNumError(err))
		}
		return &object.Integer{Value: n}
	default:
		return object.NewError("argument to %q not supported, got %s", "int", typeOf(args[0]))
	}
}

func typeOf(obj object.Object) object.ObjectType {
	if obj == nil {
		return object.NULL_OBJ
	}
	return obj.Type()
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
