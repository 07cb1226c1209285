package builtins_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/podhmo/minimonkey/builtins"
	"github.com/podhmo/minimonkey/object"
	"github.com/podhmo/minimonkey/objecttest"
	"golang.org/x/sync/errgroup"
)

func call(t *testing.T, r *object.Registry, name string, args ...object.Object) object.Object {
	t.Helper()
	b, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("builtin %q is not registered", name)
	}
	return b.Call(args...)
}

func TestNames(t *testing.T) {
	r := builtins.New()
	want := []string{"int", "len", "puts", "str", "type"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if !r.Frozen() {
		t.Errorf("the builtin registry must be read-only")
	}
}

func TestLen(t *testing.T) {
	r := builtins.New()
	objecttest.AssertInteger(t, call(t, r, "len", &object.String{Value: ""}), 0)
	objecttest.AssertInteger(t, call(t, r, "len", &object.String{Value: "four"}), 4)
	objecttest.AssertInteger(t, call(t, r, "len", &object.String{Value: "hello world"}), 11)
	objecttest.AssertError(t, call(t, r, "len", &object.Integer{Value: 1}), `argument to "len" not supported, got INTEGER`)
	objecttest.AssertError(t, call(t, r, "len", &object.String{Value: "one"}, &object.String{Value: "two"}), "wrong number of arguments. got=2, want=1")
	objecttest.AssertError(t, call(t, r, "len"), "got=0, want=1")
}

func TestPuts(t *testing.T) {
	var out bytes.Buffer
	r := builtins.New(builtins.WithStdout(&out))

	res := call(t, r, "puts", &object.String{Value: "hello"}, &object.Integer{Value: 5}, object.TRUE, object.NULL)
	objecttest.AssertNull(t, res)
	if diff := cmp.Diff("hello\n5\ntrue\nnull\n", out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestPuts_WriteError(t *testing.T) {
	r := builtins.New(builtins.WithStdout(failingWriter{}))
	objecttest.AssertError(t, call(t, r, "puts", &object.String{Value: "x"}), "puts", "disk full")
}

func TestType(t *testing.T) {
	r := builtins.New()
	tests := []struct {
		arg  object.Object
		want string
	}{
		{&object.Integer{Value: 1}, "INTEGER"},
		{object.FALSE, "BOOLEAN"},
		{&object.String{Value: "s"}, "STRING"},
		{object.NULL, "NULL"},
		{object.NewError("x"), "ERROR"},
		{&object.Function{Body: &ast.BlockStmt{}}, "FUNCTION"},
		{&object.Builtin{Name: "len"}, "BUILTIN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			objecttest.AssertString(t, call(t, r, "type", tt.arg), tt.want)
		})
	}
}

func TestStrAndInt(t *testing.T) {
	r := builtins.New()
	objecttest.AssertString(t, call(t, r, "str", &object.Integer{Value: -42}), "-42")
	objecttest.AssertString(t, call(t, r, "str", object.TRUE), "true")
	objecttest.AssertString(t, call(t, r, "str", object.NULL), "null")

	objecttest.AssertInteger(t, call(t, r, "int", &object.String{Value: " 123 "}), 123)
	objecttest.AssertInteger(t, call(t, r, "int", object.TRUE), 1)
	objecttest.AssertInteger(t, call(t, r, "int", object.FALSE), 0)
	objecttest.AssertInteger(t, call(t, r, "int", &object.Integer{Value: 7}), 7)
	objecttest.AssertError(t, call(t, r, "int", &object.String{Value: "abc"}), `cannot convert "abc"`, "invalid syntax")
	objecttest.AssertError(t, call(t, r, "int", object.NULL), `argument to "int" not supported, got NULL`)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := builtins.New(builtins.WithLogger(logger))

	objecttest.AssertError(t, call(t, r, "len", object.TRUE))
	if !strings.Contains(buf.String(), "builtin=len") {
		t.Errorf("expected the failing builtin to be logged, got %q", buf.String())
	}
}

func TestDefault(t *testing.T) {
	if builtins.Default() != builtins.Default() {
		t.Fatalf("Default() must return the same registry every time")
	}

	global := object.NewEnvironment(builtins.Default())
	global.Set("x", &object.Integer{Value: 5})
	child := object.NewEnclosedEnvironment(global)

	objecttest.AssertEqual(t, object.Object(&object.Integer{Value: 5}), child.Resolve("x"))
	lenFn, ok := child.LookupBuiltin("len")
	if !ok {
		t.Fatalf("len should be visible from every scope")
	}
	objecttest.AssertInteger(t, lenFn.(*object.Builtin).Call(&object.String{Value: "abc"}), 3)
	if _, ok := child.LookupBuiltin("nonexistent"); ok {
		t.Errorf("unexpected builtin %q", "nonexistent")
	}
	objecttest.AssertError(t, child.Resolve("nonexistent"), "identifier not found: nonexistent")
}

// Independent interpreters share the default registry without copying it.
func TestDefault_SharedAcrossInterpreters(t *testing.T) {
	shared := builtins.Default()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			global := object.NewEnvironment(shared)
			scope := global
			for depth := 0; depth < 32; depth++ {
				scope = object.NewEnclosedEnvironment(scope)
				scope.Set(fmt.Sprintf("v%d", depth), &object.Integer{Value: int64(i)})
			}
			if scope.Builtins() != shared {
				return fmt.Errorf("worker %d: registry was copied", i)
			}
			lenFn, ok := scope.LookupBuiltin("len")
			if !ok {
				return fmt.Errorf("worker %d: len not found", i)
			}
			res := lenFn.(*object.Builtin).Call(&object.String{Value: strings.Repeat("x", i)})
			if !object.Equal(res, &object.Integer{Value: int64(i)}) {
				return fmt.Errorf("worker %d: len returned %s", i, res.Inspect())
			}
			if _, ok := global.Get("v0"); ok {
				return fmt.Errorf("worker %d: binding leaked into the global scope", i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
