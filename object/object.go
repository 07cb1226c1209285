package object

import (
	"fmt"
	"go/ast"
)

// ObjectType is a string representation of an object's type.
type ObjectType string

const (
	NULL_OBJ         ObjectType = "NULL"
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	STRING_OBJ       ObjectType = "STRING"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	FUNCTION_OBJ     ObjectType = "FUNCTION"
	BUILTIN_OBJ      ObjectType = "BUILTIN"
	ERROR_OBJ        ObjectType = "ERROR"
)

// Object is the interface that all value types in the interpreter implement.
type Object interface {
	// Type returns the type of the object.
	Type() ObjectType
	// Inspect returns the language-level display string of the object's value.
	Inspect() string
}

// --- Null Object ---

// Null represents the absence of a value. It's a singleton, see NULL.
type Null struct{}

// Type returns the type of the Null object.
func (n *Null) Type() ObjectType { return NULL_OBJ }

// Inspect returns a string representation of the Null's value.
func (n *Null) Inspect() string { return "null" }

// --- Integer Object ---

// Integer represents a signed 64-bit integer value.
type Integer struct {
	Value int64
}

// Type returns the type of the Integer object.
func (i *Integer) Type() ObjectType { return INTEGER_OBJ }

// Inspect returns a string representation of the Integer's value.
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// --- Boolean Object ---

// Boolean represents a boolean value. Use TRUE, FALSE or NativeBool.
type Boolean struct {
	Value bool
}

// Type returns the type of the Boolean object.
func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }

// Inspect returns a string representation of the Boolean's value.
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// --- String Object ---

// String represents a string value.
type String struct {
	Value string
}

// Type returns the type of the String object.
func (s *String) Type() ObjectType { return STRING_OBJ }

// Inspect returns the string itself.
func (s *String) Inspect() string { return s.Value }

// --- Return Value Object ---

// ReturnValue represents the value being returned from a function.
// It wraps another object to signal the "return" state.
// A ReturnValue never wraps another ReturnValue; build it with NewReturnValue.
type ReturnValue struct {
	Value Object
}

// Type returns the type of the ReturnValue object.
func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }

// Inspect returns a string representation of the wrapped value.
func (rv *ReturnValue) Inspect() string {
	if rv.Value == nil {
		return NULL.Inspect()
	}
	return rv.Value.Inspect()
}

// NewReturnValue wraps obj as a return signal, collapsing nested wrappers.
func NewReturnValue(obj Object) *ReturnValue {
	for {
		rv, ok := obj.(*ReturnValue)
		if !ok {
			break
		}
		obj = rv.Value
	}
	if obj == nil {
		obj = NULL
	}
	return &ReturnValue{Value: obj}
}

// UnwrapReturnValue returns the value carried by a ReturnValue, or obj itself.
func UnwrapReturnValue(obj Object) Object {
	if rv, ok := obj.(*ReturnValue); ok {
		return rv.Value
	}
	return obj
}

// --- Function Object ---

// Function represents a user-defined function literal, closed over the
// environment in which it was evaluated.
type Function struct {
	Parameters []*ast.Ident
	Body       *ast.BlockStmt
	Env        *Environment // captured scope, shared live with its definition site
}

// Type returns the type of the Function object.
func (f *Function) Type() ObjectType { return FUNCTION_OBJ }

// Inspect returns an empty string; functions have no textual form.
func (f *Function) Inspect() string { return "" }

// Arity returns the number of parameters the function must be called with.
func (f *Function) Arity() int { return len(f.Parameters) }

// ExtendEnvironment creates the scope for one invocation of f: a child of the
// captured scope with every parameter bound to the matching argument.
// A nil parameter still consumes its argument but binds nothing.
func (f *Function) ExtendEnvironment(args []Object) (*Environment, *Error) {
	if len(args) != f.Arity() {
		return nil, NewError("wrong number of arguments: want=%d, got=%d", f.Arity(), len(args))
	}
	env := NewEnclosedEnvironment(f.Env)
	for i, param := range f.Parameters {
		if param == nil {
			continue
		}
		env.Set(param.Name, args[i])
	}
	return env, nil
}

// --- Builtin Function Object ---

// Builtin represents a native function registered under a fixed name.
type Builtin struct {
	Name string
	Fn   Callable
}

// Type returns the type of the Builtin object.
func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }

// Inspect returns an empty string; builtins have no textual form.
func (b *Builtin) Inspect() string { return "" }

// Call invokes the native function with already-evaluated arguments.
func (b *Builtin) Call(args ...Object) Object {
	if b.Fn == nil {
		return NewError("builtin %q is not callable", b.Name)
	}
	res := b.Fn.Call(args...)
	if res == nil {
		return NULL
	}
	return res
}

// --- Error Object ---

// Error represents a runtime error. Once produced it short-circuits the
// evaluation path that produced it.
type Error struct {
	Message string
}

// Type returns the type of the Error object.
func (e *Error) Type() ObjectType { return ERROR_OBJ }

// Inspect returns the error message.
func (e *Error) Inspect() string { return e.Message }

// NewError creates an Error with a formatted message.
func NewError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether obj is a runtime error value.
func IsError(obj Object) bool {
	return obj != nil && obj.Type() == ERROR_OBJ
}

// Pre-create global instances for common values to save allocations.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

// NativeBool returns the shared Boolean instance for b.
func NativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// IsTruthy reports whether obj counts as true in a condition.
// Only NULL and false are falsy.
func IsTruthy(obj Object) bool {
	switch obj := obj.(type) {
	case nil, *Null:
		return false
	case *Boolean:
		return obj.Value
	default:
		return true
	}
}
