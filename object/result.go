package object

// ResultKind tags the outcome of evaluating a node.
type ResultKind int

const (
	// ValueResult is an ordinary value; evaluation continues.
	ValueResult ResultKind = iota
	// ReturnResult requests an early return carrying a value.
	ReturnResult
	// ErrorResult propagates a runtime error.
	ErrorResult
)

func (k ResultKind) String() string {
	switch k {
	case ValueResult:
		return "value"
	case ReturnResult:
		return "return"
	case ErrorResult:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the explicit outcome an evaluator returns for each node, keeping
// control flow out of the value model.
type Result struct {
	Kind  ResultKind
	Value Object
}

// Ok wraps an ordinary value.
func Ok(obj Object) Result {
	if obj == nil {
		obj = NULL
	}
	return Result{Kind: ValueResult, Value: obj}
}

// Return requests an early return of obj.
// Returning an error propagates it as a failure.
func Return(obj Object) Result {
	val := NewReturnValue(obj).Value
	if err, ok := val.(*Error); ok {
		return Fail(err)
	}
	return Result{Kind: ReturnResult, Value: val}
}

// Fail propagates err.
func Fail(err *Error) Result {
	if err == nil {
		err = NewError("unknown error")
	}
	return Result{Kind: ErrorResult, Value: err}
}

// FromObject converts the in-band encoding (ReturnValue and Error objects)
// into a Result. A ReturnValue wrapping an Error becomes a failure.
func FromObject(obj Object) Result {
	switch obj := obj.(type) {
	case *ReturnValue:
		return Return(obj.Value)
	case *Error:
		return Fail(obj)
	default:
		return Ok(obj)
	}
}

// Halts reports whether the enclosing statement sequence must stop.
func (r Result) Halts() bool {
	return r.Kind != ValueResult
}

// Object returns the value carried by the outcome.
func (r Result) Object() Object {
	if r.Value == nil {
		return NULL
	}
	return r.Value
}

// AsObject converts the outcome back into the in-band encoding.
func (r Result) AsObject() Object {
	if r.Kind == ReturnResult {
		return NewReturnValue(r.Object())
	}
	return r.Object()
}

// Err returns the propagated error, or nil.
func (r Result) Err() *Error {
	if r.Kind != ErrorResult {
		return nil
	}
	err, _ := r.Value.(*Error)
	return err
}
