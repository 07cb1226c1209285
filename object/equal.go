package object

// Equal reports whether a and b are the same variant with equal payloads.
//
// Functions are equal when their parameter names match in order and they
// share the identical body node (pointer identity, not structural AST
// equality) and the same captured scope. Builtins are equal
// when they are registered under the same name.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Integer:
		other, ok := b.(*Integer)
		return ok && a.Value == other.Value
	case *Boolean:
		other, ok := b.(*Boolean)
		return ok && a.Value == other.Value
	case *String:
		other, ok := b.(*String)
		return ok && a.Value == other.Value
	case *Error:
		other, ok := b.(*Error)
		return ok && a.Message == other.Message
	case *ReturnValue:
		other, ok := b.(*ReturnValue)
		return ok && Equal(a.Value, other.Value)
	case *Builtin:
		other, ok := b.(*Builtin)
		return ok && a.Name == other.Name
	case *Function:
		other, ok := b.(*Function)
		if !ok {
			return false
		}
		if a.Body != other.Body || a.Env != other.Env {
			return false
		}
		if len(a.Parameters) != len(other.Parameters) {
			return false
		}
		for i, p := range a.Parameters {
			q := other.Parameters[i]
			if p == nil || q == nil {
				if p != q {
					return false
				}
				continue
			}
			if p.Name != q.Name {
				return false
			}
		}
		return true
	}
	return false
}
