package object

import "sort"

// --- Environment ---

// Environment holds the bindings of one lexical scope.
// Lookups read through the live chain of enclosing scopes; writes stay local.
type Environment struct {
	store    map[string]Object
	outer    *Environment
	builtins *Registry // shared by every scope of one interpreter, never copied
}

// NewEnvironment creates a new, top-level environment backed by builtins.
// builtins may be nil, in which case no builtin resolves.
func NewEnvironment(builtins *Registry) *Environment {
	s := make(map[string]Object)
	return &Environment{store: s, outer: nil, builtins: builtins}
}

// NewEnclosedEnvironment creates a new environment that is enclosed by an outer one.
// The new scope starts empty and shares outer's builtin registry.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	if outer == nil {
		return NewEnvironment(nil)
	}
	env := NewEnvironment(outer.builtins)
	env.outer = outer
	return env
}

// Get retrieves an object by name, checking enclosing scopes if necessary.
// Builtins are not consulted; see LookupBuiltin and Resolve.
func (e *Environment) Get(name string) (Object, bool) {
	for env := e; env != nil; env = env.outer {
		if obj, ok := env.store[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// GetLocal retrieves an object bound in this scope only.
func (e *Environment) GetLocal(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

// Set stores an object by name in the current environment's scope.
// An existing local binding is replaced; enclosing scopes are never written.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// LookupBuiltin resolves name against the builtin registry only.
func (e *Environment) LookupBuiltin(name string) (Object, bool) {
	if e.builtins == nil {
		return nil, false
	}
	b, ok := e.builtins.Lookup(name)
	if !ok {
		return nil, false
	}
	return b, true
}

// Resolve looks name up in the scope chain, then in the builtin registry.
// An unresolved name yields an Error value.
func (e *Environment) Resolve(name string) Object {
	if obj, ok := e.Get(name); ok {
		return obj
	}
	if obj, ok := e.LookupBuiltin(name); ok {
		return obj
	}
	return NewError("identifier not found: %s", name)
}

// Outer returns the enclosing environment.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Builtins returns the registry shared by this scope chain.
func (e *Environment) Builtins() *Registry {
	return e.builtins
}

// Names returns the names bound in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for k := range e.store {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Depth returns the number of enclosing scopes; the global scope has depth 0.
func (e *Environment) Depth() int {
	depth := 0
	for env := e.outer; env != nil; env = env.outer {
		depth++
	}
	return depth
}
