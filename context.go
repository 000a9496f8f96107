package evalexpr

import "github.com/ISibboI/evalexpr/internal/evalerr"

// Function is a registered callable: it takes the single Value passed
// at the call site (a tuple for multi-argument calls, per §9's design
// note on sidestepping variadic calling conventions) and returns a
// Value or an error.
//
// Arity, when >= 0, is enforced by the evaluator before Call runs: for
// Arity==0 the argument must be Empty; otherwise it must be a Tuple of
// exactly that length, or (when Arity==1) any single non-tuple value.
// Arity < 0 means no check — f receives
// whatever the call site evaluated to, including Empty for `f()`.
type Function struct {
	Call  func(Value) (Value, error)
	Arity int
}

// ReadOnlyContext is the weaker of the two capability tiers: lookup
// only. The evaluator accepts this interface everywhere; only the
// assignment operator demands MutableContext, at call time (§9).
type ReadOnlyContext interface {
	GetValue(name string) (Value, bool)
	GetFunction(name string) (Function, bool)
}

// MutableContext additionally admits variable writes and function
// registration.
type MutableContext interface {
	ReadOnlyContext
	SetValue(name string, v Value) error
	SetFunction(name string, fn Function) error
}

// Context is the default, always-mutable implementation of both
// capability interfaces. Use ReadOnly() to obtain a view that
// deliberately does not satisfy MutableContext, for callers that want
// evaluation to fail on any assignment.
type Context struct {
	variables map[string]Value
	functions map[string]Function
}

// NewContext creates an empty, mutable Context.
func NewContext() *Context {
	return &Context{variables: make(map[string]Value), functions: make(map[string]Function)}
}

// GetValue looks up a variable by name.
func (c *Context) GetValue(name string) (Value, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// GetFunction looks up a registered function by name.
func (c *Context) GetFunction(name string) (Function, bool) {
	f, ok := c.functions[name]
	return f, ok
}

// SetValue assigns name to v, enforcing the type-safety invariant
// (§3): once name has been bound to a Value of kind T, every later
// SetValue for that name must supply kind T too, or ExpectedType is
// returned and the context is left unchanged.
func (c *Context) SetValue(name string, v Value) error {
	if existing, ok := c.variables[name]; ok && existing.Kind() != v.Kind() {
		return &evalerr.Error{
			Kind:     evalerr.ExpectedType,
			Name:     name,
			Expected: existing.Kind().String(),
			Actual:   v.Kind().String(),
		}
	}
	c.variables[name] = v
	return nil
}

// Variables returns a snapshot of the current variable bindings, for
// callers (internal/serialize) that need to enumerate them; mutating
// the returned map never affects c.
func (c *Context) Variables() map[string]Value {
	out := make(map[string]Value, len(c.variables))
	for k, v := range c.variables {
		out[k] = v
	}
	return out
}

// SetFunction registers fn under name, replacing any previous
// registration.
func (c *Context) SetFunction(name string, fn Function) error {
	c.functions[name] = fn
	return nil
}

// ReadOnly returns a view of c that exposes only GetValue/GetFunction.
// Passing it to an evaluation makes every assignment in the expression
// fail with ContextNotManipulable, regardless of which Eval* variant
// is called.
func (c *Context) ReadOnly() ReadOnlyContext {
	return readOnlyView{c}
}

type readOnlyView struct{ inner *Context }

func (r readOnlyView) GetValue(name string) (Value, bool)       { return r.inner.GetValue(name) }
func (r readOnlyView) GetFunction(name string) (Function, bool) { return r.inner.GetFunction(name) }
