package object

// NativeFunctionImpl is the Go function a NativeFunction wraps. It receives
// the invoking Runtime (the VM, seen through the minimal interface this
// package can depend on) the same way RustPython's RustFunction variant
// receives `&mut VirtualMachine` as its first argument.
type NativeFunctionImpl func(rt Runtime, actuals Actuals) Result

// NativeFunction wraps a Go implementation of a callable: dunder methods on
// built-in types, stdlib entry points, and anything else the host
// implements directly in Go rather than in scripting-language bytecode. It
// is opaque to user code (spec section 3).
type NativeFunction struct {
	base

	name string
	fn   NativeFunctionImpl
}

func (n *NativeFunction) Type() Kind { return KindNativeFunction }

func (n *NativeFunction) Inspect() string { return "<built-in function " + n.name + ">" }

// Name returns the function's registered name.
func (n *NativeFunction) Name() string { return n.name }

// Call invokes the wrapped Go implementation directly. The Dispatcher uses
// this for the NativeFunction branch of Invoke.
func (n *NativeFunction) Call(rt Runtime, actuals Actuals) Result {
	return n.fn(rt, actuals)
}

// NewNativeFunction wraps fn under name.
func NewNativeFunction(name string, fn NativeFunctionImpl) *NativeFunction {
	return &NativeFunction{name: name, fn: fn}
}
