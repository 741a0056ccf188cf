// Package object provides the runtime object model for the pyro virtual
// machine: the ObjectRef/ObjectKind variants, the Actuals calling bundle,
// and the PyResult sum type that carries first-class exceptions.
package object

// Kind tags the variant an Object implements, mirroring ObjectKind in the
// core specification.
type Kind string

const (
	KindInteger        Kind = "int"
	KindString         Kind = "str"
	KindBool           Kind = "bool"
	KindNone           Kind = "NoneType"
	KindTuple          Kind = "tuple"
	KindList           Kind = "list"
	KindDict           Kind = "dict"
	KindModule         Kind = "module"
	KindClass          Kind = "class"
	KindInstance       Kind = "instance"
	KindFunction       Kind = "function"
	KindBoundMethod    Kind = "bound_method"
	KindNativeFunction Kind = "native_function"
	KindGenerator      Kind = "generator"
	KindFrame          Kind = "frame"
	KindScope          Kind = "scope"
	KindCode           Kind = "code"
)

// Object is the interface every runtime value implements. It is
// intentionally small: arithmetic, comparison, and stringification all go
// through attribute lookup and dunder dispatch (see the vm package's
// AttributeResolver and operator-sugar methods) rather than through methods
// on this interface, matching the Python object model the spec describes.
type Object interface {
	// Type reports the ObjectKind variant this value implements.
	Type() Kind

	// Inspect returns a debug representation, used when no __repr__ dunder
	// is available (e.g. while bootstrapping the ObjectContext itself).
	Inspect() string

	// IsTruthy reports whether the object counts as true in a boolean
	// context. None, False, zero Integers, empty Strings, and empty Tuples,
	// Lists, and Dicts are falsy; every other value is truthy.
	IsTruthy() bool
}

// base provides the default, overridable behavior shared by most variants.
type base struct{}

func (base) IsTruthy() bool { return true }

// Runtime is the surface a NativeFunction needs from the VM that invokes it.
// It exists to avoid an import cycle: this package defines the object
// model, and the vm package (which owns the Dispatcher, AttributeResolver,
// and ExceptionFactory) depends on it, not the reverse. A NativeFunction is
// handed a Runtime the same way the RustPython original hands every
// built-in function a `&mut VirtualMachine` as its first argument.
type Runtime interface {
	// Invoke dispatches a call to callee with the given actuals.
	Invoke(callee Object, actuals Actuals) Result

	// GetAttribute resolves an attribute by name on obj.
	GetAttribute(obj Object, name string) Result

	// CallMethod resolves and invokes a method by name on obj.
	CallMethod(obj Object, name string, args []Object) Result

	// NewTypeError constructs a raised TypeError instance with message.
	NewTypeError(message string) *Instance

	// NewValueError constructs a raised ValueError instance with message.
	NewValueError(message string) *Instance

	// NewRuntimeError constructs a raised RuntimeError instance with message.
	NewRuntimeError(message string) *Instance

	// Context returns the owning ObjectContext.
	Context() *Context
}
