package object

// Result is the PyResult sum type from the specification: the outcome of
// any VM evaluation is either a successful Object or a raised exception
// Instance. Exceptions never travel through Go's error channel; they are
// first-class values carried here, per spec section 7.
type Result struct {
	value     Object
	exception *Instance
}

// Ok wraps a successful value.
func Ok(value Object) Result {
	return Result{value: value}
}

// Raise wraps a raised exception instance.
func Raise(exception *Instance) Result {
	return Result{exception: exception}
}

// IsError reports whether this result carries a raised exception.
func (r Result) IsError() bool {
	return r.exception != nil
}

// Value returns the successful value. Only meaningful when IsError is false.
func (r Result) Value() Object {
	return r.value
}

// Exception returns the raised exception instance. Only meaningful when
// IsError is true.
func (r Result) Exception() *Instance {
	return r.exception
}
