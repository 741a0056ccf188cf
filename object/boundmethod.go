package object

// BoundMethod pairs a callable (usually a Function) with a receiver.
// Invoking it prepends the receiver as the first positional argument and
// dispatches to the wrapped function (spec section 4.2).
type BoundMethod struct {
	base

	Function Object
	Receiver Object
}

func (m *BoundMethod) Type() Kind { return KindBoundMethod }

func (m *BoundMethod) Inspect() string {
	return "<bound method of " + m.Receiver.Inspect() + ">"
}

// NewBoundMethod pairs fn with receiver.
func NewBoundMethod(fn Object, receiver Object) *BoundMethod {
	return &BoundMethod{Function: fn, Receiver: receiver}
}
