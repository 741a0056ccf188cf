package object

// Instance is an object whose behavior is defined by a user (or built-in)
// Class: a class reference, resolved once at construction, plus its own
// attribute dict. Exception values are Instances of exception classes.
type Instance struct {
	base

	Class *Class
	Dict  *Dict
}

func (i *Instance) Type() Kind { return KindInstance }

func (i *Instance) Inspect() string { return "<" + i.Class.Name + " object>" }

// NewInstance allocates an Instance of class with an empty attribute dict.
// Does not run __init__; that is the Dispatcher's job during class-call
// (spec section 4.2).
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Dict: NewDict()}
}
