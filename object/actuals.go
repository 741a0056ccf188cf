package object

// KeywordArg is a single (name, value) keyword argument supplied at a call
// site, in the order it appeared in the call.
type KeywordArg struct {
	Name  string
	Value Object
}

// Actuals is the packet of arguments passed to Invoke: an ordered list of
// positional arguments plus an ordered list of keyword pairs. Actuals is a
// value type; Prepend never mutates the receiver (spec section 9, "Actuals
// bundle immutability") so that the same bundle may still be referenced
// after a bound-method dispatch prepends the receiver onto a copy.
type Actuals struct {
	Positional []Object
	Keyword    []KeywordArg
}

// Prepend returns a new Actuals with receiver inserted at position 0 of the
// positional arguments. Used by BoundMethod and Instance.__call__ dispatch
// and by class-call to inject the freshly allocated instance as self.
func (a Actuals) Prepend(receiver Object) Actuals {
	positional := make([]Object, 0, len(a.Positional)+1)
	positional = append(positional, receiver)
	positional = append(positional, a.Positional...)
	return Actuals{Positional: positional, Keyword: a.Keyword}
}
