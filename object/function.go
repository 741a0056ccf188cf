package object

// Function is a user-defined, scripting-language function: a Code object
// paired with the Scope it closed over at definition time and its default
// argument values. Defaults is either a *Tuple or the None singleton,
// matching spec section 4.4 step 6 ("defaults (either a Tuple or None)").
type Function struct {
	base

	Code     *Code
	Scope    *Scope
	Defaults Object
}

func (f *Function) Type() Kind { return KindFunction }

func (f *Function) Inspect() string {
	name := f.Code.Name
	if name == "" {
		name = "<anonymous>"
	}
	return "<function " + name + ">"
}

// NewFunction builds a Function closing over scope with defaults (a *Tuple
// or None).
func NewFunction(code *Code, scope *Scope, defaults Object) *Function {
	return &Function{Code: code, Scope: scope, Defaults: defaults}
}
