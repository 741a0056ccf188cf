package object

// NoneType is the type of the single None value. Exactly one instance
// exists for the lifetime of the VM.
type NoneType struct {
	base
}

// None is the canonical singleton instance.
var None = &NoneType{}

func (n *NoneType) Type() Kind { return KindNone }

func (n *NoneType) Inspect() string { return "None" }

func (n *NoneType) IsTruthy() bool { return false }
