package object

// Module is a named namespace, populated either by a stdlib init function
// (spec section 6) or by the embedder directly (builtins, sys-like module).
// Its Dict is the module's namespace.
type Module struct {
	base

	Name string
	Dict *Dict
}

func (m *Module) Type() Kind { return KindModule }

func (m *Module) Inspect() string { return "<module '" + m.Name + "'>" }

// NewModule creates a module with the given name and an empty namespace.
func NewModule(name string) *Module {
	return &Module{Name: name, Dict: NewDict()}
}
