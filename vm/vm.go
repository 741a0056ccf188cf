// Package vm implements the core of a bytecode-interpreting virtual
// machine: the object universe, the call dispatcher, argument binding,
// attribute resolution, and exception construction. The actual opcode loop
// is an external collaborator (RunFrameFullFunc); this package never
// interprets bytecode itself.
package vm

import (
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/pyro/object"
)

// RunFrameFullFunc is the external frame-interpreter primitive (spec
// section 6): given a Frame and the Runtime to call back into, it executes
// the frame's bytecode to completion and returns the function's return
// value or a raised exception. The core does not implement this; it is
// assumed to exist and is injected so the core can be built and tested
// without a compiler or opcode loop.
type RunFrameFullFunc func(frame *object.Frame, rt object.Runtime) object.Result

// StdlibInit is the shape of a stdlib module's init function (spec section
// 6, "Interface consumed from the stdlib registry"): given the owning
// ObjectContext, it returns a populated Module. The VM only holds these; it
// never calls one on its own initiative.
type StdlibInit func(ctx *object.Context) *object.Module

// VM is the container the specification's section 2 and section 6 describe:
// it owns the ObjectContext, the builtins and sys-like modules, and the
// stdlib init-function registry, and exposes the embedder-facing surface
// (RunCodeObj, ToStr, ToRepr, GetAttribute, CallMethod, Invoke, operator
// sugar). It implements object.Runtime so NativeFunction implementations
// can call back into it without object importing vm.
type VM struct {
	ctx      *object.Context
	builtins *object.Module
	sys      *object.Module

	stdlibInits  map[string]StdlibInit
	runFrameFull RunFrameFullFunc

	logger     zerolog.Logger
	observer   Observer
	idGenerate func() string

	id string
}

// New constructs a VM with a freshly initialized ObjectContext. Bootstrap
// failures are fatal (spec section 7, "implementation bugs... abort the
// process"), so New panics rather than returning an error, matching the
// teacher's own vm.New, which panics on a failed createVM.
func New(opts ...Option) *VM {
	ctx, err := object.NewContext()
	if err != nil {
		panic(err)
	}
	machine := &VM{
		ctx:         ctx,
		builtins:    object.NewModule("builtins"),
		sys:         object.NewModule("sys"),
		stdlibInits: map[string]StdlibInit{},
		observer:    NoOpObserver{},
		idGenerate:  newUUID,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(machine)
	}
	if machine.runFrameFull == nil {
		machine.runFrameFull = unimplementedRunFrameFull
	}
	machine.id = machine.idGenerate()
	machine.logger.Debug().Str("vm_id", machine.id).Msg("vm initialized")
	return machine
}

func newUUID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}

func unimplementedRunFrameFull(frame *object.Frame, rt object.Runtime) object.Result {
	return object.Raise(rt.NewRuntimeError("no frame interpreter configured (WithRunFrameFull required to execute bytecode)"))
}

// Ensure VM implements the object.Runtime interface NativeFunction
// implementations are handed.
var _ object.Runtime = (*VM)(nil)

// Context returns the owning ObjectContext.
func (vm *VM) Context() *object.Context { return vm.ctx }

// Builtins returns the VM's builtins module namespace.
func (vm *VM) Builtins() *object.Module { return vm.builtins }

// Sys returns the VM's sys-like module namespace.
func (vm *VM) Sys() *object.Module { return vm.sys }

// StdlibInits returns the registered stdlib init functions, keyed by module
// name. The VM does not perform imports itself (spec section 6).
func (vm *VM) StdlibInits() map[string]StdlibInit { return vm.stdlibInits }

// NewInt, NewStr, NewBool, NewTuple, NewList, NewDict, None, NewScope,
// NewBoundMethod, TypeType, and Object forward to the owning ObjectContext
// (SPEC_FULL.md's "embedder surface... forwarding to ObjectContext"), so an
// embedder holding only a *VM has the same factory surface as one holding
// the *Context directly.

func (vm *VM) NewInt(value int64) *object.Integer { return vm.ctx.NewInt(value) }
func (vm *VM) NewStr(value string) *object.String { return vm.ctx.NewStr(value) }
func (vm *VM) NewBool(value bool) *object.Bool    { return vm.ctx.NewBool(value) }

func (vm *VM) NewTuple(elements []object.Object) *object.Tuple { return vm.ctx.NewTuple(elements) }
func (vm *VM) NewList(elements []object.Object) *object.List   { return vm.ctx.NewList(elements) }
func (vm *VM) NewDict() *object.Dict                           { return vm.ctx.NewDict() }
func (vm *VM) None() *object.NoneType                          { return vm.ctx.None() }
func (vm *VM) NewScope(parent *object.Scope) *object.Scope     { return vm.ctx.NewScope(parent) }

func (vm *VM) NewBoundMethod(fn object.Object, receiver object.Object) *object.BoundMethod {
	return vm.ctx.NewBoundMethod(fn, receiver)
}

// TypeType and Object forward to the same-named ObjectContext accessors.
func (vm *VM) TypeType() *object.Class { return vm.ctx.TypeType() }
func (vm *VM) Object() *object.Class   { return vm.ctx.Object() }

// RunCodeObj builds a Frame from code and scope and hands it to the
// external frame interpreter (spec section 4.7). Used by an embedder to run
// __main__ and by module initializers.
func (vm *VM) RunCodeObj(code *object.Code, scope *object.Scope) object.Result {
	frame := object.NewFrame(code, scope)
	return vm.runFrameFull(frame, vm)
}

// ToStr renders obj via its __str__ dunder, falling back to Inspect if the
// dunder is missing or itself fails.
func (vm *VM) ToStr(obj object.Object) string {
	result := vm.CallMethod(obj, "__str__", nil)
	if result.IsError() {
		return obj.Inspect()
	}
	if s, ok := result.Value().(*object.String); ok {
		return s.Value()
	}
	return obj.Inspect()
}

// GetLocals is unspecified by spec section 9's open question on the
// original; the source it was distilled from returns None, so this does
// too.
func (vm *VM) GetLocals() object.Object { return object.None }

// ToRepr renders obj via its __repr__ dunder, falling back to Inspect.
func (vm *VM) ToRepr(obj object.Object) string {
	result := vm.CallMethod(obj, "__repr__", nil)
	if result.IsError() {
		return obj.Inspect()
	}
	if s, ok := result.Value().(*object.String); ok {
		return s.Value()
	}
	return obj.Inspect()
}
