package vm

import "github.com/rs/zerolog"

// Option is a configuration function for a VM, following the same
// functional-options pattern the teacher uses in its own vm/options.go
// (WithGlobals, WithObserver, ...).
type Option func(*VM)

// WithLogger attaches a zerolog logger the VM uses for its own diagnostic
// surface (invoke dispatch, argument-binding failures, ObjectContext
// initialization). If not supplied, the VM logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithObserver attaches an Observer that receives callbacks for invoke and
// return events, mirroring the teacher's WithObserver option.
func WithObserver(observer Observer) Option {
	return func(vm *VM) {
		vm.observer = observer
	}
}

// WithStdlibInits seeds the VM's stdlib init-function registry (spec
// section 6, "Interface consumed from the stdlib registry"). The VM never
// calls these itself; it only holds them for an embedder-driven import.
func WithStdlibInits(inits map[string]StdlibInit) Option {
	return func(vm *VM) {
		for name, init := range inits {
			vm.stdlibInits[name] = init
		}
	}
}

// WithIDGenerator overrides the function the VM uses to tag itself for log
// correlation. Defaults to a gofrs/uuid-backed
// generator; see vm.go.
func WithIDGenerator(generate func() string) Option {
	return func(vm *VM) {
		vm.idGenerate = generate
	}
}

// WithRunFrameFull overrides the external frame-interpreter primitive the
// VM delegates actual bytecode execution to (spec section 6). Tests supply
// a fake; a real embedder supplies its opcode loop.
func WithRunFrameFull(fn RunFrameFullFunc) Option {
	return func(vm *VM) {
		vm.runFrameFull = fn
	}
}
