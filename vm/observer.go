package vm

import "github.com/cloudcmds/pyro/object"

// Observer receives callbacks for VM invoke/return events. Implementations
// can be used for profilers, debuggers, or execution tracers without
// modifying the core, the same role the teacher's Observer interface fills
// for its instruction-level StepEvent/CallEvent/ReturnEvent callbacks —
// generalized here to the granularity this spec actually defines: Invoke
// dispatch, not individual opcodes (those live in the external frame
// interpreter, out of scope per spec section 1).
//
// All methods are optional; embed NoOpObserver to default the ones a given
// observer does not need.
type Observer interface {
	// OnInvoke is called before the Dispatcher routes a call. Returning
	// false halts the call with a RuntimeError.
	OnInvoke(event InvokeEvent) bool

	// OnReturn is called after a call completes, successfully or not.
	OnReturn(event ReturnEvent) bool
}

// InvokeEvent describes a call about to be dispatched.
type InvokeEvent struct {
	CalleeKind object.Kind
	ArgCount   int
}

// ReturnEvent describes a call that has completed.
type ReturnEvent struct {
	CalleeKind object.Kind
	Raised     bool
}

// NoOpObserver implements Observer with no-ops. Embed it to pick and choose
// which callbacks to override.
type NoOpObserver struct{}

func (NoOpObserver) OnInvoke(InvokeEvent) bool { return true }
func (NoOpObserver) OnReturn(ReturnEvent) bool { return true }

var _ Observer = NoOpObserver{}
