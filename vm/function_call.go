package vm

import "github.com/cloudcmds/pyro/object"

// callFunction is the Python-function invocation sequence from spec
// section 4.3: create a child scope over the function's closure, bind
// arguments into it, and either construct a Generator (without running the
// body) or hand a fresh Frame to the external frame interpreter.
func (vm *VM) callFunction(fn *object.Function, actuals object.Actuals) object.Result {
	scope := object.NewScope(fn.Scope)
	if exc := vm.bindArguments(fn.Code, actuals, fn.Defaults, scope); exc != nil {
		vm.logger.Warn().Str("message", vm.ToStr(exc)).Msg("argument binding failed")
		return object.Raise(exc)
	}
	frame := object.NewFrame(fn.Code, scope)
	if fn.Code.IsGenerator {
		return object.Ok(object.NewGenerator(frame))
	}
	return vm.runFrameFull(frame, vm)
}
