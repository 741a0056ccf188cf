package vm

import "github.com/cloudcmds/pyro/object"

// Invoke is the Dispatcher from spec section 4.2: the polymorphic
// invocation entry that routes to the right strategy based on the callee's
// variant.
func (vm *VM) Invoke(callee object.Object, actuals object.Actuals) object.Result {
	vm.logger.Debug().Str("callee_kind", string(callee.Type())).Int("arg_count", len(actuals.Positional)).Msg("invoke")
	if vm.observer != nil {
		if !vm.observer.OnInvoke(InvokeEvent{CalleeKind: callee.Type(), ArgCount: len(actuals.Positional)}) {
			// Build the RuntimeError unobserved: constructing it invokes the
			// exception class, which would otherwise be halted again.
			observer := vm.observer
			vm.observer = nil
			exc := vm.NewRuntimeError("execution halted by observer")
			vm.observer = observer
			return object.Raise(exc)
		}
	}
	result := vm.invoke(callee, actuals)
	if vm.observer != nil {
		vm.observer.OnReturn(ReturnEvent{CalleeKind: callee.Type(), Raised: result.IsError()})
	}
	return result
}

func (vm *VM) invoke(callee object.Object, actuals object.Actuals) object.Result {
	switch fn := callee.(type) {
	case *object.NativeFunction:
		return fn.Call(vm, actuals)
	case *object.Function:
		return vm.callFunction(fn, actuals)
	case *object.Class:
		return vm.classCall(fn, actuals)
	case *object.BoundMethod:
		return vm.Invoke(fn.Function, actuals.Prepend(fn.Receiver))
	case *object.Instance:
		call, ok := fn.Class.Lookup("__call__")
		if !ok {
			return object.Raise(vm.NewTypeError("'" + fn.Class.Name + "' object is not callable"))
		}
		return vm.Invoke(call, actuals.Prepend(fn))
	default:
		return object.Raise(vm.NewTypeError("'" + string(callee.Type()) + "' object is not callable"))
	}
}

// classCall implements the class-call strategy from spec section 4.2:
// allocate a fresh Instance whose class is the callee, run __init__ via
// MRO if present, reject a non-None init return with TypeError, and return
// the instance.
func (vm *VM) classCall(class *object.Class, actuals object.Actuals) object.Result {
	instance := object.NewInstance(class)
	if initFn, ok := class.Lookup("__init__"); ok {
		result := vm.Invoke(initFn, actuals.Prepend(instance))
		if result.IsError() {
			return result
		}
		if _, isNone := result.Value().(*object.NoneType); result.Value() != nil && !isNone {
			return object.Raise(vm.NewTypeError("__init__() should return None"))
		}
	}
	return object.Ok(instance)
}
