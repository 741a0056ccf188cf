package vm

import (
	"github.com/cloudcmds/pyro/errors"
	"github.com/cloudcmds/pyro/object"
)

// NewException is the ExceptionFactory from spec section 4.6: build a
// String from message, invoke class through the Dispatcher with it as the
// sole positional argument, and return the resulting instance. Constructing
// an exception while constructing another exception is a fatal
// implementation bug per spec section 4.6 and aborts rather than looping.
//
// The instance is additionally tagged with its errors.ErrorCode under the
// "error_code" key, one of E3001/E3011-E3015 (see errors/codes.go). This
// never changes __str__'s output (spec section 8's exact message-text
// properties still hold) — it is purely a side channel an embedder can use
// to categorize a raised exception without string-matching its class name.
func (vm *VM) NewException(class *object.Class, message string) *object.Instance {
	actuals := object.Actuals{Positional: []object.Object{object.NewString(message)}}
	result := vm.Invoke(class, actuals)
	if result.IsError() {
		panic("pyro: constructing exception '" + class.Name + "' itself raised")
	}
	instance, ok := result.Value().(*object.Instance)
	if !ok {
		panic("pyro: exception class '" + class.Name + "' constructor did not return an Instance")
	}
	if code, ok := errorCodeFor(vm.ctx, class); ok {
		instance.Dict.Set("error_code", object.NewString(string(code)))
	}
	return instance
}

// errorCodeFor maps one of the six canonical exception classes to its
// errors.ErrorCode. User-defined exception classes (anything not held
// directly on Exceptions()) get no code.
func errorCodeFor(ctx *object.Context, class *object.Class) (errors.ErrorCode, bool) {
	exceptions := ctx.Exceptions()
	switch class {
	case exceptions.TypeError:
		return errors.E3001, true
	case exceptions.ValueError:
		return errors.E3011, true
	case exceptions.AttributeError:
		return errors.E3012, true
	case exceptions.NameError:
		return errors.E3013, true
	case exceptions.StopIteration:
		return errors.E3014, true
	case exceptions.RuntimeError:
		return errors.E3015, true
	default:
		return "", false
	}
}

// NewTypeError, NewValueError, and the rest are the convenience
// constructors spec section 4.6 calls for, one per canonical exception
// class held on the ObjectContext.

func (vm *VM) NewTypeError(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().TypeError, message)
}

func (vm *VM) NewValueError(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().ValueError, message)
}

func (vm *VM) NewAttributeError(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().AttributeError, message)
}

func (vm *VM) NewNameError(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().NameError, message)
}

func (vm *VM) NewStopIteration(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().StopIteration, message)
}

func (vm *VM) NewRuntimeError(message string) *object.Instance {
	return vm.NewException(vm.ctx.Exceptions().RuntimeError, message)
}
