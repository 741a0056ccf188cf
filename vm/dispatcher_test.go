package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/pyro/object"
)

func TestInvokeNativeFunction(t *testing.T) {
	machine := newTestVM(t)
	fn := object.NewNativeFunction("double", func(rt object.Runtime, actuals object.Actuals) object.Result {
		n := actuals.Positional[0].(*object.Integer)
		return object.Ok(object.NewIntegerFromInt64(n.Value().Int64() * 2))
	})
	result := machine.Invoke(fn, object.Actuals{Positional: []object.Object{intArg(21)}})
	require.False(t, result.IsError())
	require.Equal(t, int64(42), result.Value().(*object.Integer).Value().Int64())
}

func TestInvokeBoundMethodPrependsReceiver(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Greeter", machine.Context().ObjectClass())
	greet := object.NewNativeFunction("greet", func(rt object.Runtime, actuals object.Actuals) object.Result {
		require.Len(t, actuals.Positional, 1)
		return object.Ok(actuals.Positional[0])
	})
	class.Dict.Set("greet", greet)
	instance := object.NewInstance(class)

	attr := machine.GetAttribute(instance, "greet")
	require.False(t, attr.IsError())
	bound, ok := attr.Value().(*object.BoundMethod)
	require.True(t, ok)

	result := machine.Invoke(bound, object.Actuals{})
	require.False(t, result.IsError())
	require.Same(t, instance, result.Value())
}

func TestInvokeInstanceCallDunder(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Adder", machine.Context().ObjectClass())
	class.Dict.Set("__call__", object.NewNativeFunction("__call__", func(rt object.Runtime, actuals object.Actuals) object.Result {
		return object.Ok(actuals.Positional[1])
	}))
	instance := object.NewInstance(class)
	result := machine.Invoke(instance, object.Actuals{Positional: []object.Object{intArg(7)}})
	require.False(t, result.IsError())
	require.Equal(t, int64(7), result.Value().(*object.Integer).Value().Int64())
}

func TestInvokeInstanceNotCallableRaisesTypeError(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Plain", machine.Context().ObjectClass())
	instance := object.NewInstance(class)
	result := machine.Invoke(instance, object.Actuals{})
	require.True(t, result.IsError())
	require.Same(t, machine.Context().Exceptions().TypeError, result.Exception().Class)
}

func TestInvokeUncallableKindRaisesTypeError(t *testing.T) {
	machine := newTestVM(t)
	result := machine.Invoke(intArg(1), object.Actuals{})
	require.True(t, result.IsError())
	require.Same(t, machine.Context().Exceptions().TypeError, result.Exception().Class)
}

func TestClassCallRunsInitAndReturnsInstance(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Point", machine.Context().ObjectClass())
	class.Dict.Set("__init__", object.NewNativeFunction("__init__", func(rt object.Runtime, actuals object.Actuals) object.Result {
		self := actuals.Positional[0].(*object.Instance)
		self.Dict.Set("x", actuals.Positional[1])
		return object.Ok(object.None)
	}))
	result := machine.Invoke(class, object.Actuals{Positional: []object.Object{intArg(9)}})
	require.False(t, result.IsError())
	instance := result.Value().(*object.Instance)
	require.Same(t, class, instance.Class)
	x, ok := instance.Dict.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(9), x.(*object.Integer).Value().Int64())
}

func TestClassCallRejectsNonNoneInitReturn(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Bad", machine.Context().ObjectClass())
	class.Dict.Set("__init__", object.NewNativeFunction("__init__", func(rt object.Runtime, actuals object.Actuals) object.Result {
		return object.Ok(intArg(1))
	}))
	result := machine.Invoke(class, object.Actuals{})
	require.True(t, result.IsError())
	require.Same(t, machine.Context().Exceptions().TypeError, result.Exception().Class)
}
