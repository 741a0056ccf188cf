package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/pyro/object"
)

func TestGetAttributeInstanceOwnDict(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Box", machine.Context().ObjectClass())
	instance := object.NewInstance(class)
	instance.Dict.Set("value", intArg(5))

	result := machine.GetAttribute(instance, "value")
	require.False(t, result.IsError())
	require.Equal(t, int64(5), result.Value().(*object.Integer).Value().Int64())
}

func TestGetAttributeInstanceMROBindsFunction(t *testing.T) {
	machine := newTestVM(t)
	parent := object.NewClass("Animal", machine.Context().ObjectClass())
	parent.Dict.Set("speak", object.NewNativeFunction("speak", func(rt object.Runtime, actuals object.Actuals) object.Result {
		return object.Ok(actuals.Positional[0])
	}))
	child := object.NewClass("Dog", parent)
	instance := object.NewInstance(child)

	result := machine.GetAttribute(instance, "speak")
	require.False(t, result.IsError())
	bound, ok := result.Value().(*object.BoundMethod)
	require.True(t, ok)

	invoked := machine.Invoke(bound, object.Actuals{})
	require.False(t, invoked.IsError())
	require.Same(t, instance, invoked.Value())
}

func TestGetAttributeClassLookupDoesNotBind(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Widget", machine.Context().ObjectClass())
	class.Dict.Set("build", object.NewNativeFunction("build", func(rt object.Runtime, actuals object.Actuals) object.Result {
		return object.Ok(object.None)
	}))
	result := machine.GetAttribute(class, "build")
	require.False(t, result.IsError())
	_, isBound := result.Value().(*object.BoundMethod)
	require.False(t, isBound, "looking up a method on a Class itself should not bind a receiver")
}

func TestGetAttributeModuleDict(t *testing.T) {
	machine := newTestVM(t)
	mod := object.NewModule("mathish")
	mod.Dict.Set("pi_ish", intArg(3))
	result := machine.GetAttribute(mod, "pi_ish")
	require.False(t, result.IsError())
	require.Equal(t, int64(3), result.Value().(*object.Integer).Value().Int64())
}

func TestGetAttributeMissingRaisesAttributeError(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Empty", machine.Context().ObjectClass())
	instance := object.NewInstance(class)
	result := machine.GetAttribute(instance, "nope")
	require.True(t, result.IsError())
	require.Same(t, machine.Context().Exceptions().AttributeError, result.Exception().Class)
	requireExceptionMessage(t, machine, result.Exception(), "'Empty' object has no attribute 'nope'")
}

// The ClassOf generalization (see DESIGN.md): a primitive Integer has no own
// attribute dict but its dunders are still reachable and bind like a method.
func TestGetAttributePrimitiveDunderBinds(t *testing.T) {
	machine := newTestVM(t)
	result := machine.GetAttribute(intArg(33), "__add__")
	require.False(t, result.IsError())
	bound, ok := result.Value().(*object.BoundMethod)
	require.True(t, ok, "int __add__ should resolve through ClassOf and bind as a method")

	invoked := machine.Invoke(bound, object.Actuals{Positional: []object.Object{intArg(12)}})
	require.False(t, invoked.IsError())
	require.Equal(t, int64(45), invoked.Value().(*object.Integer).Value().Int64())
}

// spec section 8: get_attribute(instance, m) then invoke equals
// invoke(class_method_m, prepend(instance, args)).
func TestGetAttributeRoundTripMatchesDirectClassInvoke(t *testing.T) {
	machine := newTestVM(t)
	class := object.NewClass("Pair", machine.Context().ObjectClass())
	sum := object.NewNativeFunction("sum", func(rt object.Runtime, actuals object.Actuals) object.Result {
		self := actuals.Positional[0].(*object.Instance)
		other := actuals.Positional[1].(*object.Integer)
		base, _ := self.Dict.Get("value")
		return object.Ok(object.NewIntegerFromInt64(base.(*object.Integer).Value().Int64() + other.Value().Int64()))
	})
	class.Dict.Set("sum", sum)
	instance := object.NewInstance(class)
	instance.Dict.Set("value", intArg(10))

	viaAttr := machine.CallMethod(instance, "sum", []object.Object{intArg(5)})
	require.False(t, viaAttr.IsError())

	viaDirect := machine.Invoke(sum, object.Actuals{Positional: []object.Object{instance, intArg(5)}})
	require.False(t, viaDirect.IsError())

	require.Equal(t,
		viaAttr.Value().(*object.Integer).Value().Int64(),
		viaDirect.Value().(*object.Integer).Value().Int64(),
	)
}
