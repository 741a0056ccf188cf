package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/pyro/object"
)

// spec section 8, scenario 1: _add(33, 12) dispatches through
// ClassOf -> int class MRO -> __add__ NativeFunction, bound and invoked.
func TestScenarioIntAddDunder(t *testing.T) {
	machine := newTestVM(t)
	result := machine.Add(intArg(33), intArg(12))
	require.False(t, result.IsError())
	require.Equal(t, int64(45), result.Value().(*object.Integer).Value().Int64())
}

// spec section 8, scenario 2: _mul("Hello ", 4).
func TestScenarioStringMulDunder(t *testing.T) {
	machine := newTestVM(t)
	result := machine.Mul(object.NewString("Hello "), intArg(4))
	require.False(t, result.IsError())
	require.Equal(t, "Hello Hello Hello Hello ", result.Value().(*object.String).Value())
}

// spec section 8: "ctx.new_bool(true) is ctx.new_bool(true)" — two
// independent construction calls must yield the same pointer, and the
// VM-level factory (machine.NewBool, forwarding to the ObjectContext) must
// hold the invariant too, not just the package-level constructor.
func TestSingletonIdentity(t *testing.T) {
	machine := newTestVM(t)

	require.Same(t, object.NewBool(true), object.NewBool(true))
	require.Same(t, object.NewBool(false), object.NewBool(false))
	require.NotSame(t, object.NewBool(true), object.NewBool(false))

	require.Same(t, machine.NewBool(true), machine.NewBool(true))
	require.Same(t, machine.NewBool(true), object.NewBool(true))

	require.Same(t, machine.None(), machine.None())
	require.Same(t, machine.None(), object.None)
}
