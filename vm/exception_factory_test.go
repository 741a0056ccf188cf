package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/pyro/object"
)

func TestNewExceptionBuildsInstanceWithArgs(t *testing.T) {
	machine := newTestVM(t)
	exc := machine.NewException(machine.Context().Exceptions().ValueError, "bad value")
	require.Same(t, machine.Context().Exceptions().ValueError, exc.Class)

	args, ok := exc.Dict.Get("args")
	require.True(t, ok)
	tuple, ok := args.(*object.Tuple)
	require.True(t, ok)
	require.Equal(t, 1, tuple.Len())
	require.Equal(t, "bad value", tuple.At(0).(*object.String).Value())
}

func TestNewExceptionToStrReturnsMessage(t *testing.T) {
	machine := newTestVM(t)
	exc := machine.NewException(machine.Context().Exceptions().RuntimeError, "boom")
	require.Equal(t, "boom", machine.ToStr(exc))
}

func TestConvenienceConstructorsUseCanonicalClasses(t *testing.T) {
	machine := newTestVM(t)
	exceptions := machine.Context().Exceptions()

	require.Same(t, exceptions.TypeError, machine.NewTypeError("x").Class)
	require.Same(t, exceptions.ValueError, machine.NewValueError("x").Class)
	require.Same(t, exceptions.AttributeError, machine.NewAttributeError("x").Class)
	require.Same(t, exceptions.NameError, machine.NewNameError("x").Class)
	require.Same(t, exceptions.StopIteration, machine.NewStopIteration("x").Class)
	require.Same(t, exceptions.RuntimeError, machine.NewRuntimeError("x").Class)
}

func TestNewExceptionTagsErrorCodeWithoutChangingMessage(t *testing.T) {
	machine := newTestVM(t)
	exc := machine.NewValueError("bad value")
	code, ok := exc.Dict.Get("error_code")
	require.True(t, ok)
	require.Equal(t, "E3011", code.(*object.String).Value())
	require.Equal(t, "bad value", machine.ToStr(exc))
}

func TestExceptionHierarchySubclassesBaseException(t *testing.T) {
	machine := newTestVM(t)
	exceptions := machine.Context().Exceptions()
	for _, class := range []*object.Class{
		exceptions.TypeError,
		exceptions.ValueError,
		exceptions.AttributeError,
		exceptions.NameError,
		exceptions.StopIteration,
		exceptions.RuntimeError,
	} {
		require.True(t, class.IsSubclassOf(exceptions.BaseException), "%s should subclass BaseException", class.Name)
	}
}
