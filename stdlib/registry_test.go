package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/pyro/object"
	"github.com/cloudcmds/pyro/stdlib"
	"github.com/cloudcmds/pyro/vm"
)

func TestDefaultsRegistersIdgenAndAnsi(t *testing.T) {
	inits := stdlib.Defaults()
	require.Contains(t, inits, "idgen")
	require.Contains(t, inits, "ansi")
}

func TestIdgenNewIDReturnsDistinctStrings(t *testing.T) {
	machine := vm.New(vm.WithStdlibInits(stdlib.Defaults()))
	mod := machine.StdlibInits()["idgen"](machine.Context())

	newID, ok := mod.Dict.Get("new_id")
	require.True(t, ok)

	first := machine.Invoke(newID, object.Actuals{})
	require.False(t, first.IsError())
	second := machine.Invoke(newID, object.Actuals{})
	require.False(t, second.IsError())

	require.NotEqual(t, first.Value().(*object.String).Value(), second.Value().(*object.String).Value())
}

func TestAnsiRedWrapsString(t *testing.T) {
	machine := vm.New(vm.WithStdlibInits(stdlib.Defaults()))
	mod := machine.StdlibInits()["ansi"](machine.Context())

	red, ok := mod.Dict.Get("red")
	require.True(t, ok)

	result := machine.Invoke(red, object.Actuals{Positional: []object.Object{object.NewString("oops")}})
	require.False(t, result.IsError())
	require.Contains(t, result.Value().(*object.String).Value(), "oops")
}
