// Package ansi is a demonstration stdlib module (spec section 6): it wraps
// github.com/fatih/color to expose red, green, and bold as NativeFunctions
// that wrap a string in the matching ANSI escape codes, grounded on the
// teacher's own use of color.New(...).SprintfFunc() in cmd/risor's output
// formatting.
package ansi

import (
	"github.com/fatih/color"

	"github.com/cloudcmds/pyro/object"
)

// Init builds the ansi module.
func Init(ctx *object.Context) *object.Module {
	mod := object.NewModule("ansi")
	mod.Dict.Set("red", wrap("ansi.red", color.New(color.FgRed).SprintFunc()))
	mod.Dict.Set("green", wrap("ansi.green", color.New(color.FgGreen).SprintFunc()))
	mod.Dict.Set("bold", wrap("ansi.bold", color.New(color.Bold).SprintFunc()))
	return mod
}

func wrap(name string, sprint func(a ...interface{}) string) *object.NativeFunction {
	return object.NewNativeFunction(name, func(rt object.Runtime, actuals object.Actuals) object.Result {
		if len(actuals.Positional) != 1 {
			return object.Raise(rt.NewTypeError(name + "() takes exactly one argument"))
		}
		s, ok := actuals.Positional[0].(*object.String)
		if !ok {
			return object.Raise(rt.NewTypeError(name + "() argument must be a string"))
		}
		return object.Ok(object.NewString(sprint(s.Value())))
	})
}
