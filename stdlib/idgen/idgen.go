// Package idgen is a demonstration stdlib module (spec section 6): it
// exposes a single NativeFunction, new_id, that hands out a fresh
// gofrs/uuid-backed identifier string each call. It exists to exercise the
// VM's stdlib registry end to end with a real third-party dependency,
// not to offer a production-grade ID scheme.
package idgen

import (
	"github.com/gofrs/uuid"

	"github.com/cloudcmds/pyro/object"
)

// Init builds the idgen module. Matches the vm.StdlibInit shape so it can
// be registered without idgen importing the vm package.
func Init(ctx *object.Context) *object.Module {
	mod := object.NewModule("idgen")
	mod.Dict.Set("new_id", object.NewNativeFunction("idgen.new_id", func(rt object.Runtime, actuals object.Actuals) object.Result {
		id, err := uuid.NewV4()
		if err != nil {
			return object.Raise(rt.NewRuntimeError("idgen: " + err.Error()))
		}
		return object.Ok(object.NewString(id.String()))
	}))
	return mod
}
