// Package stdlib holds demonstration stdlib modules and the registry type
// the VM's stdlib init-function map is keyed by (spec section 6). The core
// itself never imports this package; an embedder opts in with
// vm.WithStdlibInits(stdlib.Defaults()).
package stdlib

import (
	"github.com/cloudcmds/pyro/stdlib/ansi"
	"github.com/cloudcmds/pyro/stdlib/idgen"
	"github.com/cloudcmds/pyro/vm"
)

// Registry maps a module name to the vm.StdlibInit function that builds it.
type Registry = map[string]vm.StdlibInit

// Defaults returns the registry of demonstration modules: idgen and ansi.
// Neither is auto-loaded by the VM; an embedder must pass this (or a subset
// of it) to vm.WithStdlibInits explicitly.
func Defaults() Registry {
	return Registry{
		"idgen": idgen.Init,
		"ansi":  ansi.Init,
	}
}
