package vm

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/pyro/object"
)

// bindArguments is the ArgumentBinder from spec section 4.4. It populates
// scope from actuals according to code's formal parameters and fn's
// defaults, in the exact, load-bearing step order the specification
// requires. Returns nil on success, or a raised exception instance.
func (vm *VM) bindArguments(code *object.Code, actuals object.Actuals, defaults object.Object, scope *object.Scope) *object.Instance {
	argNames := code.ArgNames
	nPos := len(actuals.Positional)
	nFormal := len(argNames)

	// Step 1-2: bind the shared prefix of positional actuals to formals.
	n := nPos
	if nFormal < n {
		n = nFormal
	}
	for i := 0; i < n; i++ {
		scope.Set(argNames[i], actuals.Positional[i])
	}

	// Step 3: collect the remainder into *args, or reject extra positionals.
	if code.HasVarArgs() {
		scope.Set(code.VarArgsName, object.NewTuple(actuals.Positional[n:]))
	} else if nPos > nFormal {
		return vm.NewTypeError(fmt.Sprintf("Expected %d arguments (got: %d)", nFormal, nPos))
	}

	// Step 4: prepare the **kwargs catch-all, if any.
	var varkwargs *object.Dict
	if code.HasVarKwargs() {
		varkwargs = object.NewDict()
		scope.Set(code.VarKwargsName, varkwargs)
	}

	// Step 5: bind keyword actuals in call-site order.
	for _, kw := range actuals.Keyword {
		if isFormalName(code, kw.Name) {
			if scope.Contains(kw.Name) {
				return vm.NewTypeError(fmt.Sprintf("Got multiple values for argument '%s'", kw.Name))
			}
			scope.Set(kw.Name, kw.Value)
		} else if varkwargs != nil {
			varkwargs.Set(kw.Name, kw.Value)
		} else {
			return vm.NewTypeError(fmt.Sprintf("Got an unexpected keyword argument '%s'", kw.Name))
		}
	}

	// Step 6: apply defaults to any still-unbound formal, requiring the
	// non-defaulted prefix to already be bound.
	if nPos < nFormal {
		var defaultValues *object.Tuple
		nDef := 0
		if t, ok := defaults.(*object.Tuple); ok {
			defaultValues = t
			nDef = t.Len()
		}
		requiredCount := nFormal - nDef
		var missing []string
		for i := 0; i < requiredCount; i++ {
			name := argNames[i]
			if !scope.Contains(name) {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return vm.NewTypeError(fmt.Sprintf("Missing %d required positional arguments: %s",
				len(missing), strings.Join(missing, ", ")))
		}
		for i := requiredCount; i < nFormal; i++ {
			name := argNames[i]
			if !scope.Contains(name) {
				scope.Set(name, defaultValues.At(i-requiredCount))
			}
		}
	}

	// Step 7: every keyword-only parameter must be bound; this spec rejects
	// unsupplied kwonly args outright rather than supporting per-parameter
	// kwonly defaults (an open question resolved in DESIGN.md).
	for _, name := range code.KwOnlyArgNames {
		if !scope.Contains(name) {
			return vm.NewTypeError(fmt.Sprintf("Missing required kw only argument: '%s'", name))
		}
	}

	return nil
}

func isFormalName(code *object.Code, name string) bool {
	for _, n := range code.ArgNames {
		if n == name {
			return true
		}
	}
	for _, n := range code.KwOnlyArgNames {
		if n == name {
			return true
		}
	}
	return false
}
