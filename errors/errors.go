// Package errors defines the host-level error types used while
// constructing the scripting-language object universe. Everything past
// bootstrap uses first-class exception instances (package object, spec
// section 7), never a Go error — a traceback/frame chain is explicitly the
// external frame interpreter's responsibility (spec.md section 7) and has
// no home here.
package errors

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// BootstrapError is raised when ObjectContext initialization cannot wire up
// the canonical type or exception universe. It is always fatal: there is no
// way to run scripting-language code without a working universe, so a VM
// that hits this aborts rather than limping on with a partially built
// ObjectContext.
type BootstrapError struct {
	Err error
}

func (b *BootstrapError) Error() string {
	return xerrors.Errorf("bootstrap error: %w", b.Err).Error()
}

func (b *BootstrapError) Unwrap() error {
	return b.Err
}

func (b *BootstrapError) IsFatal() bool {
	return true
}

// NewBootstrapError wraps one or more wiring failures gathered during
// ObjectContext construction. Passing multiple errors produces a single
// BootstrapError whose message enumerates every failure, rather than only
// the first one encountered.
func NewBootstrapError(errs ...error) *BootstrapError {
	var grouped error
	for _, err := range errs {
		if err == nil {
			continue
		}
		grouped = multierror.Append(grouped, err)
	}
	if grouped == nil {
		return nil
	}
	return &BootstrapError{Err: grouped}
}
