package object

import "math/big"

// Integer wraps an arbitrary-precision integer value. Integer is immutable:
// once constructed its value never changes, so it is always safe to share
// the underlying *big.Int without copying. Arithmetic (__add__, __sub__,
// ...) lives in dunders.go as NativeFunction dunders wired onto the
// canonical int Class by the Context, not as methods here.
type Integer struct {
	base
	value *big.Int
}

func (i *Integer) Type() Kind { return KindInteger }

func (i *Integer) Inspect() string { return i.value.String() }

func (i *Integer) IsTruthy() bool { return i.value.Sign() != 0 }

// Value returns the underlying big.Int. Callers must not mutate it.
func (i *Integer) Value() *big.Int { return i.value }

// NewInteger wraps a *big.Int. The big.Int is cloned so later mutation by
// the caller cannot violate Integer's immutability invariant.
func NewInteger(value *big.Int) *Integer {
	return &Integer{value: new(big.Int).Set(value)}
}

// NewIntegerFromInt64 is a convenience constructor for small integers.
func NewIntegerFromInt64(value int64) *Integer {
	return &Integer{value: big.NewInt(value)}
}
