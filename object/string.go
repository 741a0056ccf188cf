package object

// String wraps immutable Unicode text.
type String struct {
	base
	value string
}

func (s *String) Type() Kind { return KindString }

func (s *String) Inspect() string { return s.value }

func (s *String) IsTruthy() bool { return s.value != "" }

// Value returns the underlying Go string.
func (s *String) Value() string { return s.value }

// NewString wraps value.
func NewString(value string) *String {
	return &String{value: value}
}
