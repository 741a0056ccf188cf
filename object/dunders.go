package object

import "math/big"

// newIntDunders builds the NativeFunction table installed on the canonical
// int Class. Each entry's receiver is the positional argument at index 0
// once bound (see vm.AttributeResolver), with the remaining operand at
// index 1.
func newIntDunders() map[string]Object {
	dict := map[string]Object{}
	dict["__add__"] = NewNativeFunction("int.__add__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__add__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("+", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Add(self.value, other.value)))
	})
	dict["__sub__"] = NewNativeFunction("int.__sub__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__sub__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("-", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Sub(self.value, other.value)))
	})
	dict["__mul__"] = NewNativeFunction("int.__mul__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__mul__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("*", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Mul(self.value, other.value)))
	})
	dict["__truediv__"] = NewNativeFunction("int.__truediv__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__truediv__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("/", self, actuals)))
		}
		if other.value.Sign() == 0 {
			return Raise(rt.NewValueError("division by zero"))
		}
		return Ok(NewInteger(new(big.Int).Quo(self.value, other.value)))
	})
	dict["__pow__"] = NewNativeFunction("int.__pow__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__pow__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("**", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Exp(self.value, other.value, nil)))
	})
	dict["__mod__"] = NewNativeFunction("int.__mod__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__mod__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("%", self, actuals)))
		}
		if other.value.Sign() == 0 {
			return Raise(rt.NewValueError("integer modulo by zero"))
		}
		return Ok(NewInteger(new(big.Int).Mod(self.value, other.value)))
	})
	dict["__xor__"] = NewNativeFunction("int.__xor__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__xor__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("^", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Xor(self.value, other.value)))
	})
	dict["__or__"] = NewNativeFunction("int.__or__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__or__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("|", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).Or(self.value, other.value)))
	})
	dict["__and__"] = NewNativeFunction("int.__and__", func(rt Runtime, actuals Actuals) Result {
		self, other, ok := intOperands(rt, "__and__", actuals)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("&", self, actuals)))
		}
		return Ok(NewInteger(new(big.Int).And(self.value, other.value)))
	})
	dict["__str__"] = NewNativeFunction("int.__str__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*Integer)
		return Ok(NewString(self.Inspect()))
	})
	dict["__repr__"] = dict["__str__"]
	dict["__eq__"] = NewNativeFunction("int.__eq__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*Integer)
		other, ok := actuals.Positional[1].(*Integer)
		if !ok {
			return Ok(False)
		}
		return Ok(NewBool(self.value.Cmp(other.value) == 0))
	})
	return dict
}

func intOperands(rt Runtime, name string, actuals Actuals) (*Integer, *Integer, bool) {
	if len(actuals.Positional) != 2 {
		return nil, nil, false
	}
	self, ok := actuals.Positional[0].(*Integer)
	if !ok {
		return nil, nil, false
	}
	other, ok := actuals.Positional[1].(*Integer)
	if !ok {
		return self, nil, false
	}
	return self, other, true
}

func unsupportedOperand(op string, self Object, actuals Actuals) string {
	selfKind := "?"
	if self != nil {
		selfKind = string(self.Type())
	}
	otherKind := "?"
	if len(actuals.Positional) > 1 && actuals.Positional[1] != nil {
		otherKind = string(actuals.Positional[1].Type())
	}
	return "unsupported operand type(s) for " + op + ": '" + selfKind + "' and '" + otherKind + "'"
}

// newStrDunders builds the NativeFunction table installed on the canonical
// str Class.
func newStrDunders() map[string]Object {
	dict := map[string]Object{}
	dict["__add__"] = NewNativeFunction("str.__add__", func(rt Runtime, actuals Actuals) Result {
		self, ok := actuals.Positional[0].(*String)
		if !ok || len(actuals.Positional) != 2 {
			return Raise(rt.NewTypeError(unsupportedOperand("+", actuals.Positional[0], actuals)))
		}
		other, ok := actuals.Positional[1].(*String)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("+", self, actuals)))
		}
		return Ok(NewString(self.value + other.value))
	})
	dict["__mul__"] = NewNativeFunction("str.__mul__", func(rt Runtime, actuals Actuals) Result {
		self, ok := actuals.Positional[0].(*String)
		if !ok || len(actuals.Positional) != 2 {
			return Raise(rt.NewTypeError(unsupportedOperand("*", actuals.Positional[0], actuals)))
		}
		count, ok := actuals.Positional[1].(*Integer)
		if !ok {
			return Raise(rt.NewTypeError(unsupportedOperand("*", self, actuals)))
		}
		n := count.value.Int64()
		if n < 0 {
			n = 0
		}
		result := ""
		for i := int64(0); i < n; i++ {
			result += self.value
		}
		return Ok(NewString(result))
	})
	dict["__str__"] = NewNativeFunction("str.__str__", func(rt Runtime, actuals Actuals) Result {
		return Ok(actuals.Positional[0])
	})
	dict["__repr__"] = NewNativeFunction("str.__repr__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*String)
		return Ok(NewString("'" + self.value + "'"))
	})
	dict["__eq__"] = NewNativeFunction("str.__eq__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*String)
		other, ok := actuals.Positional[1].(*String)
		if !ok {
			return Ok(False)
		}
		return Ok(NewBool(self.value == other.value))
	})
	return dict
}

// newBoolDunders builds the NativeFunction table installed on the canonical
// bool Class.
func newBoolDunders() map[string]Object {
	dict := map[string]Object{}
	dict["__str__"] = NewNativeFunction("bool.__str__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*Bool)
		return Ok(NewString(self.Inspect()))
	})
	dict["__repr__"] = dict["__str__"]
	dict["__eq__"] = NewNativeFunction("bool.__eq__", func(rt Runtime, actuals Actuals) Result {
		self := actuals.Positional[0].(*Bool)
		other, ok := actuals.Positional[1].(*Bool)
		if !ok {
			return Ok(False)
		}
		return Ok(NewBool(self.value == other.value))
	})
	return dict
}

// newNoneDunders builds the NativeFunction table installed on the
// canonical NoneType Class.
func newNoneDunders() map[string]Object {
	dict := map[string]Object{}
	dict["__str__"] = NewNativeFunction("NoneType.__str__", func(rt Runtime, actuals Actuals) Result {
		return Ok(NewString("None"))
	})
	dict["__repr__"] = dict["__str__"]
	dict["__eq__"] = NewNativeFunction("NoneType.__eq__", func(rt Runtime, actuals Actuals) Result {
		_, ok := actuals.Positional[1].(*NoneType)
		return Ok(NewBool(ok))
	})
	return dict
}
