package object

import "github.com/cloudcmds/pyro/errors"

// Context is the ObjectContext from the specification: the universe of
// canonical types, canonical singletons, and exception classes shared by
// every Frame the VM ever runs. Exactly one Context exists per VM instance.
type Context struct {
	objectClass *Class
	typeClass   *Class

	intClass   *Class
	strClass   *Class
	boolClass  *Class
	tupleClass *Class
	listClass  *Class
	dictClass  *Class
	noneClass  *Class

	exceptions Exceptions
}

// Exceptions holds the canonical exception class hierarchy built during
// step 5 of Context initialization (spec section 4.1). Every member is a
// descendant of BaseException.
type Exceptions struct {
	BaseException  *Class
	TypeError      *Class
	ValueError     *Class
	NameError      *Class
	AttributeError *Class
	StopIteration  *Class
	RuntimeError   *Class
}

// ObjectClass returns the root object class, the universal MRO terminus.
func (c *Context) ObjectClass() *Class { return c.objectClass }

// TypeClass returns the class-of-classes: every Class's own Type() is
// KindClass, but conceptually every Class "is a" type, whose class is this.
func (c *Context) TypeClass() *Class { return c.typeClass }

// IntClass, StrClass, ... return the canonical built-in type classes.
func (c *Context) IntClass() *Class   { return c.intClass }
func (c *Context) StrClass() *Class   { return c.strClass }
func (c *Context) BoolClass() *Class  { return c.boolClass }
func (c *Context) TupleClass() *Class { return c.tupleClass }
func (c *Context) ListClass() *Class  { return c.listClass }
func (c *Context) DictClass() *Class  { return c.dictClass }
func (c *Context) NoneClass() *Class  { return c.noneClass }

// Exceptions returns the canonical exception class hierarchy.
func (c *Context) Exceptions() Exceptions { return c.exceptions }

// TypeType is an alias for TypeClass, matching the factory vocabulary
// SPEC_FULL.md's ObjectContext section names for the class-of-classes.
func (c *Context) TypeType() *Class { return c.typeClass }

// Object is an alias for ObjectClass, matching the factory vocabulary
// SPEC_FULL.md's ObjectContext section names for the root class.
func (c *Context) Object() *Class { return c.objectClass }

// NewInt, NewStr, NewBool, NewTuple, NewList, NewDict, None, NewScope, and
// NewBoundMethod are the ObjectContext value factories SPEC_FULL.md's
// ObjectContext section names. They are thin wrappers over the package-level
// constructors of the same values (Context carries no per-value state these
// constructors would need — None/True/False are process-wide singletons,
// and every other value type is self-contained), kept here as methods so an
// embedder that only holds a *Context, not the free functions, still has
// the complete factory surface spec.md describes.

func (c *Context) NewInt(value int64) *Integer { return NewIntegerFromInt64(value) }
func (c *Context) NewStr(value string) *String { return NewString(value) }
func (c *Context) NewBool(value bool) *Bool    { return NewBool(value) }

func (c *Context) NewTuple(elements []Object) *Tuple { return NewTuple(elements) }
func (c *Context) NewList(elements []Object) *List   { return NewList(elements) }
func (c *Context) NewDict() *Dict                    { return NewDict() }
func (c *Context) None() *NoneType                   { return None }
func (c *Context) NewScope(parent *Scope) *Scope     { return NewScope(parent) }

func (c *Context) NewBoundMethod(fn Object, receiver Object) *BoundMethod {
	return NewBoundMethod(fn, receiver)
}

// ClassOf returns the canonical Class backing obj's runtime Kind. This is
// the generalization AttributeResolver needs to resolve dunder methods on
// values that are not Instance, Class, or Module (spec section 4.5
// describes attribute lookup for those three variants only; every other
// variant still needs a Class to walk when looking up an operator dunder
// like __add__, so ClassOf supplies it). For Instance it returns the
// instance's own recorded Class; for Class it returns the type-of-classes
// class itself (the class a Class belongs to, not the class it names).
func (c *Context) ClassOf(obj Object) *Class {
	switch v := obj.(type) {
	case *Integer:
		return c.intClass
	case *String:
		return c.strClass
	case *Bool:
		return c.boolClass
	case *NoneType:
		return c.noneClass
	case *Tuple:
		return c.tupleClass
	case *List:
		return c.listClass
	case *Dict:
		return c.dictClass
	case *Instance:
		return v.Class
	case *Class:
		return c.typeClass
	default:
		return c.objectClass
	}
}

// NewContext performs the strict five-step initialization order of spec
// section 4.1. Any internal wiring failure is aggregated with
// go-multierror and returned as a single *errors.BootstrapError; callers
// are expected to treat this as fatal, per spec section 7's "ObjectContext
// bootstrap failures are fatal, not recoverable PyResults" rule.
func NewContext() (*Context, error) {
	ctx := &Context{}
	var failures []error

	// Step 1: the root object class. Its own MRO is just itself; it has
	// no parent, which is what makes it the universal terminus.
	ctx.objectClass = NewClass("object", nil)

	// Step 2: the class-of-classes. Every Class conceptually "is a" type,
	// and type itself descends from object.
	ctx.typeClass = NewClass("type", ctx.objectClass)

	// Step 3: primitive type classes, each carrying its dunder method
	// table in its own Dict.
	ctx.intClass = NewClass("int", ctx.objectClass)
	installDunders(ctx.intClass, newIntDunders())

	ctx.strClass = NewClass("str", ctx.objectClass)
	installDunders(ctx.strClass, newStrDunders())

	ctx.boolClass = NewClass("bool", ctx.intClass)
	installDunders(ctx.boolClass, newBoolDunders())

	ctx.tupleClass = NewClass("tuple", ctx.objectClass)
	ctx.listClass = NewClass("list", ctx.objectClass)
	ctx.dictClass = NewClass("dict", ctx.objectClass)

	ctx.noneClass = NewClass("NoneType", ctx.objectClass)
	installDunders(ctx.noneClass, newNoneDunders())

	// Step 4: the canonical None, True, False singletons already exist as
	// package-level vars (None, True, False); nothing further to wire.
	// They are validated here rather than constructed, since step 5's
	// exception classes are built against the same objectClass they
	// depend on.
	if None == nil {
		failures = append(failures, errOf("None singleton missing"))
	}
	if True == nil || False == nil {
		failures = append(failures, errOf("Bool singletons missing"))
	}

	// Step 5: exception classes. Each gets an __init__ that stores its
	// call arguments on the instance as "args", and a __str__ that
	// returns the first arg (or the empty string if called with none),
	// matching RustPython's exception base behavior.
	ctx.exceptions.BaseException = newExceptionClass("BaseException", ctx.objectClass)
	ctx.exceptions.TypeError = newExceptionClass("TypeError", ctx.exceptions.BaseException)
	ctx.exceptions.ValueError = newExceptionClass("ValueError", ctx.exceptions.BaseException)
	ctx.exceptions.NameError = newExceptionClass("NameError", ctx.exceptions.BaseException)
	ctx.exceptions.AttributeError = newExceptionClass("AttributeError", ctx.exceptions.BaseException)
	ctx.exceptions.StopIteration = newExceptionClass("StopIteration", ctx.exceptions.BaseException)
	ctx.exceptions.RuntimeError = newExceptionClass("RuntimeError", ctx.exceptions.BaseException)

	if err := errors.NewBootstrapError(failures...); err != nil {
		return nil, err
	}
	return ctx, nil
}

func installDunders(class *Class, dunders map[string]Object) {
	for name, fn := range dunders {
		class.Dict.Set(name, fn)
	}
}

func newExceptionClass(name string, parent *Class) *Class {
	class := NewClass(name, parent)
	class.Dict.Set("__init__", NewNativeFunction(name+".__init__", func(rt Runtime, actuals Actuals) Result {
		self, ok := actuals.Positional[0].(*Instance)
		if !ok {
			return Raise(rt.NewTypeError("__init__ requires an instance receiver"))
		}
		args := NewTuple(actuals.Positional[1:])
		self.Dict.Set("args", args)
		return Ok(None)
	}))
	class.Dict.Set("__str__", NewNativeFunction(name+".__str__", func(rt Runtime, actuals Actuals) Result {
		self, ok := actuals.Positional[0].(*Instance)
		if !ok {
			return Raise(rt.NewTypeError("__str__ requires an instance receiver"))
		}
		argsVal, ok := self.Dict.Get("args")
		if !ok {
			return Ok(NewString(""))
		}
		args, ok := argsVal.(*Tuple)
		if !ok || args.Len() == 0 {
			return Ok(NewString(""))
		}
		first := args.At(0)
		if s, ok := first.(*String); ok {
			return Ok(s)
		}
		return Ok(NewString(first.Inspect()))
	}))
	return class
}

// errOf is a tiny local helper so Context construction does not need to
// import fmt solely for two static bootstrap failure messages.
type contextError string

func (e contextError) Error() string { return string(e) }

func errOf(message string) error { return contextError(message) }
