package object

// Class represents both a user-defined class and a built-in type object
// (int, str, the class-of-classes, the root object class, exception
// classes, ...). Its Dict is the class namespace; its MRO is the
// linearised method resolution order used by attribute lookup, with this
// class first and the root object class last (spec section 3).
type Class struct {
	base

	Name string
	Dict *Dict
	MRO  []*Class
}

func (c *Class) Type() Kind { return KindClass }

func (c *Class) Inspect() string { return "<class '" + c.Name + "'>" }

// Lookup walks this class's own MRO (not an instance's) and returns the
// first dict hit, per spec section 4.5 rule 2 ("If obj is a Class: walk
// obj.mro; return the raw value on hit").
func (c *Class) Lookup(name string) (Object, bool) {
	for _, class := range c.MRO {
		if v, ok := class.Dict.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// IsSubclassOf reports whether c is other or a descendant of other,
// determined by MRO membership.
func (c *Class) IsSubclassOf(other *Class) bool {
	for _, class := range c.MRO {
		if class == other {
			return true
		}
	}
	return false
}

// NewClass builds a class with the given name, an empty namespace dict, and
// an MRO computed as [self] followed by parent's own MRO (single
// inheritance, as spec.md's class model requires). Pass a nil parent only
// for the root object class itself.
func NewClass(name string, parent *Class) *Class {
	class := &Class{Name: name, Dict: NewDict()}
	if parent == nil {
		class.MRO = []*Class{class}
		return class
	}
	mro := make([]*Class, 0, len(parent.MRO)+1)
	mro = append(mro, class)
	mro = append(mro, parent.MRO...)
	class.MRO = mro
	return class
}
