package object

import "strings"

// Dict is a mapping from string keys to Object values. Insertion order is
// preserved and keys are unique, matching spec section 3. It backs both
// user-facing dict values and the namespace dicts used internally by
// Module, Class, Instance, and Scope.
type Dict struct {
	base
	order  []string
	values map[string]Object
}

func (d *Dict) Type() Kind { return KindDict }

func (d *Dict) Inspect() string {
	parts := make([]string, 0, len(d.order))
	for _, k := range d.order {
		parts = append(parts, "'"+k+"': "+d.values[k].Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) IsTruthy() bool { return len(d.order) > 0 }

// Len returns the number of keys.
func (d *Dict) Len() int { return len(d.order) }

// Get returns the value for key and whether it was present.
func (d *Dict) Get(key string) (Object, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Contains reports whether key is present.
func (d *Dict) Contains(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set inserts or overwrites key. New keys are appended to the insertion
// order; overwriting an existing key leaves its position unchanged.
func (d *Dict) Set(key string, value Object) {
	if _, exists := d.values[key]; !exists {
		d.order = append(d.order, key)
	}
	d.values[key] = value
}

// Delete removes key, if present.
func (d *Dict) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{values: make(map[string]Object)}
}
