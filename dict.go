package xdl

import "iter"

// Dict is a dictionary of name to Value that remembers insertion order.
// Setting an existing name replaces the value in place.
type Dict struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Get returns the value stored under name.
func (d *Dict) Get(name string) (Value, bool) {
	if d == nil {
		return None(), false
	}
	i, ok := d.index[name]
	if !ok {
		return None(), false
	}
	return d.vals[i], true
}

// Has reports whether name is present.
func (d *Dict) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Set stores v under name. Setting None removes the entry. Setting on a
// nil *Dict does nothing; a zero Dict is ready to use.
func (d *Dict) Set(name string, v Value) {
	if d == nil {
		return
	}
	if v.kind == KindNone {
		d.Delete(name)
		return
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[name]; ok {
		d.vals[i] = v
		return
	}
	d.index[name] = len(d.keys)
	d.keys = append(d.keys, name)
	d.vals = append(d.vals, v)
}

// Delete removes name, keeping the order of the remaining entries.
func (d *Dict) Delete(name string) {
	if d == nil {
		return
	}
	i, ok := d.index[name]
	if !ok {
		return
	}
	delete(d.index, name)
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.vals = append(d.vals[:i], d.vals[i+1:]...)
	for j := i; j < len(d.keys); j++ {
		d.index[d.keys[j]] = j
	}
}

// Keys returns the names in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// All iterates over the entries in insertion order.
func (d *Dict) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}
		for i, k := range d.keys {
			if !yield(k, d.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether d and o hold the same names with equal values,
// regardless of order.
func (d *Dict) Equal(o *Dict) bool {
	if d.Len() != o.Len() {
		return false
	}
	for k, v := range d.All() {
		ov, ok := o.Get(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
