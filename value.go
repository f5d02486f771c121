package xdl

import (
	"math"

	"github.com/KimNorgaard/go-xdl/internal/token"
)

// ClassKey is the reserved dictionary key that holds the class tag of
// an object written as ClassName{...}.
const ClassKey = token.ClassKey

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota // no value: parse failure or lookup miss
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindDict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed XDL value. The zero Value is None, which
// is distinct from Null and is never stored inside a container.
type Value struct {
	kind   Kind
	single bool // float came from a float32 and is written with 9 digits
	b      bool
	i      int64
	f      float64
	s      string
	arr    []Value
	dict   *Dict
}

// None returns the absent value.
func None() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a double precision value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Float32 returns a single precision value. It is stored as float64 but
// encoded with single precision.
func Float32(v float32) Value { return Value{kind: KindFloat, f: float64(v), single: true} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Array returns an array holding items. None items are dropped.
func Array(items ...Value) Value {
	arr := make([]Value, 0, len(items))
	for _, it := range items {
		if it.kind != KindNone {
			arr = append(arr, it)
		}
	}
	return Value{kind: KindArray, arr: arr}
}

// Object returns a dictionary value backed by d. A nil d yields an
// empty dictionary.
func Object(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}
	return Value{kind: KindDict, dict: d}
}

// Tagged returns a dictionary value backed by d with its class tag set.
func Tagged(class string, d *Dict) Value {
	v := Object(d)
	v.dict.Set(ClassKey, String(class))
	return v
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNone() bool { return v.kind == KindNone }
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsContainer reports whether v is an array or a dictionary.
func (v Value) IsContainer() bool { return v.kind == KindArray || v.kind == KindDict }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v. Floats are not converted.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the number held by v, converting integers.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Items returns the elements of an array, or nil.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Dict returns the dictionary held by v, or nil.
func (v Value) Dict() *Dict {
	if v.kind != KindDict {
		return nil
	}
	return v.dict
}

// Len returns the number of array elements or dictionary entries.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindDict:
		return v.dict.Len()
	}
	return 0
}

// Index returns the i-th array element, or None when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return None()
	}
	return v.arr[i]
}

// Get returns the named property, or None when v is not a dictionary or
// has no such property.
func (v Value) Get(name string) Value {
	if v.kind != KindDict {
		return None()
	}
	val, _ := v.dict.Get(name)
	return val
}

// Class returns the class tag of a dictionary, or "".
func (v Value) Class() string {
	s, _ := v.Get(ClassKey).AsString()
	return s
}

// Equal reports whether v and o hold the same structure. Integers and
// floats compare by numeric value; dictionary order is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		a, aok := v.AsFloat()
		b, bok := o.AsFloat()
		return aok && bok && a == b
	}
	switch v.kind {
	case KindNone, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindDict:
		return v.dict.Equal(o.dict)
	}
	return false
}

// String returns the compact XDL encoding of v.
func (v Value) String() string {
	return string(EncodeXDL(v, false))
}

// ToAny converts v to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. The class tag stays under ClassKey.
func (v Value) ToAny() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, it := range v.arr {
			out[i] = it.ToAny()
		}
		return out
	case KindDict:
		out := make(map[string]any, v.dict.Len())
		for k, it := range v.dict.All() {
			out[k] = it.ToAny()
		}
		return out
	}
	return nil
}
