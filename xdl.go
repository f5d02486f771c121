package xdl

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/KimNorgaard/go-xdl/internal/jsonx"
)

// Marshal returns the XDL encoding of the Go value v. Values other than
// Value, *Dict and the plain types handled by FromAny are converted
// through their JSON encoding, so `json` struct tags apply.
func Marshal(v any, opts ...Option) ([]byte, error) {
	val, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	return Encode(val, opts...)
}

// Unmarshal decodes XDL or JSON data and stores the result in the value
// pointed to by v. A *Value receives the tree as is; any other target is
// filled from the JSON encoding of the tree, with the class tag of a
// tagged object visible as the "_class" field.
func Unmarshal(data []byte, v any, opts ...Option) error {
	val, err := Decode(data, opts...)
	if err != nil {
		return err
	}
	if p, ok := v.(*Value); ok {
		*p = val
		return nil
	}
	if err := jsonx.Unmarshal(EncodeJSON(val, false), v); err != nil {
		return fmt.Errorf("xdl: unmarshal into %T: %w", v, err)
	}
	return nil
}

// FromAny converts a Go value to a Value. nil, booleans, integers,
// floats, strings, []any and map[string]any (keys sorted) are converted
// directly; everything else goes through its JSON encoding.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Dict:
		return Object(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return Float32(t), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case []any:
		items := make([]Value, len(t))
		for i, it := range t {
			v, err := FromAny(it)
			if err != nil {
				return None(), err
			}
			items[i] = v
		}
		return Array(items...), nil
	case map[string]any:
		d := NewDict()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			v, err := FromAny(t[k])
			if err != nil {
				return None(), err
			}
			d.Set(k, v)
		}
		return Object(d), nil
	}

	b, err := jsonx.Marshal(x)
	if err != nil {
		return None(), fmt.Errorf("xdl: marshal %T: %w", x, err)
	}
	v, err := Decode(b)
	if err != nil {
		return None(), fmt.Errorf("xdl: decode JSON of %T: %w", x, err)
	}
	return v, nil
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return EncodeJSON(v, false), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	val, err := Decode(data)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
