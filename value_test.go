package xdl_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-xdl"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	var zero xdl.Value
	require.True(t, zero.IsNone())
	require.Equal(t, xdl.KindNone, zero.Kind())
	require.Equal(t, "none", zero.Kind().String())

	require.True(t, xdl.Null().IsNull())
	require.False(t, xdl.Null().IsNone())
	require.Equal(t, "dict", xdl.Object(nil).Kind().String())
	require.True(t, xdl.Array().IsContainer())
	require.False(t, xdl.String("[]").IsContainer())
}

func TestValueAccessors(t *testing.T) {
	b, ok := xdl.Bool(true).AsBool()
	require.True(t, ok)
	require.True(t, b)

	_, ok = xdl.Int(1).AsBool()
	require.False(t, ok)

	i, ok := xdl.Int(7).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(7), i)

	_, ok = xdl.Float(7).AsInt()
	require.False(t, ok, "floats are not converted to integers")

	f, ok := xdl.Int(7).AsFloat()
	require.True(t, ok)
	require.Equal(t, 7.0, f)

	s, ok := xdl.String("x").AsString()
	require.True(t, ok)
	require.Equal(t, "x", s)
}

func TestValueNavigation(t *testing.T) {
	v := xdl.DecodeString(`Item{tags=["a","b"], meta={n=1}}`)

	require.Equal(t, "Item", v.Class())
	require.Equal(t, 2, v.Get("tags").Len())
	require.Equal(t, `"b"`, v.Get("tags").Index(1).String())
	require.True(t, v.Get("tags").Index(2).IsNone())
	require.True(t, v.Get("tags").Index(-1).IsNone())
	require.True(t, v.Get("missing").IsNone())
	require.True(t, v.Get("meta").Get("n").Get("deeper").IsNone())
	require.Equal(t, "", v.Get("meta").Class())
	require.Nil(t, v.Get("meta").Items())
	require.Nil(t, v.Get("tags").Dict())
	require.Equal(t, 0, xdl.Int(3).Len())
}

func TestArrayDropsNone(t *testing.T) {
	v := xdl.Array(xdl.Int(1), xdl.None(), xdl.Null())
	require.Equal(t, 2, v.Len())
	require.Equal(t, "[1,null]", v.String())
}

func TestValueEqual(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  xdl.Value
		equal bool
	}{
		{"int and float", xdl.Int(3), xdl.Float(3), true},
		{"different numbers", xdl.Int(3), xdl.Float(3.5), false},
		{"NaN", xdl.Float(math.NaN()), xdl.Float(math.NaN()), true},
		{"null and none", xdl.Null(), xdl.None(), false},
		{"string and number", xdl.String("1"), xdl.Int(1), false},
		{"dict order ignored", xdl.DecodeString("{a=1,b=2}"), xdl.DecodeString("{b=2,a=1}"), true},
		{"dict values differ", xdl.DecodeString("{a=1}"), xdl.DecodeString("{a=2}"), false},
		{"array order matters", xdl.DecodeString("[1,2]"), xdl.DecodeString("[2,1]"), false},
		{"array length", xdl.DecodeString("[1,2]"), xdl.DecodeString("[1]"), false},
		{"class is a property", xdl.DecodeString("P{}"), xdl.DecodeString(`{"_class":"P"}`), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.equal, tc.a.Equal(tc.b))
			require.Equal(t, tc.equal, tc.b.Equal(tc.a))
		})
	}
}

func TestValueToAny(t *testing.T) {
	v := xdl.DecodeString(`V{a=[1, 2.5, "s", N, null]}`)
	want := map[string]any{
		"_class": "V",
		"a":      []any{int64(1), 2.5, "s", false, nil},
	}
	if diff := cmp.Diff(want, v.ToAny()); diff != "" {
		t.Errorf("ToAny() mismatch (-want +got):\n%s", diff)
	}
	require.Nil(t, xdl.None().ToAny())
}
