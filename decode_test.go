package xdl_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KimNorgaard/go-xdl"
	"github.com/KimNorgaard/go-xdl/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  any
	}{
		{"integer", "42", int64(42)},
		{"negative zero", "-0", int64(0)},
		{"float", "2.5", 2.5},
		{"exponent", "-2.5E-1", -0.25},
		{"integer overflow becomes float", "92233720368547758070", 9.223372036854776e19},
		{"string", `"hi"`, "hi"},
		{"unicode escape", `"caf\u00e9"`, "caf\u00e9"},
		{"Y", "Y", true},
		{"true", "true", true},
		{"N", "N", false},
		{"false", "false", false},
		{"null", "null", nil},
		{
			"mixed array",
			`[1, 2.5, -3, Y, "hi"]`,
			[]any{int64(1), 2.5, int64(-3), true, "hi"},
		},
		{
			"class tag",
			"Point{x=1,y=2}",
			map[string]any{xdl.ClassKey: "Point", "x": int64(1), "y": int64(2)},
		},
		{
			"comments between tokens",
			"/* head */ {a=1 // one\nb=[2,3] /* two */}",
			map[string]any{"a": int64(1), "b": []any{int64(2), int64(3)}},
		},
		{
			"bare root object",
			"name=\"x\"\nsize = 3",
			map[string]any{"name": "x", "size": int64(3)},
		},
		{
			"strict JSON",
			`{"a": {"b": [true, false, null]}}`,
			map[string]any{"a": map[string]any{"b": []any{true, false, nil}}},
		},
		{
			"last write wins",
			"{a=1,a=2}",
			map[string]any{"a": int64(2)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := xdl.Decode([]byte(tc.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, v.ToAny()); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestDecode_PreservesOrder(t *testing.T) {
	v, err := xdl.Decode([]byte("{b=1, a=2, c=[3, 2, 1]}"))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, v.Dict().Keys())
	require.Equal(t, "[3,2,1]", v.Get("c").String())
}

func TestDecode_ClassTag(t *testing.T) {
	v, err := xdl.Decode([]byte("Point{x=1,y=2}"))
	require.NoError(t, err)
	require.Equal(t, xdl.KindDict, v.Kind())
	require.Equal(t, "Point", v.Class())
	require.Equal(t, 3, v.Len())

	x, ok := v.Get("x").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), x)
}

func TestDecode_Infinity(t *testing.T) {
	v, err := xdl.Decode([]byte("[1e400, -1e400]"))
	require.NoError(t, err)

	f, ok := v.Index(0).AsFloat()
	require.True(t, ok)
	require.True(t, math.IsInf(f, 1))
	f, _ = v.Index(1).AsFloat()
	require.True(t, math.IsInf(f, -1))
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedErr string
	}{
		{"leading zero", "01", "xdl: parse error at line 1, column 2: invalid number: leading zero"},
		{"negative leading zero", "-01", "xdl: parse error at line 1, column 3: invalid number: leading zero"},
		{"missing value", "{x=}", "xdl: parse error at line 1, column 4: unexpected character '}'"},
		{"class without object", "Point 1", `xdl: parse error at line 1, column 7: expected '{' after class name "Point", got '1'`},
		{"bad escape", `"\x"`, `xdl: parse error at line 1, column 3: invalid escape sequence \x`},
		{"error on second line", "[\n  1,,\n]", "xdl: parse error at line 2, column 5: unexpected character ','"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := xdl.Decode([]byte(tc.input))
			require.True(t, v.IsNone())
			require.EqualError(t, err, tc.expectedErr)

			var perr *xdl.ParseError
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestDecodeSentinels(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", xdl.ErrNoValue},
		{"only comments", "  // nothing here\n/* or here */", xdl.ErrNoValue},
		{"two roots", "1 2", xdl.ErrMultipleValues},
		{"open array", "[1,", xdl.ErrIncomplete},
		{"open string", `"abc`, xdl.ErrIncomplete},
		{"open object", "{x=1", xdl.ErrIncomplete},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := xdl.Decode([]byte(tc.input))
			require.True(t, v.IsNone())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeString(t *testing.T) {
	require.Equal(t, `["a",N]`, xdl.DecodeString(`["a", false]`).String())
	require.True(t, xdl.DecodeString("{x=}").IsNone())
}

func TestDecode_MaxDepth(t *testing.T) {
	_, err := xdl.Decode([]byte("[[1]]"), xdl.MaxDepth(2))
	require.NoError(t, err)

	_, err = xdl.Decode([]byte("[[[1]]]"), xdl.MaxDepth(2))
	require.ErrorContains(t, err, "maximum nesting depth of 2 exceeded")

	_, err = xdl.Decode([]byte("1"), xdl.MaxDepth(0))
	require.EqualError(t, err, "xdl: max depth must be a positive integer")
}

func TestParser(t *testing.T) {
	p, err := xdl.NewParser()
	require.NoError(t, err)

	p.FeedString(`{na`)
	p.Feed([]byte(`me="he`))
	require.True(t, p.Value().IsNone())
	require.ErrorIs(t, p.Err(), xdl.ErrIncomplete)

	p.FeedString(`llo"}`)
	v, err := p.Close()
	require.NoError(t, err)
	require.Equal(t, `{name="hello"}`, v.String())
	require.Equal(t, v, p.Value())

	p.Reset()
	p.FeedString("[Y]")
	v, err = p.Close()
	require.NoError(t, err)
	require.Equal(t, "[Y]", v.String())
}

func TestParser_StopsAtFirstError(t *testing.T) {
	p, err := xdl.NewParser()
	require.NoError(t, err)

	p.FeedString("[1,}")
	p.FeedString("2]")
	_, err = p.Close()

	var perr *xdl.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 3, perr.Offset)
	require.Equal(t, 4, perr.Column)
}

// countingSink counts events without building a tree.
type countingSink struct {
	objects, arrays, props, scalars int
	classes                         []string
}

func (s *countingSink) BeginArray() { s.arrays++ }
func (s *countingSink) EndArray()   {}
func (s *countingSink) BeginObject(class string) {
	s.objects++
	if class != "" {
		s.classes = append(s.classes, class)
	}
}
func (s *countingSink) EndObject()      {}
func (s *countingSink) Property(string) { s.props++ }
func (s *countingSink) Int(int64)       { s.scalars++ }
func (s *countingSink) Float(float64)   { s.scalars++ }
func (s *countingSink) String(string)   { s.scalars++ }
func (s *countingSink) Bool(bool)       { s.scalars++ }
func (s *countingSink) Null()           { s.scalars++ }

func TestEventParser(t *testing.T) {
	s := &countingSink{}
	p := xdl.NewEventParser(s)
	p.Feed([]byte(`[Vec{x=1,y=2}, {"n": null}, "s"]`))
	require.NoError(t, p.Close())

	require.Equal(t, 1, s.arrays)
	require.Equal(t, 2, s.objects)
	require.Equal(t, 3, s.props)
	require.Equal(t, 4, s.scalars)
	require.Equal(t, []string{"Vec"}, s.classes)

	p = xdl.NewEventParser(&countingSink{})
	p.Feed([]byte("[1"))
	require.ErrorIs(t, p.Close(), xdl.ErrIncomplete)
}

func TestDecoder(t *testing.T) {
	input := `Config{name="a long enough string to span reads", values=[1.5, 2.5, 3.5]}`

	v, err := xdl.NewDecoder(iotest.OneByteReader(strings.NewReader(input))).Decode()
	require.NoError(t, err)
	require.Equal(t, "Config", v.Class())
	require.Equal(t, 3, v.Get("values").Len())

	_, err = xdl.NewDecoder(iotest.ErrReader(errors.New("boom"))).Decode()
	require.EqualError(t, err, "xdl: read: boom")

	_, err = xdl.NewDecoder(nil).Decode()
	require.Error(t, err)
}

func BenchmarkDecode(b *testing.B) {
	benchmarkXDLInput := testutil.LargeDocument()

	b.ReportAllocs()
	b.SetBytes(int64(len(benchmarkXDLInput)))

	r := bytes.NewReader(benchmarkXDLInput)

	for b.Loop() {
		r.Reset(benchmarkXDLInput)
		if _, err := xdl.NewDecoder(r).Decode(); err != nil {
			b.Fatalf("Decode failed during benchmark: %v", err)
		}
	}
}
