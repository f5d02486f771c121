package xdl

import (
	"io"

	"github.com/KimNorgaard/go-xdl/internal/formatter"
	"github.com/KimNorgaard/go-xdl/internal/token"
)

const (
	// Arrays longer than this are split over several lines when pretty.
	inlineArrayMax = 10
	// Scalars per line in a multi-line array.
	arrayLineItems = 16
)

// Encoder writes XDL or JSON values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
	es   *encodeState
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the encoding of v to the stream. The output buffer is
// reused between calls.
func (e *Encoder) Encode(v Value) error {
	if e.es == nil {
		o, err := applyOptions(e.opts)
		if err != nil {
			return err
		}
		e.es = newEncodeState(o)
	}
	e.es.f.Reset()
	e.es.encode(v)
	_, err := e.w.Write(e.es.f.Bytes())
	return err
}

// Encode returns the XDL encoding of v, or JSON with the JSON option.
// The only possible error comes from an invalid option.
func Encode(v Value, opts ...Option) ([]byte, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	es := newEncodeState(o)
	es.encode(v)
	return es.f.Bytes(), nil
}

// EncodeXDL returns the XDL encoding of v.
func EncodeXDL(v Value, pretty bool) []byte {
	return newEncodeState(options{pretty: pretty}).run(v)
}

// EncodeJSON returns the JSON encoding of v. Infinite floats are
// written as 1e400 and -1e400, which strict JSON readers reject.
func EncodeJSON(v Value, pretty bool) []byte {
	return newEncodeState(options{pretty: pretty, json: true}).run(v)
}

type encodeState struct {
	f      *formatter.Formatter
	pretty bool
}

func newEncodeState(o options) *encodeState {
	return &encodeState{f: formatter.New(o.json, o.indent), pretty: o.pretty}
}

func (e *encodeState) run(v Value) []byte {
	e.encode(v)
	return e.f.Bytes()
}

func (e *encodeState) encode(v Value) {
	switch v.kind {
	case KindInt:
		e.f.Int(v.i)
	case KindFloat:
		if v.single {
			e.f.Float32(float32(v.f))
		} else {
			e.f.Float(v.f)
		}
	case KindString:
		e.f.String(v.s)
	case KindBool:
		e.f.Bool(v.b)
	case KindArray:
		e.encodeArray(v.arr)
	case KindDict:
		e.encodeDict(v.dict)
	default:
		e.f.Null()
	}
}

func (e *encodeState) encodeArray(items []Value) {
	e.f.BeginArray()
	n := len(items)
	nested := n > 0 && items[0].IsContainer()
	multi := e.pretty && (n > inlineArrayMax || nested)
	if multi {
		e.f.Indent()
		e.f.Newline()
	}
	for i, item := range items {
		if i > 0 {
			if multi && (nested || i%arrayLineItems == 0) {
				// XDL accepts the line break alone as a separator.
				if e.f.JSON() {
					e.f.Separator()
				}
				e.f.Newline()
			} else {
				e.f.Separator()
			}
		}
		e.encode(item)
	}
	if multi {
		e.f.Dedent()
		e.f.Newline()
	}
	e.f.EndArray()
}

func (e *encodeState) encodeDict(d *Dict) {
	class, tagged := d.classTag()
	// A tag that is not a bare word cannot precede '{' in XDL; it is
	// then written as an ordinary property.
	if tagged && (class == "" || (!e.f.JSON() && !isClassName(class))) {
		tagged = false
	}
	if !tagged {
		class = ""
	}
	e.f.BeginObject(class)

	count := 0
	if tagged && e.f.JSON() {
		count = 1
	}
	e.f.Indent()
	for name, value := range d.All() {
		if value.kind == KindNone || (tagged && name == ClassKey) {
			continue
		}
		switch {
		case e.pretty:
			if e.f.JSON() && count > 0 {
				e.f.Separator()
			}
			e.f.Newline()
		case count > 0:
			e.f.Separator()
		}
		count++
		e.f.Property(name)
		e.encode(value)
	}
	e.f.Dedent()
	if e.pretty {
		e.f.Newline()
	}
	e.f.EndObject()
}

// isClassName reports whether s can be written before '{' and read back
// as a class tag rather than a keyword.
func isClassName(s string) bool {
	return token.IsBareName(s) && token.LookupIdent(s) == token.IDENT
}

// classTag returns the class tag stored under ClassKey, if it is a string.
func (d *Dict) classTag() (string, bool) {
	v, ok := d.Get(ClassKey)
	if !ok || v.kind != KindString {
		return "", false
	}
	return v.s, true
}
