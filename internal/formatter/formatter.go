package formatter

import (
	"math"
	"strconv"

	"github.com/KimNorgaard/go-xdl/internal/token"
)

const (
	defaultIndent = "\t"
	hexDigits     = "0123456789abcdef"
)

// Formatter renders sink events as XDL or JSON text into a growable
// buffer. Layout (line breaks, separators between items) is driven by
// the caller through Separator, Newline, Indent and Dedent.
type Formatter struct {
	buf    []byte
	json   bool
	indent string
	depth  int
}

// New returns a new formatter. An empty indent selects a tab.
func New(json bool, indent string) *Formatter {
	if indent == "" {
		indent = defaultIndent
	}
	return &Formatter{buf: make([]byte, 0, 512), json: json, indent: indent}
}

// Bytes returns the rendered output. The slice is only valid until the
// next write or Reset.
func (f *Formatter) Bytes() []byte { return f.buf }

// Reset empties the output buffer and indentation.
func (f *Formatter) Reset() {
	f.buf = f.buf[:0]
	f.depth = 0
}

// JSON reports whether the formatter writes JSON instead of XDL.
func (f *Formatter) JSON() bool { return f.json }

func (f *Formatter) Separator() { f.buf = append(f.buf, ',') }

// Newline starts a new line at the current indentation.
func (f *Formatter) Newline() {
	f.buf = append(f.buf, '\n')
	for range f.depth {
		f.buf = append(f.buf, f.indent...)
	}
}

func (f *Formatter) Indent() { f.depth++ }
func (f *Formatter) Dedent() { f.depth-- }

func (f *Formatter) BeginArray() { f.buf = append(f.buf, '[') }
func (f *Formatter) EndArray()   { f.buf = append(f.buf, ']') }

// BeginObject opens a dictionary. In XDL mode the class is written
// before the brace; in JSON mode it becomes the first property.
func (f *Formatter) BeginObject(class string) {
	if !f.json {
		f.buf = append(f.buf, class...)
	}
	f.buf = append(f.buf, '{')
	if f.json && class != "" {
		f.buf = appendQuoted(f.buf, token.ClassKey)
		f.buf = append(f.buf, ':')
		f.buf = appendQuoted(f.buf, class)
	}
}

func (f *Formatter) EndObject() { f.buf = append(f.buf, '}') }

func (f *Formatter) Property(name string) {
	if f.json {
		f.buf = appendQuoted(f.buf, name)
		f.buf = append(f.buf, ':')
		return
	}
	if token.IsBareName(name) {
		f.buf = append(f.buf, name...)
	} else {
		f.buf = appendQuoted(f.buf, name)
	}
	f.buf = append(f.buf, '=')
}

func (f *Formatter) Int(v int64) { f.buf = strconv.AppendInt(f.buf, v, 10) }

// Float writes v with enough digits to round-trip a float64.
func (f *Formatter) Float(v float64) { f.buf = appendFloat(f.buf, v, 64) }

// Float32 writes v with enough digits to round-trip a float32.
func (f *Formatter) Float32(v float32) { f.buf = appendFloat(f.buf, float64(v), 32) }

func (f *Formatter) String(v string) { f.buf = appendQuoted(f.buf, v) }

func (f *Formatter) Bool(v bool) {
	switch {
	case f.json && v:
		f.buf = append(f.buf, "true"...)
	case f.json:
		f.buf = append(f.buf, "false"...)
	case v:
		f.buf = append(f.buf, 'Y')
	default:
		f.buf = append(f.buf, 'N')
	}
}

func (f *Formatter) Null() { f.buf = append(f.buf, "null"...) }

// appendFloat formats finite numbers with %.17g (%.9g for float32).
// NaN has no literal and becomes null; infinities become 1e400, which
// overflows back to ±Inf when decoded. Negative zero keeps its fraction.
func appendFloat(dst []byte, v float64, bitSize int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "null"...)
	case math.IsInf(v, 1):
		return append(dst, "1e400"...)
	case math.IsInf(v, -1):
		return append(dst, "-1e400"...)
	case v == 0 && math.Signbit(v):
		// "-0" would read back as the integer 0.
		return append(dst, "-0.0"...)
	}
	prec := 17
	if bitSize == 32 {
		prec = 9
	}
	return strconv.AppendFloat(dst, v, 'g', prec, bitSize)
}

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\b':
			dst = append(dst, '\\', 'b')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
