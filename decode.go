package xdl

import (
	"errors"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-xdl/internal/lexer"
	"github.com/KimNorgaard/go-xdl/internal/token"
)

// Sink receives decoding events. Implement it to consume XDL without
// building a Value tree, and drive it with an EventParser.
type Sink = token.Sink

// container is an array or dictionary under construction.
type container struct {
	dict  *Dict // nil for arrays
	items []Value
}

// builder is the Sink that materializes Values. Its stack starts with
// a root array that collects every top-level value.
type builder struct {
	stack []container
	props []string
}

func (b *builder) reset() {
	b.stack = append(b.stack[:0], container{})
	b.props = b.props[:0]
}

// put stores a completed value in the innermost open container.
func (b *builder) put(v Value) {
	top := &b.stack[len(b.stack)-1]
	if top.dict == nil {
		top.items = append(top.items, v)
		return
	}
	n := len(b.props) - 1
	top.dict.Set(b.props[n], v)
	b.props = b.props[:n]
}

func (b *builder) pop() container {
	n := len(b.stack) - 1
	c := b.stack[n]
	b.stack[n] = container{}
	b.stack = b.stack[:n]
	return c
}

func (b *builder) BeginArray() {
	b.stack = append(b.stack, container{items: []Value{}})
}

func (b *builder) EndArray() {
	c := b.pop()
	b.put(Value{kind: KindArray, arr: c.items})
}

func (b *builder) BeginObject(class string) {
	d := NewDict()
	if class != "" {
		d.Set(ClassKey, String(class))
	}
	b.stack = append(b.stack, container{dict: d})
}

func (b *builder) EndObject() {
	c := b.pop()
	b.put(Object(c.dict))
}

func (b *builder) Property(name string) { b.props = append(b.props, name) }
func (b *builder) Int(v int64)          { b.put(Int(v)) }
func (b *builder) Float(v float64)      { b.put(Float(v)) }
func (b *builder) String(v string)      { b.put(String(v)) }
func (b *builder) Bool(v bool)          { b.put(Bool(v)) }
func (b *builder) Null()                { b.put(Null()) }

// Parser decodes XDL or JSON text fed to it in one or more chunks.
// A Parser is not safe for concurrent use.
type Parser struct {
	b   builder
	lex *lexer.Lexer
}

// NewParser returns a Parser ready for input. Only MaxDepth applies
// to decoding; other options are accepted and ignored.
func NewParser(opts ...Option) (*Parser, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &Parser{}
	p.b.reset()
	p.lex = lexer.New(&p.b)
	p.lex.SetMaxDepth(o.maxDepth)
	return p, nil
}

// Feed consumes the next chunk of input. Tokens and comments may span
// chunks. After a syntax error further input is ignored.
func (p *Parser) Feed(data []byte) { p.lex.Feed(data) }

// FeedString is like Feed but takes a string.
func (p *Parser) FeedString(s string) { p.lex.FeedString(s) }

// Close marks the end of input and returns the decoded value, or None
// and an error.
func (p *Parser) Close() (Value, error) {
	p.lex.Close()
	if err := p.Err(); err != nil {
		return None(), err
	}
	return p.Value(), nil
}

// Value returns the root value once the input is complete. It returns
// None after a syntax error, in the middle of a value, when there is no
// value or when there is more than one.
func (p *Parser) Value() Value {
	if p.Err() != nil {
		return None()
	}
	return p.b.stack[0].items[0]
}

// Err reports why Value would return None, or nil.
func (p *Parser) Err() error {
	if e := p.lex.Err(); e != nil {
		return &ParseError{Message: e.Message, Offset: e.Offset, Line: e.Line, Column: e.Column}
	}
	if !p.lex.Complete() || len(p.b.stack) != 1 {
		return ErrIncomplete
	}
	switch n := len(p.b.stack[0].items); {
	case n == 0:
		return ErrNoValue
	case n > 1:
		return ErrMultipleValues
	}
	return nil
}

// Reset discards all state so the Parser can decode a new document.
func (p *Parser) Reset() {
	p.b.reset()
	p.lex.Reset()
}

// EventParser feeds input to a caller supplied Sink.
type EventParser struct {
	lex *lexer.Lexer
}

// NewEventParser returns an EventParser reporting to s.
func NewEventParser(s Sink) *EventParser {
	return &EventParser{lex: lexer.New(s)}
}

// Feed consumes the next chunk of input.
func (p *EventParser) Feed(data []byte) { p.lex.Feed(data) }

// Close marks the end of input. It returns a *ParseError for malformed
// input and ErrIncomplete when the input stopped inside a value.
func (p *EventParser) Close() error {
	p.lex.Close()
	if e := p.lex.Err(); e != nil {
		return &ParseError{Message: e.Message, Offset: e.Offset, Line: e.Line, Column: e.Column}
	}
	if !p.lex.Complete() {
		return ErrIncomplete
	}
	return nil
}

// Decode parses data and returns its root value. On failure it returns
// None together with a *ParseError, ErrIncomplete, ErrNoValue or
// ErrMultipleValues.
func Decode(data []byte, opts ...Option) (Value, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return None(), err
	}
	p.Feed(data)
	return p.Close()
}

// DecodeString parses s and returns its root value, or None if s is
// not a single well-formed XDL or JSON value.
func DecodeString(s string) Value {
	p, _ := NewParser()
	p.FeedString(s)
	v, _ := p.Close()
	return v
}

const readChunkSize = 32 * 1024

// Decoder reads and decodes one XDL value from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads r to the end in fixed-size chunks, feeding each to the
// parser as it arrives, and returns the root value.
func (d *Decoder) Decode() (Value, error) {
	if d.r == nil {
		return None(), fmt.Errorf("xdl: Decode(nil reader)")
	}
	p, err := NewParser(d.opts...)
	if err != nil {
		return None(), err
	}
	buf := make([]byte, readChunkSize)
	for {
		n, err := d.r.Read(buf)
		p.Feed(buf[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return None(), fmt.Errorf("xdl: read: %w", err)
		}
		if p.lex.Err() != nil {
			break
		}
	}
	return p.Close()
}
