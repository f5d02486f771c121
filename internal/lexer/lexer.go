package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/KimNorgaard/go-xdl/internal/token"
)

type state uint8

const (
	stateWaitValue state = iota
	stateWaitSep
	stateMinus
	stateInt
	stateNumberDot
	stateNumber
	stateNumberE
	stateNumberES
	stateNumberEV
	stateString
	stateEscape
	stateUnicode
	stateIdentifier
	stateWaitProperty
	stateProperty
	stateQProperty
	stateWaitEqual
	stateWaitObj
	stateErr
)

type context uint8

const (
	ctxRoot context = iota
	ctxArray
	ctxObject
	ctxBareObject // name=value lines at the root without braces
)

type comment uint8

const (
	noComment comment = iota
	commentOpen       // saw '/'
	commentLine
	commentBlock
	commentBlockEnd // saw '*' inside a block comment
)

// Error describes the first malformed byte seen by the lexer.
type Error struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Lexer is the XDL/JSON state machine. Bytes are fed in one chunk at a
// time; completed tokens are reported to a token.Sink.
type Lexer struct {
	sink     token.Sink
	state    state
	ctx      []context
	comment  comment
	inKey    bool // the current escape belongs to a quoted property name
	buf      []byte
	uni      [4]byte
	nuni     int
	maxDepth int

	offset int
	line   int
	column int
	err    *Error
}

// New creates and returns a new Lexer reporting to sink.
func New(sink token.Sink) *Lexer {
	l := &Lexer{sink: sink}
	l.Reset()
	return l
}

// Reset discards all state so the lexer can decode a new document.
func (l *Lexer) Reset() {
	l.state = stateWaitValue
	l.ctx = append(l.ctx[:0], ctxRoot)
	l.comment = noComment
	l.inKey = false
	l.buf = l.buf[:0]
	l.nuni = 0
	l.offset = 0
	l.line = 1
	l.column = 0
	l.err = nil
}

// SetMaxDepth limits container nesting. Zero means unlimited.
func (l *Lexer) SetMaxDepth(n int) {
	l.maxDepth = n
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() *Error {
	return l.err
}

// Complete reports whether the lexer is between root values, that is
// not inside a token, container or comment.
func (l *Lexer) Complete() bool {
	return l.state == stateWaitValue && l.top() == ctxRoot && l.comment == noComment
}

// Feed consumes p. Tokens and comments may span successive calls.
func (l *Lexer) Feed(p []byte) {
	feed(l, p)
}

// FeedString is like Feed but takes a string.
func (l *Lexer) FeedString(s string) {
	feed(l, s)
}

func feed[T string | []byte](l *Lexer, p T) {
	for i := 0; i < len(p) && l.state != stateErr; {
		c := p[i]
		if l.skipComment(c) || l.step(c) {
			l.advance(c)
			i++
		}
	}
}

// Close terminates the input. A line comment ends at end of input, a
// pending number or keyword is flushed, and an implicit root object is
// closed.
func (l *Lexer) Close() {
	if l.state == stateErr {
		return
	}
	switch l.comment {
	case commentLine:
		l.comment = noComment
	case commentOpen, commentBlock, commentBlockEnd:
		l.fail("unterminated comment")
		return
	}
	l.FeedString(" ")
	if l.state == stateErr {
		return
	}
	if l.top() == ctxBareObject && (l.state == stateWaitSep || l.state == stateWaitProperty) {
		l.pop()
		l.sink.EndObject()
		l.valueEnd()
	}
}

func (l *Lexer) advance(c byte) {
	l.offset++
	if c == '\n' {
		l.line++
		l.column = 0
		return
	}
	l.column++
}

func (l *Lexer) fail(format string, args ...any) {
	l.state = stateErr
	l.err = &Error{
		Message: fmt.Sprintf(format, args...),
		Offset:  l.offset,
		Line:    l.line,
		Column:  l.column + 1,
	}
}

func (l *Lexer) unexpected(c byte) {
	l.fail("unexpected character %q", c)
}

func (l *Lexer) top() context {
	return l.ctx[len(l.ctx)-1]
}

func (l *Lexer) push(c context) {
	if l.maxDepth > 0 && len(l.ctx) > l.maxDepth {
		l.fail("maximum nesting depth of %d exceeded", l.maxDepth)
		return
	}
	l.ctx = append(l.ctx, c)
}

func (l *Lexer) pop() {
	l.ctx = l.ctx[:len(l.ctx)-1]
}

// valueEnd is called after every completed value.
func (l *Lexer) valueEnd() {
	if l.top() == ctxRoot {
		l.state = stateWaitValue
	} else {
		l.state = stateWaitSep
	}
	l.buf = l.buf[:0]
}

func (l *Lexer) inText() bool {
	switch l.state {
	case stateString, stateEscape, stateUnicode, stateQProperty:
		return true
	}
	return false
}

// skipComment reports whether c was swallowed by comment handling.
func (l *Lexer) skipComment(c byte) bool {
	switch l.comment {
	case commentOpen:
		switch c {
		case '/':
			l.comment = commentLine
		case '*':
			l.comment = commentBlock
		default:
			l.fail("unexpected character %q after '/'", c)
		}
		return true
	case commentLine:
		if c == '\n' || c == '\r' {
			// The line break still separates values.
			l.comment = noComment
			return false
		}
		return true
	case commentBlock:
		if c == '*' {
			l.comment = commentBlockEnd
		}
		return true
	case commentBlockEnd:
		switch c {
		case '/':
			l.comment = noComment
		case '*':
		default:
			l.comment = commentBlock
		}
		return true
	}
	if c == '/' && !l.inText() {
		l.comment = commentOpen
		return true
	}
	return false
}

func isTerminator(c byte) bool {
	return c == ',' || c == ']' || c == '}' || token.IsSpace(c)
}

// step runs one transition. It returns false when c was not consumed
// and must be processed again in the new state.
func (l *Lexer) step(c byte) bool { //nolint:gocyclo
	switch l.state {
	case stateWaitValue:
		l.waitValue(c)
	case stateWaitSep:
		l.waitSep(c)
	case stateMinus:
		if !token.IsDigit(c) {
			l.fail("expected digit after '-', got %q", c)
			break
		}
		l.state = stateInt
		l.buf = append(l.buf, c)
	case stateInt:
		return l.integer(c)
	case stateNumberDot:
		if !token.IsDigit(c) {
			l.fail("expected digit after '.', got %q", c)
			break
		}
		l.state = stateNumber
		l.buf = append(l.buf, c)
	case stateNumber:
		switch {
		case token.IsDigit(c):
			l.buf = append(l.buf, c)
		case c == 'e' || c == 'E':
			l.state = stateNumberE
			l.buf = append(l.buf, c)
		case isTerminator(c):
			l.emitFloat()
			return false
		default:
			l.unexpected(c)
		}
	case stateNumberE:
		switch {
		case c == '-' || c == '+':
			l.state = stateNumberES
		case token.IsDigit(c):
			l.state = stateNumberEV
		default:
			l.fail("expected exponent, got %q", c)
			return true
		}
		l.buf = append(l.buf, c)
	case stateNumberES:
		if !token.IsDigit(c) {
			l.fail("expected exponent digit, got %q", c)
			break
		}
		l.state = stateNumberEV
		l.buf = append(l.buf, c)
	case stateNumberEV:
		switch {
		case token.IsDigit(c):
			l.buf = append(l.buf, c)
		case isTerminator(c):
			l.emitFloat()
			return false
		default:
			l.unexpected(c)
		}
	case stateString:
		switch c {
		case '\\':
			l.inKey = false
			l.state = stateEscape
		case '"':
			l.sink.String(string(l.buf))
			l.valueEnd()
		default:
			l.buf = append(l.buf, c)
		}
	case stateQProperty:
		switch c {
		case '\\':
			l.inKey = true
			l.state = stateEscape
		case '"':
			l.sink.Property(string(l.buf))
			l.buf = l.buf[:0]
			l.state = stateWaitEqual
		default:
			l.buf = append(l.buf, c)
		}
	case stateEscape:
		l.escape(c)
	case stateUnicode:
		l.unicode(c)
	case stateProperty:
		switch {
		case token.IsNameChar(c):
			l.buf = append(l.buf, c)
		case c == '=' || c == ':' || token.IsSpace(c):
			l.sink.Property(string(l.buf))
			l.buf = l.buf[:0]
			l.state = stateWaitEqual
			return false
		default:
			l.fail("unexpected character %q in property name", c)
		}
	case stateWaitEqual:
		switch {
		case c == '=' || c == ':':
			l.state = stateWaitValue
		case !token.IsSpace(c):
			l.fail("expected '=' or ':' after property name, got %q", c)
		}
	case stateWaitProperty:
		switch {
		case token.IsIdentStart(c):
			l.state = stateProperty
			l.buf = append(l.buf, c)
		case c == '"':
			l.state = stateQProperty
		case c == '}' && l.top() == ctxObject:
			l.closeObject()
		case !token.IsSpace(c):
			l.unexpected(c)
		}
	case stateIdentifier:
		if token.IsIdentChar(c) {
			l.buf = append(l.buf, c)
			break
		}
		l.identifier()
		return false
	case stateWaitObj:
		switch {
		case c == '{':
			l.beginObject(string(l.buf))
		case (c == '=' || c == ':') && l.top() == ctxRoot:
			l.beginBareObject()
		case !token.IsSpace(c):
			l.fail("expected '{' after class name %q, got %q", l.buf, c)
		}
	}
	return true
}

func (l *Lexer) waitValue(c byte) {
	switch {
	case token.IsDigit(c):
		l.state = stateInt
		l.buf = append(l.buf, c)
	case c == '-':
		l.state = stateMinus
		l.buf = append(l.buf, c)
	case c == '"':
		l.state = stateString
	case c == '[':
		l.push(ctxArray)
		if l.state != stateErr {
			l.sink.BeginArray()
		}
	case c == '{':
		l.beginObject("")
	case c == ']' && l.top() == ctxArray:
		l.pop()
		l.sink.EndArray()
		l.valueEnd()
	case token.IsIdentStart(c):
		l.state = stateIdentifier
		l.buf = append(l.buf, c)
	case !token.IsSpace(c):
		l.unexpected(c)
	}
}

func (l *Lexer) waitSep(c byte) {
	switch {
	case c == ',' || c == '\n':
		if l.top() == ctxArray {
			l.state = stateWaitValue
		} else {
			l.state = stateWaitProperty
		}
	case c == '}' && l.top() == ctxObject:
		l.closeObject()
	case c == ']' && l.top() == ctxArray:
		l.pop()
		l.sink.EndArray()
		l.valueEnd()
	case !token.IsSpace(c):
		l.unexpected(c)
	}
}

func (l *Lexer) integer(c byte) bool {
	switch {
	case token.IsDigit(c):
		if n := len(l.buf); l.buf[n-1] == '0' && (n == 1 || (n == 2 && l.buf[0] == '-')) {
			l.fail("invalid number: leading zero")
			return true
		}
		l.buf = append(l.buf, c)
	case c == '.':
		l.state = stateNumberDot
		l.buf = append(l.buf, c)
	case c == 'e' || c == 'E':
		l.state = stateNumberE
		l.buf = append(l.buf, c)
	case isTerminator(c):
		l.emitInt()
		return false
	default:
		l.unexpected(c)
	}
	return true
}

func (l *Lexer) emitInt() {
	digits := l.buf
	neg := digits[0] == '-'
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= 9 {
		var n int64
		for _, d := range digits {
			n = n*10 + int64(d-'0')
		}
		if neg {
			n = -n
		}
		l.sink.Int(n)
		l.valueEnd()
		return
	}
	if n, err := strconv.ParseInt(string(l.buf), 10, 64); err == nil {
		l.sink.Int(n)
		l.valueEnd()
		return
	}
	l.emitFloat()
}

func (l *Lexer) emitFloat() {
	// strconv reports overflow with ErrRange and ±Inf, which is what
	// the 1e400 infinity literal relies on.
	f, err := strconv.ParseFloat(string(l.buf), 64)
	if err != nil && !isRangeError(err) {
		l.fail("invalid number %q", l.buf)
		return
	}
	l.sink.Float(f)
	l.valueEnd()
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func (l *Lexer) escapeDone() {
	if l.inKey {
		l.state = stateQProperty
	} else {
		l.state = stateString
	}
}

func (l *Lexer) escape(c byte) {
	switch c {
	case 'u':
		l.state = stateUnicode
		l.nuni = 0
		return
	case 'b', 'f', 'n', 'r', 't', '"', '\\', '/':
		l.buf = append(l.buf, unescape(c))
	default:
		l.fail("invalid escape sequence \\%c", c)
		return
	}
	l.escapeDone()
}

func (l *Lexer) unicode(c byte) {
	if !token.IsHex(c) {
		l.fail("invalid unicode escape: %q is not a hex digit", c)
		return
	}
	l.uni[l.nuni] = c
	l.nuni++
	if l.nuni < len(l.uni) {
		return
	}
	// Four digits always fit, only the Basic Multilingual Plane is reachable.
	r, _ := strconv.ParseUint(string(l.uni[:]), 16, 16)
	l.buf = utf8.AppendRune(l.buf, rune(r))
	l.escapeDone()
}

// identifier finishes a bare word in value position: a keyword or the
// class name of a tagged object.
func (l *Lexer) identifier() {
	switch token.LookupIdent(string(l.buf)) {
	case token.TRUE:
		l.sink.Bool(true)
		l.valueEnd()
	case token.FALSE:
		l.sink.Bool(false)
		l.valueEnd()
	case token.NULL:
		l.sink.Null()
		l.valueEnd()
	default:
		l.state = stateWaitObj
	}
}

func (l *Lexer) beginObject(class string) {
	l.push(ctxObject)
	if l.state == stateErr {
		return
	}
	l.sink.BeginObject(class)
	l.state = stateWaitProperty
	l.buf = l.buf[:0]
}

func (l *Lexer) beginBareObject() {
	l.push(ctxBareObject)
	if l.state == stateErr {
		return
	}
	l.sink.BeginObject("")
	l.sink.Property(string(l.buf))
	l.buf = l.buf[:0]
	l.state = stateWaitValue
}

func (l *Lexer) closeObject() {
	l.pop()
	l.sink.EndObject()
	l.valueEnd()
}

func unescape(ch byte) byte {
	switch ch {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return ch
}
