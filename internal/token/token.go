package token

// Type is the type of a bare word recognized by the lexer.
type Type string

const (
	IDENT Type = "IDENT" // Point, Vec3, a class tag

	// Keywords
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

// ClassKey is the dictionary key holding the class tag of a tagged object.
const ClassKey = "_class"

var keywords = map[string]Type{
	"true":  TRUE,
	"Y":     TRUE,
	"false": FALSE,
	"N":     FALSE,
	"null":  NULL,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Sink receives decoding events. The lexer calls it only when a token
// is complete; the encoder calls it while walking a value tree.
type Sink interface {
	BeginArray()
	EndArray()
	// BeginObject starts a dictionary. class is empty for untagged objects.
	BeginObject(class string)
	EndObject()
	// Property announces the name of the next value inside an object.
	Property(name string)
	Int(v int64)
	Float(v float64)
	String(v string)
	Bool(v bool)
	Null()
}

// IsSpace reports whether ch is a separator-neutral whitespace byte.
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsDigit reports whether ch is an ASCII decimal digit.
func IsDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// IsAlnum reports whether ch is an ASCII letter or digit.
func IsAlnum(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || IsDigit(ch)
}

// IsIdentStart reports whether ch may start a bare identifier or property name.
func IsIdentStart(ch byte) bool {
	return IsAlnum(ch) || ch == '_' || ch == '$'
}

// IsNameChar reports whether ch may continue an unquoted property name.
func IsNameChar(ch byte) bool {
	return IsAlnum(ch) || ch == '_' || ch == '$'
}

// IsIdentChar reports whether ch may continue an identifier in value position.
func IsIdentChar(ch byte) bool {
	return IsAlnum(ch) || ch == '_'
}

// IsHex reports whether ch is an ASCII hexadecimal digit.
func IsHex(ch byte) bool {
	return IsDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// IsBareName reports whether s can be written without quotes as a
// property name or class tag: non-empty, not starting with a digit and
// made only of name characters.
func IsBareName(s string) bool {
	if s == "" || IsDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsIdentChar(s[i]) {
			return false
		}
	}
	return true
}
