package filter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenType identifies a lexer token.
type tokenType uint8

const (
	tokenEOF tokenType = iota
	tokenError

	// Literals
	tokenInt    // 42, -1
	tokenNumber // 5.2, -0.5
	tokenString // "quoted"
	tokenNull   // null
	tokenIdent  // a, b.c, Meter

	// Operators
	tokenEq    // =
	tokenNotEq // !=
	tokenGt    // >
	tokenGtEq  // >=
	tokenLt    // <
	tokenLtEq  // <=

	// Separators
	tokenAmp   // &
	tokenComma // ,
	tokenTilde // ~
	tokenColon // :
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of filter"
	case tokenError:
		return "error"
	case tokenInt:
		return "integer"
	case tokenNumber:
		return "number"
	case tokenString:
		return "text"
	case tokenNull:
		return "null"
	case tokenIdent:
		return "name"
	case tokenEq:
		return "'='"
	case tokenNotEq:
		return "'!='"
	case tokenGt:
		return "'>'"
	case tokenGtEq:
		return "'>='"
	case tokenLt:
		return "'<'"
	case tokenLtEq:
		return "'<='"
	case tokenAmp:
		return "'&'"
	case tokenComma:
		return "','"
	case tokenTilde:
		return "'~'"
	case tokenColon:
		return "':'"
	default:
		return "unknown"
	}
}

// token is a lexeme with its byte offset in the filter text. For strings,
// value holds the decoded text.
type token struct {
	typ   tokenType
	value string
	pos   int
}

func (t token) String() string {
	if t.value == "" {
		return t.typ.String()
	}
	return fmt.Sprintf("%s %q", t.typ, t.value)
}

// lexer splits filter text into tokens.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// tokenize returns all tokens up to and including tokenEOF, or stops at the
// first tokenError.
func (l *lexer) tokenize() []token {
	var tokens []token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.typ == tokenEOF || tok.typ == tokenError {
			return tokens
		}
	}
}

func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: l.pos}
	}

	start := l.pos
	c := l.input[l.pos]
	switch c {
	case '&':
		l.pos++
		return token{typ: tokenAmp, value: "&", pos: start}
	case ',':
		l.pos++
		return token{typ: tokenComma, value: ",", pos: start}
	case '~':
		l.pos++
		return token{typ: tokenTilde, value: "~", pos: start}
	case ':':
		l.pos++
		return token{typ: tokenColon, value: ":", pos: start}
	case '=':
		l.pos++
		return token{typ: tokenEq, value: "=", pos: start}
	case '!':
		if l.peekByte(1) == '=' {
			l.pos += 2
			return token{typ: tokenNotEq, value: "!=", pos: start}
		}
		return l.errorf(start, "unexpected '!' (did you mean '!='?)")
	case '>':
		if l.peekByte(1) == '=' {
			l.pos += 2
			return token{typ: tokenGtEq, value: ">=", pos: start}
		}
		l.pos++
		return token{typ: tokenGt, value: ">", pos: start}
	case '<':
		if l.peekByte(1) == '=' {
			l.pos += 2
			return token{typ: tokenLtEq, value: "<=", pos: start}
		}
		l.pos++
		return token{typ: tokenLt, value: "<", pos: start}
	case '"':
		return l.lexString()
	}

	if c == '-' || c == '+' || isDigit(c) {
		return l.lexNumber()
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == '_' || unicode.IsLetter(r) {
		return l.lexIdent()
	}
	return l.errorf(start, "unexpected character %q", r)
}

func (l *lexer) lexNumber() token {
	start := l.pos
	if c := l.input[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	digits := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == digits {
		return l.errorf(start, "expected digits after sign")
	}
	typ := tokenInt
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		frac := l.pos
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		if l.pos == frac {
			return l.errorf(start, "expected digits after decimal point")
		}
		typ = tokenNumber
	}
	return token{typ: typ, value: l.input[start:l.pos], pos: start}
}

func (l *lexer) lexString() token {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{typ: tokenString, value: b.String(), pos: start}
		case '\\':
			next := l.peekByte(1)
			if next != '"' && next != '\\' {
				return l.errorf(l.pos, "invalid escape in text")
			}
			b.WriteByte(next)
			l.pos += 2
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return l.errorf(start, "unterminated text")
}

// lexIdent reads a name. Dots join segments; each segment must start with a
// letter or '_'.
func (l *lexer) lexIdent() token {
	start := l.pos
	segStart := true
	for l.pos < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case r == '.':
			if segStart {
				return l.errorf(l.pos, "empty name segment")
			}
			segStart = true
		case r == '_' || unicode.IsLetter(r):
			segStart = false
		case unicode.IsDigit(r):
			if segStart {
				return l.errorf(l.pos, "name segment must start with a letter")
			}
		default:
			return l.ident(start)
		}
		l.pos += w
	}
	return l.ident(start)
}

func (l *lexer) ident(start int) token {
	name := l.input[start:l.pos]
	if strings.HasSuffix(name, ".") {
		return l.errorf(l.pos-1, "empty name segment")
	}
	if name == "null" {
		return token{typ: tokenNull, value: name, pos: start}
	}
	return token{typ: tokenIdent, value: name, pos: start}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += w
	}
}

func (l *lexer) peekByte(offset int) byte {
	if i := l.pos + offset; i < len(l.input) {
		return l.input[i]
	}
	return 0
}

func (l *lexer) errorf(pos int, format string, args ...any) token {
	l.pos = len(l.input)
	return token{typ: tokenError, value: fmt.Sprintf(format, args...), pos: pos}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
