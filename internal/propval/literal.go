package propval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/propfilter/internal/amount"
	"github.com/roach88/propfilter/internal/units"
)

// Parse parses a single literal: an integer ("42"), an amount
// ("5.2:Meter") or quoted text ("\"abc\""). Unit names are resolved through
// tbl; a name missing from tbl yields *units.UnknownUnitError.
func Parse(text string, tbl *units.Table) (Value, error) {
	s := strings.TrimSpace(text)
	lead := strings.Index(text, s)
	fail := func(pos int, msg string) error {
		return &ParseError{Input: text, Pos: lead + pos, Message: msg}
	}

	if s == "" {
		return nil, fail(0, "empty literal")
	}

	if s[0] == '"' {
		str, n, err := Unquote(s)
		if err != nil {
			return nil, fail(n, err.Error())
		}
		if n != len(s) {
			return nil, fail(n, "unexpected text after closing quote")
		}
		return Text(str), nil
	}

	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		num, name := s[:i], s[i+1:]
		v, decimals, err := amount.ParseNumber(num)
		if err != nil {
			return nil, fail(0, err.Error())
		}
		if name == "" {
			return nil, fail(i+1, "missing unit name")
		}
		u, err := tbl.Lookup(name)
		if err != nil {
			return nil, err
		}
		return NewAmount(v, u, decimals), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if _, _, numErr := amount.ParseNumber(s); numErr == nil {
			return nil, fail(0, "decimal number "+strconv.Quote(s)+" needs a unit (number:Unit)")
		}
		return nil, fail(0, "invalid literal "+strconv.Quote(s))
	}
	return Integer(n), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string, tbl *units.Table) Value {
	v, err := Parse(text, tbl)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders v in literal syntax so that Parse(Format(v)) yields an equal
// value. Amount units are named through tbl; a unit tbl does not know yields
// *units.UnknownUnitError.
func Format(v Value, tbl *units.Table) (string, error) {
	switch v := v.(type) {
	case Integer:
		return v.String(), nil
	case Text:
		return Quote(string(v)), nil
	case Amount:
		name, ok := tbl.Name(v.Unit)
		if !ok {
			sym := ""
			if v.Unit != nil {
				sym = v.Unit.Symbol()
			}
			return "", &units.UnknownUnitError{Name: sym}
		}
		return amount.FormatNumber(v.Value, v.Decimals) + ":" + name, nil
	default:
		return "", fmt.Errorf("cannot format %T value", v)
	}
}

// Quote returns s as a quoted text literal, escaping '"' and '\'.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes the quoted literal at the start of s. It returns the
// decoded text and the number of bytes consumed, including both quotes. On
// error the returned count is the offset of the problem.
func Unquote(s string) (string, int, error) {
	if s == "" || s[0] != '"' {
		return "", 0, errors.New("expected '\"'")
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", i, errors.New("unterminated escape")
			}
			next := s[i+1]
			if next != '"' && next != '\\' {
				return "", i, errors.New("invalid escape \\" + string(next))
			}
			b.WriteByte(next)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return "", len(s), errors.New("unterminated text literal")
}
