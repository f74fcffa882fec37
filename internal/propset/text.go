package propset

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/propfilter/internal/propval"
	"github.com/roach88/propfilter/internal/units"
)

// Parse parses name=literal pairs separated by ';'. Surrounding whitespace,
// empty segments and a trailing ';' are allowed; the empty string is the
// empty set. Quoted text may contain ';' and '='.
//
// Malformed entries and duplicate names yield *propval.ParseError with a
// position relative to text. Unknown unit names yield
// *units.UnknownUnitError.
func Parse(text string, tbl *units.Table) (Set, error) {
	s := Set{values: make(map[string]propval.Value)}

	segments, err := split(text)
	if err != nil {
		return Set{}, err
	}
	for _, seg := range segments {
		body := text[seg.start:seg.end]
		if strings.TrimSpace(body) == "" {
			continue
		}
		fail := func(off int, msg string) error {
			return &propval.ParseError{Input: text, Pos: seg.start + off, Message: msg}
		}

		eq := strings.IndexByte(body, '=')
		if eq < 0 {
			return Set{}, fail(0, fmt.Sprintf("expected name=value, got %q", strings.TrimSpace(body)))
		}
		name := strings.TrimSpace(body[:eq])
		if !ValidName(name) {
			return Set{}, fail(0, fmt.Sprintf("invalid property name %q", name))
		}
		if s.Has(name) {
			return Set{}, fail(0, fmt.Sprintf("duplicate property %q", name))
		}

		v, err := propval.Parse(body[eq+1:], tbl)
		if err != nil {
			var pe *propval.ParseError
			if errors.As(err, &pe) {
				return Set{}, fail(eq+1+pe.Pos, pe.Message)
			}
			return Set{}, fmt.Errorf("property %q: %w", name, err)
		}
		s.names = append(s.names, name)
		s.values[name] = v
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, tbl *units.Table) Set {
	s, err := Parse(text, tbl)
	if err != nil {
		panic(err)
	}
	return s
}

// Format renders s as text accepted by Parse, in insertion order.
func (s Set) Format(tbl *units.Table) (string, error) {
	var b strings.Builder
	for i, name := range s.names {
		lit, err := propval.Format(s.values[name], tbl)
		if err != nil {
			return "", fmt.Errorf("property %q: %w", name, err)
		}
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(lit)
	}
	return b.String(), nil
}

// ValidName reports whether name is a property name: one or more
// '.'-separated segments, each starting with a letter or '_' and
// continuing with letters, digits or '_'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return false
		}
		for i, r := range seg {
			switch {
			case r == '_' || unicode.IsLetter(r):
			case i > 0 && unicode.IsDigit(r):
			default:
				return false
			}
		}
	}
	return true
}

type span struct{ start, end int }

// split cuts text at ';' outside quoted literals.
func split(text string) ([]span, error) {
	var (
		out     []span
		start   int
		inQuote bool
		quoteAt int
	)
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		switch {
		case inQuote && r == '\\':
			w++
		case r == '"':
			inQuote = !inQuote
			quoteAt = i
		case r == ';' && !inQuote:
			out = append(out, span{start, i})
			start = i + 1
		}
		i += w
	}
	if inQuote {
		return nil, &propval.ParseError{Input: text, Pos: quoteAt, Message: "unterminated text literal"}
	}
	return append(out, span{start, len(text)}), nil
}
