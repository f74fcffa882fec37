package filter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/roach88/propfilter/internal/amount"
	"github.com/roach88/propfilter/internal/units"
)

// ParseError reports malformed filter text. Pos is the byte offset in Input
// where the problem was detected. Err, when set, is the underlying cause,
// such as a *units.UnknownUnitError.
type ParseError struct {
	Input   string
	Pos     int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter %q: offset %d: %s: %v", e.Input, e.Pos, e.Message, e.Err)
	}
	return fmt.Sprintf("filter %q: offset %d: %s", e.Input, e.Pos, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Parse parses filter text, resolving unit names through tbl. Whitespace
// between tokens is ignored. Empty text yields the empty filter.
//
// Beyond syntax, Parse rejects relational clauses (>, >=, <, <=) that do not
// have exactly one non-range term, ranges bounded by null or text, and
// ranges whose bounds are amounts of different quantities.
func Parse(text string, tbl *units.Table) (*Filter, error) {
	p := &parser{
		input:  text,
		tokens: newLexer(text).tokenize(),
		table:  tbl,
	}
	clauses, err := p.parseFilter()
	if err != nil {
		return nil, err
	}
	f := &Filter{Text: text, Clauses: clauses}
	f.ID = idOf(f.String())
	return f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, tbl *units.Table) *Filter {
	f, err := Parse(text, tbl)
	if err != nil {
		panic(err)
	}
	return f
}

// parser is a recursive-descent parser over the token stream.
type parser struct {
	input  string
	tokens []token
	pos    int
	table  *units.Table
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokenEOF && tok.typ != tokenError {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// unexpected reports tok where something else was required. Lexer errors
// surface here with their own message.
func (p *parser) unexpected(tok token, want string) error {
	if tok.typ == tokenError {
		return p.errorf(tok.pos, "%s", tok.value)
	}
	return p.errorf(tok.pos, "expected %s, found %s", want, tok)
}

// Filter := Clause ('&' Clause)*
func (p *parser) parseFilter() ([]Clause, error) {
	if p.peek().typ == tokenEOF {
		return nil, nil
	}
	var clauses []Clause
	for {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)

		tok := p.advance()
		switch tok.typ {
		case tokenAmp:
			continue
		case tokenEOF:
			return clauses, nil
		default:
			return nil, p.unexpected(tok, "'&' or end of filter")
		}
	}
}

// Clause := PropertyName Operator RHS
func (p *parser) parseClause() (Clause, error) {
	name := p.advance()
	if name.typ != tokenIdent {
		return Clause{}, p.unexpected(name, "property name")
	}

	opTok := p.advance()
	op, ok := operatorOf(opTok.typ)
	if !ok {
		return Clause{}, p.unexpected(opTok, "operator")
	}

	c := Clause{Property: name.value, Operator: op, Pos: name.pos}

	// RHS := Term (',' Term)*
	for {
		t, err := p.parseTerm()
		if err != nil {
			return Clause{}, err
		}
		c.Terms = append(c.Terms, t)
		if p.peek().typ != tokenComma {
			break
		}
		p.advance()
	}

	if op.IsRelational() {
		if len(c.Terms) != 1 {
			return Clause{}, p.errorf(opTok.pos, "operator %s takes a single value, got %d", op, len(c.Terms))
		}
		if _, isRange := c.Terms[0].(Range); isRange {
			return Clause{}, p.errorf(opTok.pos, "operator %s cannot take a range", op)
		}
	}
	return c, nil
}

// Term := Literal | Literal '~' Literal | PropertyName
func (p *parser) parseTerm() (Term, error) {
	if tok := p.peek(); tok.typ == tokenIdent {
		p.advance()
		return PropertyRef{Name: tok.value}, nil
	}

	lowTok := p.peek()
	low, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if p.peek().typ != tokenTilde {
		return low, nil
	}
	p.advance()

	highTok := p.peek()
	high, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.checkBound(low, lowTok); err != nil {
		return nil, err
	}
	if err := p.checkBound(high, highTok); err != nil {
		return nil, err
	}
	if err := p.checkBounds(low, high, lowTok); err != nil {
		return nil, err
	}
	return Range{Low: low, High: high}, nil
}

func (p *parser) checkBound(lit Literal, tok token) error {
	switch lit.(type) {
	case NullLiteral:
		return p.errorf(tok.pos, "null cannot bound a range")
	case TextLiteral:
		return p.errorf(tok.pos, "text cannot bound a range")
	}
	return nil
}

func (p *parser) checkBounds(low, high Literal, tok token) error {
	la, lowIsAmount := low.(AmountLiteral)
	ha, highIsAmount := high.(AmountLiteral)
	switch {
	case lowIsAmount && highIsAmount:
		if lq, hq := la.Amount.Quantity(), ha.Amount.Quantity(); lq != hq {
			return p.errorf(tok.pos, "range bounds have different quantities (%s and %s)", lq, hq)
		}
	case lowIsAmount != highIsAmount:
		return p.errorf(tok.pos, "range bounds must both be integers or both be amounts")
	}
	return nil
}

// Literal := Integer | Number ':' UnitName | '"' Text '"' | 'null'
func (p *parser) parseLiteral() (Literal, error) {
	tok := p.advance()
	switch tok.typ {
	case tokenNull:
		return NullLiteral{}, nil
	case tokenString:
		return TextLiteral{Value: tok.value}, nil
	case tokenInt, tokenNumber:
		if p.peek().typ == tokenColon {
			p.advance()
			return p.parseAmount(tok)
		}
		if tok.typ == tokenNumber {
			return nil, p.errorf(tok.pos, "decimal number %s needs a unit (number:Unit)", tok.value)
		}
		n, err := strconv.ParseInt(tok.value, 10, 64)
		if err != nil {
			return nil, p.errorf(tok.pos, "integer %s out of range", tok.value)
		}
		return IntLiteral{Value: n}, nil
	default:
		return nil, p.unexpected(tok, "value")
	}
}

func (p *parser) parseAmount(num token) (Literal, error) {
	unitTok := p.advance()
	if unitTok.typ != tokenIdent {
		return nil, p.unexpected(unitTok, "unit name")
	}
	v, decimals, err := amount.ParseNumber(num.value)
	if err != nil {
		return nil, p.errorf(num.pos, "%v", err)
	}
	u, err := p.table.Lookup(unitTok.value)
	if err != nil {
		return nil, &ParseError{
			Input:   p.input,
			Pos:     unitTok.pos,
			Message: "unknown unit",
			Err:     err,
		}
	}
	return AmountLiteral{
		Amount:   amount.New(v, u, decimals),
		UnitName: unitTok.value,
	}, nil
}

func operatorOf(t tokenType) (Operator, bool) {
	switch t {
	case tokenEq:
		return Equal, true
	case tokenNotEq:
		return NotEqual, true
	case tokenGt:
		return Greater, true
	case tokenGtEq:
		return GreaterOrEqual, true
	case tokenLt:
		return Less, true
	case tokenLtEq:
		return LessOrEqual, true
	default:
		return 0, false
	}
}
