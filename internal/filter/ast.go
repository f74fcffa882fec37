package filter

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/propfilter/internal/amount"
	"github.com/roach88/propfilter/internal/propval"
)

// Namespace is the UUID namespace of filter IDs.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/propfilter/filter"))

// Filter is a parsed filter: the conjunction of its clauses. An empty filter
// holds for every set. Filters are immutable after construction.
type Filter struct {
	// ID identifies the filter by its canonical text. Filters that differ
	// only in whitespace share an ID.
	ID uuid.UUID

	// Text is the text the filter was parsed from.
	Text string

	Clauses []Clause
}

// New builds a filter from clauses. Text is set to the canonical form.
func New(clauses ...Clause) *Filter {
	f := &Filter{Clauses: clauses}
	f.Text = f.String()
	f.ID = idOf(f.Text)
	return f
}

func idOf(canonical string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(norm.NFC.String(canonical)))
}

// IsEmpty reports whether the filter has no clauses.
func (f *Filter) IsEmpty() bool {
	return f == nil || len(f.Clauses) == 0
}

// String returns the canonical filter text, without whitespace.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, "&")
}

// Properties returns the distinct property names the filter reads, on either
// side of a clause, in order of first use.
func (f *Filter) Properties() []string {
	if f == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, c := range f.Clauses {
		add(c.Property)
		for _, t := range c.Terms {
			if ref, ok := t.(PropertyRef); ok {
				add(ref.Name)
			}
		}
	}
	return out
}

// Clause compares one property against its terms.
type Clause struct {
	Property string
	Operator Operator
	Terms    []Term

	// Pos is the byte offset of the clause in the filter text.
	Pos int
}

func (c Clause) String() string {
	var b strings.Builder
	b.WriteString(c.Property)
	b.WriteString(c.Operator.String())
	for i, t := range c.Terms {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Operator is a clause comparison operator.
type Operator uint8

const (
	Equal Operator = iota + 1
	NotEqual
	Greater
	GreaterOrEqual
	Less
	LessOrEqual
)

func (o Operator) String() string {
	switch o {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	default:
		return "?"
	}
}

// IsRelational reports whether o orders values rather than testing
// membership. Relational clauses take exactly one non-range term.
func (o Operator) IsRelational() bool {
	return o >= Greater && o <= LessOrEqual
}

// Term is a sealed interface over the right-hand side of a clause: a
// Literal, a Range or a PropertyRef.
type Term interface {
	String() string
	term() // Sealed
}

// Literal is a sealed interface over IntLiteral, AmountLiteral, TextLiteral
// and NullLiteral.
type Literal interface {
	Term
	literal() // Sealed
}

// IntLiteral is an integer such as 42. Compared with an amount it is read
// in the amount's unit.
type IntLiteral struct {
	Value int64
}

// AmountLiteral is number:Unit. UnitName is the name the unit was given in
// the filter text.
type AmountLiteral struct {
	Amount   amount.Amount
	UnitName string
}

// TextLiteral is quoted text.
type TextLiteral struct {
	Value string
}

// NullLiteral is null, which matches only an absent property.
type NullLiteral struct{}

// Range is the inclusive interval Low~High.
type Range struct {
	Low  Literal
	High Literal
}

// PropertyRef is the value of another property in the same set.
type PropertyRef struct {
	Name string
}

func (IntLiteral) term()    {}
func (AmountLiteral) term() {}
func (TextLiteral) term()   {}
func (NullLiteral) term()   {}
func (Range) term()         {}
func (PropertyRef) term()   {}

func (IntLiteral) literal()    {}
func (AmountLiteral) literal() {}
func (TextLiteral) literal()   {}
func (NullLiteral) literal()   {}

func (l IntLiteral) String() string { return strconv.FormatInt(l.Value, 10) }

func (l AmountLiteral) String() string {
	return amount.FormatNumber(l.Amount.Value, l.Amount.Decimals) + ":" + l.UnitName
}

func (l TextLiteral) String() string { return propval.Quote(l.Value) }
func (NullLiteral) String() string   { return "null" }
func (r Range) String() string       { return r.Low.String() + "~" + r.High.String() }
func (r PropertyRef) String() string { return r.Name }

// literalValue returns the property value of lit. Integers compared with an
// amount take the amount's unit. NullLiteral has no value.
func literalValue(lit Literal, left propval.Value) propval.Value {
	switch lit := lit.(type) {
	case IntLiteral:
		if a, ok := left.(propval.Amount); ok {
			return propval.NewAmount(float64(lit.Value), a.Unit, 0)
		}
		return propval.NewInteger(lit.Value)
	case AmountLiteral:
		return propval.FromAmount(lit.Amount)
	case TextLiteral:
		return propval.NewText(lit.Value)
	default:
		return nil
	}
}
