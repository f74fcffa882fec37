package filter

import (
	"strings"

	"github.com/roach88/propfilter/internal/amount"
)

// MessageKey names a message template used by Describe.
type MessageKey string

// Message keys. Clause templates use {property} and {value}; MsgRange uses
// {low} and {high}.
const (
	MsgEqual          MessageKey = "equal"
	MsgNotEqual       MessageKey = "not_equal"
	MsgGreater        MessageKey = "greater"
	MsgGreaterOrEqual MessageKey = "greater_or_equal"
	MsgLess           MessageKey = "less"
	MsgLessOrEqual    MessageKey = "less_or_equal"
	MsgRange          MessageKey = "range"
	MsgOr             MessageKey = "or"
	MsgAnd            MessageKey = "and"
	MsgNull           MessageKey = "null"
)

// Messages maps message keys to templates.
type Messages map[MessageKey]string

// DefaultMessages returns English templates.
func DefaultMessages() Messages {
	return Messages{
		MsgEqual:          "{property} must be {value}",
		MsgNotEqual:       "{property} must not be {value}",
		MsgGreater:        "{property} must be greater than {value}",
		MsgGreaterOrEqual: "{property} must be at least {value}",
		MsgLess:           "{property} must be less than {value}",
		MsgLessOrEqual:    "{property} must be at most {value}",
		MsgRange:          "{low} to {high}",
		MsgOr:             " or ",
		MsgAnd:            "\n",
		MsgNull:           "empty",
	}
}

// Describer renders filters as human-readable text.
type Describer struct {
	// Messages holds the templates. Missing keys fall back to
	// DefaultMessages.
	Messages Messages

	// Properties maps property names to display labels.
	Properties map[string]string

	// Units maps unit names, as written in the filter, to display labels.
	Units map[string]string
}

// Describe renders f with DefaultMessages.
func Describe(f *Filter) string {
	return Describer{}.Describe(f)
}

// Describe renders one line per clause, joined by MsgAnd.
func (d Describer) Describe(f *Filter) string {
	if f.IsEmpty() {
		return ""
	}
	lines := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		lines[i] = d.clause(c)
	}
	return strings.Join(lines, d.msg(MsgAnd))
}

func (d Describer) clause(c Clause) string {
	values := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		values[i] = d.term(t)
	}
	return strings.NewReplacer(
		"{property}", d.property(c.Property),
		"{value}", strings.Join(values, d.msg(MsgOr)),
	).Replace(d.msg(clauseKey(c.Operator)))
}

func (d Describer) term(t Term) string {
	switch t := t.(type) {
	case Range:
		low := d.literal(t.Low)
		la, lok := t.Low.(AmountLiteral)
		ha, hok := t.High.(AmountLiteral)
		if lok && hok && la.UnitName == ha.UnitName {
			low = amount.FormatNumber(la.Amount.Value, la.Amount.Decimals)
		}
		return strings.NewReplacer(
			"{low}", low,
			"{high}", d.literal(t.High),
		).Replace(d.msg(MsgRange))
	case PropertyRef:
		return d.property(t.Name)
	case Literal:
		return d.literal(t)
	default:
		return ""
	}
}

func (d Describer) literal(l Literal) string {
	switch l := l.(type) {
	case AmountLiteral:
		num := amount.FormatNumber(l.Amount.Value, l.Amount.Decimals)
		return num + " " + d.unit(l.UnitName)
	case NullLiteral:
		return d.msg(MsgNull)
	default:
		return l.String()
	}
}

func (d Describer) property(name string) string {
	if label, ok := d.Properties[name]; ok {
		return label
	}
	return name
}

func (d Describer) unit(name string) string {
	if label, ok := d.Units[name]; ok {
		return label
	}
	return name
}

func (d Describer) msg(key MessageKey) string {
	if m, ok := d.Messages[key]; ok {
		return m
	}
	return defaultMessages[key]
}

var defaultMessages = DefaultMessages()

func clauseKey(op Operator) MessageKey {
	switch op {
	case NotEqual:
		return MsgNotEqual
	case Greater:
		return MsgGreater
	case GreaterOrEqual:
		return MsgGreaterOrEqual
	case Less:
		return MsgLess
	case LessOrEqual:
		return MsgLessOrEqual
	default:
		return MsgEqual
	}
}
