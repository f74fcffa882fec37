package propval

import (
	"strconv"

	"github.com/roach88/propfilter/internal/amount"
	"github.com/roach88/propfilter/internal/units"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindInteger Kind = iota + 1
	KindAmount
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindAmount:
		return "amount"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a sealed interface representing a property value.
type Value interface {
	Kind() Kind
	String() string
	value() // Sealed - only Integer, Amount and Text implement it
}

// Integer is an integer property value.
type Integer int64

func (Integer) value()     {}
func (Integer) Kind() Kind { return KindInteger }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

// Amount is a physical-quantity property value.
type Amount struct {
	amount.Amount
}

func (Amount) value()     {}
func (Amount) Kind() Kind { return KindAmount }

// Text is a free-text property value.
type Text string

func (Text) value()     {}
func (Text) Kind() Kind { return KindText }

// String returns the quoted literal form.
func (v Text) String() string { return quote(string(v)) }

// NewInteger creates an Integer value.
func NewInteger(n int64) Integer {
	return Integer(n)
}

// NewAmount creates an Amount value.
func NewAmount(value float64, unit units.Unit, decimals int) Amount {
	return Amount{Amount: amount.New(value, unit, decimals)}
}

// FromAmount wraps an existing amount.
func FromAmount(a amount.Amount) Amount {
	return Amount{Amount: a}
}

// NewText creates a Text value.
func NewText(s string) Text {
	return Text(s)
}
