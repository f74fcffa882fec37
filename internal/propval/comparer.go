package propval

import (
	"cmp"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/propfilter/internal/amount"
)

// DefaultEpsilon absorbs floating-point noise introduced by unit conversion.
const DefaultEpsilon = 1e-9

// DefaultComparer is the Comparer used when none is supplied.
var DefaultComparer = Comparer{Epsilon: DefaultEpsilon}

// Comparer controls equality and ordering of values.
//
// Amounts are compared after converting the second operand into the first
// operand's unit; magnitudes within Epsilon are equal. Text is compared after
// NFC normalization so that canonically equivalent strings match.
type Comparer struct {
	Epsilon float64
}

// Equal reports whether a and b hold the same value. Values of different
// kinds are never equal, and neither are amounts of different quantities.
func (c Comparer) Equal(a, b Value) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		return ok && a == b
	case Amount:
		b, ok := b.(Amount)
		return ok && amount.Equal(a.Amount, b.Amount, c.Epsilon)
	case Text:
		b, ok := b.(Text)
		return ok && norm.NFC.String(string(a)) == norm.NFC.String(string(b))
	default:
		return a == nil && b == nil
	}
}

// Compare orders a against b, returning -1, 0 or +1. Integers and amounts
// are ordered numerically. Any other combination yields ErrNotComparable;
// amounts of different quantities yield *units.IncompatibleQuantityError.
func (c Comparer) Compare(a, b Value) (int, error) {
	switch a := a.(type) {
	case Integer:
		if b, ok := b.(Integer); ok {
			return cmp.Compare(a, b), nil
		}
	case Amount:
		if b, ok := b.(Amount); ok {
			return amount.Compare(a.Amount, b.Amount, c.Epsilon)
		}
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrNotComparable, kindOf(a), kindOf(b))
}

func kindOf(v Value) string {
	if v == nil {
		return "absent"
	}
	return v.Kind().String()
}

// Equal reports whether a and b are equal under DefaultComparer.
func Equal(a, b Value) bool {
	return DefaultComparer.Equal(a, b)
}

// Compare orders a against b under DefaultComparer.
func Compare(a, b Value) (int, error) {
	return DefaultComparer.Compare(a, b)
}
