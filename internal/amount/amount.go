// Package amount provides Amount, a magnitude tied to a unit of measure.
package amount

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/roach88/propfilter/internal/units"
)

// Amount is a numeric magnitude in a unit, with the number of decimals to
// show when it is displayed. Amounts are values; copy them freely.
type Amount struct {
	Value    float64
	Unit     units.Unit
	Decimals int
}

// New creates an Amount. Negative decimal counts are clamped to zero.
func New(value float64, unit units.Unit, decimals int) Amount {
	return Amount{Value: value, Unit: unit, Decimals: max(decimals, 0)}
}

// Quantity returns the quantity of the amount's unit.
func (a Amount) Quantity() units.Quantity {
	if a.Unit == nil {
		return ""
	}
	return a.Unit.Quantity()
}

// ValueIn returns the amount's magnitude expressed in unit u.
func (a Amount) ValueIn(u units.Unit) (float64, error) {
	return units.Convert(a.Value, a.Unit, u)
}

// ConvertTo returns the amount expressed in unit u, keeping Decimals.
func (a Amount) ConvertTo(u units.Unit) (Amount, error) {
	v, err := a.ValueIn(u)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: v, Unit: u, Decimals: a.Decimals}, nil
}

// String renders the amount for humans, e.g. "5.2 m".
func (a Amount) String() string {
	num := FormatNumber(a.Value, a.Decimals)
	if a.Unit == nil || a.Unit.Symbol() == "" {
		return num
	}
	return num + " " + a.Unit.Symbol()
}

// Compare converts b into a's unit and compares magnitudes. Differences within
// epsilon compare as equal. Amounts of different quantities are not ordered
// and yield *units.IncompatibleQuantityError.
func Compare(a, b Amount, epsilon float64) (int, error) {
	bv, err := b.ValueIn(a.Unit)
	if err != nil {
		return 0, err
	}
	if math.Abs(a.Value-bv) <= epsilon {
		return 0, nil
	}
	return cmp.Compare(a.Value, bv), nil
}

// Equal reports whether a and b denote the same magnitude within epsilon.
// Amounts of different quantities are never equal.
func Equal(a, b Amount, epsilon float64) bool {
	c, err := Compare(a, b, epsilon)
	return err == nil && c == 0
}

// ParseNumber parses decimal text such as "5", "-1.25" or "5.0" and reports
// the number of digits after the decimal point ("5.0" has one).
func ParseNumber(s string) (float64, int, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", s)
	}
	v, _ := d.Float64()
	return v, max(int(-d.Exponent()), 0), nil
}

// FormatNumber renders v with at least decimals digits after the decimal
// point. Digits beyond decimals are kept so that ParseNumber(FormatNumber(v, n))
// yields v again.
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	d := decimal.NewFromFloat(v)
	if places := int(-d.Exponent()); places < decimals {
		return d.StringFixed(int32(decimals))
	}
	return d.String()
}
