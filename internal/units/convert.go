package units

import (
	"fmt"
	"math"
)

// Convert converts value from one unit to another of the same quantity.
//
// Both units are reduced to base-unit terms by walking their converter
// chains; the value is mapped into base terms through from and back out
// through the inverse of to. Converting between equal units returns value
// unchanged.
func Convert(value float64, from, to Unit) (float64, error) {
	c, err := ConverterBetween(from, to)
	if err != nil {
		return 0, err
	}
	return c.Convert(value), nil
}

// ConverterBetween returns the converter mapping values in from to values in
// to. It fails with *IncompatibleQuantityError if the quantities differ.
func ConverterBetween(from, to Unit) (Converter, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("convert: nil unit")
	}
	if from.Quantity() != to.Quantity() {
		return nil, &IncompatibleQuantityError{From: from.Quantity(), To: to.Quantity()}
	}
	if Equal(from, to) {
		return Identity{}, nil
	}
	fromBase, err := toBase(from)
	if err != nil {
		return nil, err
	}
	toBaseConv, err := toBase(to)
	if err != nil {
		return nil, err
	}
	return compose(fromBase, toBaseConv.Inverse()), nil
}

// toBase returns the converter from u's scale to base-unit terms.
func toBase(u Unit) (Converter, error) {
	switch u := u.(type) {
	case Base:
		return Identity{}, nil
	case Alternate:
		parent, err := toBase(u.parent)
		if err != nil {
			return nil, err
		}
		return compose(u.converter, parent), nil
	case Product:
		factor := 1.0
		for _, e := range u.elements {
			c, err := toBase(e.Unit)
			if err != nil {
				return nil, err
			}
			if !c.IsLinear() {
				return nil, fmt.Errorf("%w: %s in %s", ErrNonLinearProduct, e.Unit.Symbol(), u.Symbol())
			}
			f, _ := c.coefficients()
			factor *= math.Pow(f, float64(e.Pow))
		}
		return newConverter(factor, 0), nil
	default:
		return nil, fmt.Errorf("unsupported unit type: %T", u)
	}
}
