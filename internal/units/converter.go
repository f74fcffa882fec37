package units

import (
	"fmt"
	"strconv"
)

// Converter maps a value from a unit's local scale to its parent's scale.
//
// This is a sealed interface - only Identity, Linear and Affine implement it.
// Every converter is an affine map v*factor + offset, which makes composition
// along a parent chain and inversion closed over the three variants.
type Converter interface {
	// Convert maps a value on the local scale to the parent scale.
	Convert(v float64) float64

	// Inverse returns the converter mapping parent scale back to local scale.
	Inverse() Converter

	// IsLinear reports whether the converter has no offset.
	IsLinear() bool

	coefficients() (factor, offset float64)
}

// Identity leaves values unchanged.
type Identity struct{}

func (Identity) Convert(v float64) float64 { return v }

func (Identity) Inverse() Converter { return Identity{} }

func (Identity) IsLinear() bool { return true }

func (Identity) coefficients() (float64, float64) { return 1, 0 }

// Linear scales values by Factor. Factor must be non-zero.
type Linear struct {
	Factor float64
}

func (c Linear) Convert(v float64) float64 { return v * c.Factor }

func (c Linear) Inverse() Converter { return newConverter(1/c.Factor, 0) }

func (Linear) IsLinear() bool { return true }

func (c Linear) coefficients() (float64, float64) { return c.Factor, 0 }

// Affine maps v to v*Factor + Offset. Used for temperature-like scales.
// Factor must be non-zero.
type Affine struct {
	Factor float64
	Offset float64
}

func (c Affine) Convert(v float64) float64 { return v*c.Factor + c.Offset }

func (c Affine) Inverse() Converter {
	return newConverter(1/c.Factor, -c.Offset/c.Factor)
}

func (c Affine) IsLinear() bool { return c.Offset == 0 }

func (c Affine) coefficients() (float64, float64) { return c.Factor, c.Offset }

// newConverter returns the simplest variant for the given coefficients.
func newConverter(factor, offset float64) Converter {
	switch {
	case offset != 0:
		return Affine{Factor: factor, Offset: offset}
	case factor == 1:
		return Identity{}
	default:
		return Linear{Factor: factor}
	}
}

// compose returns a converter applying first and then second.
func compose(first, second Converter) Converter {
	f1, o1 := first.coefficients()
	f2, o2 := second.coefficients()
	return newConverter(f2*f1, f2*o1+o2)
}

// converterKey renders a converter for structural comparison. Identity,
// Linear{1} and Affine{1, 0} describe the same map and share a key.
func converterKey(c Converter) string {
	if c == nil {
		c = Identity{}
	}
	f, o := c.coefficients()
	return fmt.Sprintf("(%s,%s)",
		strconv.FormatFloat(f, 'g', -1, 64),
		strconv.FormatFloat(o, 'g', -1, 64))
}
