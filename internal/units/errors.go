package units

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

var (
	// ErrUnknownUnit is matched by *UnknownUnitError.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleQuantity is matched by *IncompatibleQuantityError.
	ErrIncompatibleQuantity = errors.New("incompatible quantity")

	// ErrNonLinearProduct is returned when a Product unit contains an element
	// whose conversion to its base unit has an offset (e.g. Celsius).
	ErrNonLinearProduct = errors.New("product unit with non-linear element")
)

// UnknownUnitError reports a unit name that is not present in a Table.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownUnit) hold.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// IncompatibleQuantityError reports an explicit conversion between units of
// different quantities.
type IncompatibleQuantityError struct {
	From Quantity
	To   Quantity
}

func (e *IncompatibleQuantityError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrIncompatibleQuantity) hold.
func (e *IncompatibleQuantityError) Is(target error) bool {
	return target == ErrIncompatibleQuantity
}

// IsUnknownUnit reports whether err is, or wraps, an unknown unit error.
func IsUnknownUnit(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsIncompatibleQuantity reports whether err is, or wraps, a cross-quantity
// conversion error.
func IsIncompatibleQuantity(err error) bool {
	return errors.Is(err, ErrIncompatibleQuantity)
}

// CatalogError represents a problem in a CUE unit catalog with source position.
type CatalogError struct {
	Unit    string
	Message string
	Pos     token.Pos
}

func (e *CatalogError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Unit, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Unit, e.Message)
}
