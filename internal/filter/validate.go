package filter

import (
	"fmt"
	"slices"
)

// ValidationResult contains the static analysis of a filter.
type ValidationResult struct {
	// OK is true when no warnings were found.
	OK bool

	// Warnings describes clauses that parse but are likely mistakes.
	// Empty when OK is true.
	Warnings []string
}

// Validate lints a parsed filter. It never changes how the filter
// evaluates; it points out clauses that can never hold or that read
// properties outside known.
//
// Rules:
//  1. Every property read must be in known (skipped when known is nil)
//  2. '!=' with several terms holds only when none of them match
//  3. Relational clauses cannot compare against null or text
//  4. A range whose low bound exceeds its high bound matches nothing
//
// Validate is a pure function with no side effects.
func Validate(f *Filter, known []string) ValidationResult {
	v := &validator{
		warnings: []string{},
		known:    known,
	}
	if f != nil {
		for i, c := range f.Clauses {
			v.validateClause(i+1, c)
		}
	}
	return ValidationResult{
		OK:       len(v.warnings) == 0,
		Warnings: v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
	known    []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) checkKnown(n int, name string) {
	if v.known != nil && !slices.Contains(v.known, name) {
		v.addWarning("clause %d: unknown property %q", n, name)
	}
}

func (v *validator) validateClause(n int, c Clause) {
	v.checkKnown(n, c.Property)

	if c.Operator == NotEqual && len(c.Terms) > 1 {
		v.addWarning("clause %d: %q holds only when %s matches none of %d values",
			n, c.String(), c.Property, len(c.Terms))
	}

	for _, t := range c.Terms {
		switch t := t.(type) {
		case PropertyRef:
			v.checkKnown(n, t.Name)
		case NullLiteral:
			if c.Operator.IsRelational() {
				v.addWarning("clause %d: %q compares against null and never holds", n, c.String())
			}
		case TextLiteral:
			if c.Operator.IsRelational() {
				v.addWarning("clause %d: %q orders text and never holds", n, c.String())
			}
		case Range:
			if emptyRange(t) {
				v.addWarning("clause %d: range %s is empty", n, t.String())
			}
		}
	}
}

func emptyRange(r Range) bool {
	switch low := r.Low.(type) {
	case IntLiteral:
		high, ok := r.High.(IntLiteral)
		return ok && low.Value > high.Value
	case AmountLiteral:
		high, ok := r.High.(AmountLiteral)
		if !ok {
			return false
		}
		hv, err := high.Amount.ValueIn(low.Amount.Unit)
		return err == nil && low.Amount.Value > hv
	}
	return false
}
