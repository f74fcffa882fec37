package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when a case does not match its expectations.
type AssertionError struct {
	Case     string
	Field    string // Which expectation failed: expect, expect_error, clauses, describe
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "case %s: %s mismatch\n", e.Case, e.Field)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// checkOutcome compares an outcome against the case expectations. describe
// is the rendered filter, empty when the filter failed to parse.
func checkOutcome(c Case, o Outcome, describe string) []error {
	var errs []error
	fail := func(field, expected, actual string) {
		errs = append(errs, &AssertionError{Case: c.Name, Field: field, Expected: expected, Actual: actual})
	}

	if c.ExpectError != "" {
		if !strings.Contains(o.ParseError, c.ExpectError) {
			fail("expect_error", fmt.Sprintf("parse error containing %q", c.ExpectError), actualError(o))
		}
		return errs
	}

	if o.ParseError != "" {
		fail("expect", fmt.Sprintf("%t", *c.Expect), actualError(o))
		return errs
	}
	if o.Valid != *c.Expect {
		fail("expect", fmt.Sprintf("%t", *c.Expect), fmt.Sprintf("%t", o.Valid))
	}
	if c.Clauses != nil && !slices.Equal(c.Clauses, o.Clauses) {
		fail("clauses", fmt.Sprint(c.Clauses), fmt.Sprint(o.Clauses))
	}
	if c.Describe != "" && strings.TrimRight(c.Describe, "\n") != describe {
		fail("describe", fmt.Sprintf("%q", c.Describe), fmt.Sprintf("%q", describe))
	}
	return errs
}

func actualError(o Outcome) string {
	if o.ParseError == "" {
		return "no error"
	}
	return "error: " + o.ParseError
}
