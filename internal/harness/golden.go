package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as stable text: one line per case with the
// IsValid result, per-clause results and any parse error.
func Snapshot(s *Suite, r *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "suite %s\n", s.Name)
	for _, o := range r.Outcomes {
		if o.ParseError != "" {
			fmt.Fprintf(&b, "%s: error: %s\n", o.Case, o.ParseError)
			continue
		}
		clauses := make([]string, len(o.Clauses))
		for i, ok := range o.Clauses {
			clauses[i] = fmt.Sprintf("%t", ok)
		}
		fmt.Fprintf(&b, "%s: %t [%s]\n", o.Case, o.Valid, strings.Join(clauses, " "))
	}
	return []byte(b.String())
}

// RunWithGolden executes a suite and compares its snapshot against a golden
// file. The golden file is stored in testdata/golden/{suite.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the suite cannot run.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, s *Suite, opts ...RunnerOption) (*Result, error) {
	t.Helper()

	result, err := NewRunner(opts...).Run(s)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, Snapshot(s, result))

	return result, nil
}
