package harness

import (
	"fmt"
	"log/slog"

	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/propfilter/internal/filter"
	"github.com/roach88/propfilter/internal/propset"
	"github.com/roach88/propfilter/internal/propval"
	"github.com/roach88/propfilter/internal/units"
)

// Runner executes suites.
type Runner struct {
	logger   *slog.Logger
	comparer propval.Comparer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for suite progress and evaluation diagnostics.
//
// Default: slog.Default()
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithComparer sets the comparer used by every case. A suite's epsilon
// still takes precedence.
//
// Default: propval.DefaultComparer
func WithComparer(c propval.Comparer) RunnerOption {
	return func(r *Runner) {
		r.comparer = c
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:   slog.Default(),
		comparer: propval.DefaultComparer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes s with a default Runner.
func Run(s *Suite) (*Result, error) {
	return NewRunner().Run(s)
}

// Run executes every case of s.
//
// Errors are returned only for problems with the suite itself: a unit
// catalog that does not compile or a value set that does not parse. Case
// failures are reported in the Result.
func (r *Runner) Run(s *Suite) (*Result, error) {
	table, err := suiteTable(s)
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", s.Name, err)
	}

	cmp := r.comparer
	if s.Epsilon > 0 {
		cmp = propval.Comparer{Epsilon: s.Epsilon}
	}
	ev := filter.NewEvaluator(filter.WithComparer(cmp), filter.WithLogger(r.logger))

	result := NewResult()
	for _, c := range s.Cases {
		set, err := propset.Parse(c.Set, table)
		if err != nil {
			return nil, fmt.Errorf("suite %s: case %s: set: %w", s.Name, c.Name, err)
		}

		outcome := Outcome{Case: c.Name}
		var describe string
		f, err := filter.Parse(c.Filter, table)
		if err != nil {
			outcome.ParseError = err.Error()
		} else {
			for _, cr := range ev.Explain(f, set) {
				outcome.Clauses = append(outcome.Clauses, cr.Valid)
			}
			outcome.Valid = ev.IsValid(f, set)
			describe = filter.Describe(f)
		}

		errs := checkOutcome(c, outcome, describe)
		outcome.Pass = len(errs) == 0
		for _, e := range errs {
			result.AddError(e.Error())
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	r.logger.Info("suite finished",
		"suite", s.Name,
		"cases", len(s.Cases),
		"errors", len(result.Errors),
		"pass", result.Pass,
	)
	return result, nil
}

// suiteTable returns the standard table extended with the suite's units.
func suiteTable(s *Suite) (*units.Table, error) {
	if s.Units == "" {
		return units.Standard(), nil
	}
	v := cuecontext.New().CompileString(s.Units)
	return units.CompileCatalog(v, units.Standard())
}
