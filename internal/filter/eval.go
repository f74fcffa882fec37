package filter

import (
	"context"
	"log/slog"

	"github.com/roach88/propfilter/internal/propset"
	"github.com/roach88/propfilter/internal/propval"
	"github.com/roach88/propfilter/internal/units"
)

// Evaluator evaluates filters against property sets. It holds only
// configuration and is safe for concurrent use.
type Evaluator struct {
	comparer propval.Comparer
	logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithComparer sets the comparer used for equality and ordering.
//
// Default: propval.DefaultComparer
func WithComparer(c propval.Comparer) Option {
	return func(e *Evaluator) {
		e.comparer = c
	}
}

// WithLogger sets the logger for per-clause diagnostics.
//
// Default: slog.Default() at evaluation time
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{comparer: propval.DefaultComparer}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

// ClauseResult is the outcome of one clause.
type ClauseResult struct {
	Clause Clause
	Valid  bool
}

// IsValid reports whether set satisfies every clause of f. A nil or empty
// filter is satisfied by any set.
func (e *Evaluator) IsValid(f *Filter, set propset.Set) bool {
	if f.IsEmpty() {
		return true
	}
	valid := true
	for _, c := range f.Clauses {
		ok := e.evalClause(c, set)
		valid = valid && ok
	}
	return valid
}

// Explain evaluates every clause of f and reports each outcome in clause
// order.
func (e *Evaluator) Explain(f *Filter, set propset.Set) []ClauseResult {
	if f.IsEmpty() {
		return nil
	}
	results := make([]ClauseResult, len(f.Clauses))
	for i, c := range f.Clauses {
		results[i] = ClauseResult{Clause: c, Valid: e.evalClause(c, set)}
	}
	return results
}

// IsValid reports whether set satisfies f under propval.DefaultComparer.
func (f *Filter) IsValid(set propset.Set) bool {
	return NewEvaluator().IsValid(f, set)
}

// IsValidWith reports whether set satisfies f under cmp.
func (f *Filter) IsValidWith(set propset.Set, cmp propval.Comparer) bool {
	return NewEvaluator(WithComparer(cmp)).IsValid(f, set)
}

func (e *Evaluator) evalClause(c Clause, set propset.Set) bool {
	left, present := set.Get(c.Property)

	var valid bool
	switch {
	case !present:
		valid = c.Operator == Equal && onlyNull(c.Terms)
	case c.Operator == Equal:
		valid = e.matchesAny(c, left, set)
	case c.Operator == NotEqual:
		valid = !e.matchesAny(c, left, set)
	default:
		valid = e.relational(c, left, set)
	}

	if l := e.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("clause evaluated",
			"clause", c.String(),
			"present", present,
			"valid", valid,
		)
	}
	return valid
}

func onlyNull(terms []Term) bool {
	for _, t := range terms {
		if _, ok := t.(NullLiteral); !ok {
			return false
		}
	}
	return len(terms) > 0
}

// matchesAny reports whether left equals some term or lies in some range.
func (e *Evaluator) matchesAny(c Clause, left propval.Value, set propset.Set) bool {
	for _, t := range c.Terms {
		if e.matches(c, left, t, set) {
			return true
		}
	}
	return false
}

func (e *Evaluator) matches(c Clause, left propval.Value, t Term, set propset.Set) bool {
	switch t := t.(type) {
	case NullLiteral:
		return false
	case Literal:
		return e.comparer.Equal(left, literalValue(t, left))
	case Range:
		return e.inRange(c, left, t)
	case PropertyRef:
		right, ok := set.Get(t.Name)
		return ok && e.comparer.Equal(left, right)
	default:
		return false
	}
}

func (e *Evaluator) inRange(c Clause, left propval.Value, r Range) bool {
	low, ok := e.compare(c, literalValue(r.Low, left), left)
	if !ok || low > 0 {
		return false
	}
	high, ok := e.compare(c, left, literalValue(r.High, left))
	return ok && high <= 0
}

func (e *Evaluator) relational(c Clause, left propval.Value, set propset.Set) bool {
	var right propval.Value
	switch t := c.Terms[0].(type) {
	case Literal:
		right = literalValue(t, left)
	case PropertyRef:
		v, ok := set.Get(t.Name)
		if !ok {
			return false
		}
		right = v
	}
	if right == nil {
		return false
	}

	order, ok := e.compare(c, left, right)
	if !ok {
		return false
	}
	switch c.Operator {
	case Greater:
		return order > 0
	case GreaterOrEqual:
		return order >= 0
	case Less:
		return order < 0
	case LessOrEqual:
		return order <= 0
	default:
		return false
	}
}

// compare orders a against b. Incomparable values make the clause false.
// Amounts of different quantities are logged at Warn level.
func (e *Evaluator) compare(c Clause, a, b propval.Value) (int, bool) {
	order, err := e.comparer.Compare(a, b)
	if err == nil {
		return order, true
	}
	if units.IsIncompatibleQuantity(err) {
		e.log().Warn("clause compares different quantities",
			"clause", c.String(),
			"error", err,
		)
	} else {
		e.log().Debug("clause values not comparable",
			"clause", c.String(),
			"error", err,
		)
	}
	return 0, false
}
