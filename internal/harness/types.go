package harness

// Result is the outcome of a suite run.
type Result struct {
	// Pass indicates overall suite success.
	// True if every case matched its expectations.
	Pass bool

	// Outcomes holds one entry per case, in suite order.
	Outcomes []Outcome

	// Errors contains failure messages.
	// Empty if Pass is true.
	Errors []string
}

// Outcome is the result of one case.
type Outcome struct {
	Case string

	// Valid is the IsValid result. False when the filter failed to parse.
	Valid bool

	// Clauses holds the per-clause results from Explain.
	Clauses []bool

	// ParseError is the filter parse error message, if any.
	ParseError string

	// Pass is true if the case matched its expectations.
	Pass bool
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
