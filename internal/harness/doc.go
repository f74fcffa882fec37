// Package harness runs filter conformance suites.
//
// # Suite Format
//
// Suites are YAML files with the following structure:
//
//	name: isvalid
//	description: "What this suite validates"
//	units: |
//	  Furlong: {symbol: "fur", parent: "Meter", factor: 201.168}
//	epsilon: 0.001
//	cases:
//	  - name: equals_integer_true
//	    set: "a=1"
//	    filter: "a=1"
//	    expect: true
//	  - name: explains_each_clause
//	    set: "a=0;b=3"
//	    filter: "a=0,1&b=4"
//	    expect: false
//	    clauses: [true, false]
//	  - name: rejects_unknown_unit
//	    filter: "a=1:Parsec"
//	    expect_error: "unknown unit"
//
// units is optional CUE source of unit definitions extending the standard
// table (see units.CompileCatalog). epsilon is optional and overrides the
// default comparer epsilon.
//
// Each case needs either expect (the IsValid result) or expect_error (a
// substring of the filter parse error). clauses optionally lists the
// expected per-clause results reported by Explain, and describe the
// expected Describe output.
//
// # Usage
//
//	suite, err := harness.LoadSuite("testdata/scenarios/isvalid.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
