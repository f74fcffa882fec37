// Package filter implements property filters: rules over a propset.Set such
// as
//
//	a=1,2,5~10&b>=2:Meter&c!=null&d<e
//
// A filter is a conjunction of clauses joined by '&'. Each clause compares a
// property against a comma-separated list of terms. A term is a literal
// (integer, number:Unit amount, quoted text or null), an inclusive range
// low~high, or the name of another property.
//
// Parsing resolves unit names against a units.Table and happens once per
// filter text; the resulting *Filter is immutable and safe for concurrent
// use. Evaluation never fails: missing properties and incomparable values
// make a clause false, except that "name=null" holds when name is absent.
//
// Every clause is evaluated, even after one has failed, so Explain reports
// the outcome of each clause and IsValid is their conjunction.
package filter
