// Package testutil provides fixtures shared by package tests: property sets
// parsed against the standard unit table and loggers that discard or record
// output.
package testutil
