// Package propval provides PropertyValue, the typed value of a product
// property, and Comparer, the policy used to compare two values.
//
// Value is a sealed interface over Integer, Amount and Text. Only types in
// this package implement it, so type switches over values are exhaustive:
//
//	switch v := value.(type) {
//	case propval.Integer:
//	case propval.Amount:
//	case propval.Text:
//	}
//
// Literal syntax, shared with value-set and filter text:
//
//	42            Integer
//	5.2:Meter     Amount (unit name resolved through a units.Table)
//	"quoted"      Text (\" and \\ escapes)
package propval
