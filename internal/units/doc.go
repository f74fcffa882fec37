// Package units provides the unit-of-measure algebra used by property values.
//
// Units form a tree rather than a flat dimension vector. Every quantity is
// anchored by a Base unit; Alternate units hang off a parent unit through a
// Converter; Product units multiply integer powers of other units. Keeping the
// tree preserves the user-facing identity of a unit (kWh is not 3.6 MJ) while
// conversion still walks the parent chain down to base-unit terms.
//
// The Unit interface is sealed: only Base, Alternate and Product implement it,
// so type switches over units are exhaustive.
//
// Equality is structural. Two units built independently from the same parts
// are equal, and Product elements compare as a multiset of (unit, power)
// pairs. See Equal.
//
// Unit names used in literal text ("5:Meter") are resolved through an explicit
// Table. There is no process-wide registry; Standard returns a ready-made
// vocabulary and CompileCatalog builds one from CUE.
package units
