// Package propset provides Set, an immutable collection of named property
// values with a textual form of ';'-separated name=literal pairs:
//
//	a=1;b=5.2:Meter;c="text"
package propset

import (
	"slices"
	"strings"

	"github.com/roach88/propfilter/internal/amount"
	"github.com/roach88/propfilter/internal/propval"
)

// Set maps property names to values. Sets are immutable: Set, Remove, Keep
// and Merge return new sets and leave the receiver unchanged. The zero value
// is an empty set.
//
// Names keep their insertion order, which is also the order Format writes.
type Set struct {
	names  []string
	values map[string]propval.Value
}

// Entry is a name/value pair used to build sets.
type Entry struct {
	Name  string
	Value propval.Value
}

// Empty is the set with no properties.
var Empty = Set{}

// New builds a set from entries. A later entry replaces an earlier entry of
// the same name but keeps the earlier position. Entries with a nil value are
// skipped.
func New(entries ...Entry) Set {
	s := Set{values: make(map[string]propval.Value, len(entries))}
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		if _, ok := s.values[e.Name]; !ok {
			s.names = append(s.names, e.Name)
		}
		s.values[e.Name] = e.Value
	}
	return s
}

// Len returns the number of properties.
func (s Set) Len() int { return len(s.names) }

// IsEmpty reports whether the set has no properties.
func (s Set) IsEmpty() bool { return len(s.names) == 0 }

// Names returns property names in insertion order.
func (s Set) Names() []string { return slices.Clone(s.names) }

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Get returns the value of name.
func (s Set) Get(name string) (propval.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// GetInteger returns the value of name if it is an integer.
func (s Set) GetInteger(name string) (int64, bool) {
	v, ok := s.values[name].(propval.Integer)
	return int64(v), ok
}

// GetAmount returns the value of name if it is an amount.
func (s Set) GetAmount(name string) (amount.Amount, bool) {
	v, ok := s.values[name].(propval.Amount)
	return v.Amount, ok
}

// GetText returns the value of name if it is text.
func (s Set) GetText(name string) (string, bool) {
	v, ok := s.values[name].(propval.Text)
	return string(v), ok
}

// Set returns a copy of s with name bound to v. An existing name keeps its
// position; a new name is appended. A nil v is equivalent to Remove.
func (s Set) Set(name string, v propval.Value) Set {
	if v == nil {
		return s.Remove(name)
	}
	out := s.clone()
	if _, ok := out.values[name]; !ok {
		out.names = append(out.names, name)
	}
	out.values[name] = v
	return out
}

// Remove returns a copy of s without name.
func (s Set) Remove(name string) Set {
	if !s.Has(name) {
		return s
	}
	out := s.clone()
	delete(out.values, name)
	out.names = slices.DeleteFunc(out.names, func(n string) bool { return n == name })
	return out
}

// Keep returns a copy of s holding only the given names.
func (s Set) Keep(names ...string) Set {
	out := Set{values: make(map[string]propval.Value, len(names))}
	for _, name := range s.names {
		if slices.Contains(names, name) {
			out.names = append(out.names, name)
			out.values[name] = s.values[name]
		}
	}
	return out
}

// Merge returns a copy of s with every property of other set on it. Values
// from other win.
func (s Set) Merge(other Set) Set {
	out := s.clone()
	for _, name := range other.names {
		if _, ok := out.values[name]; !ok {
			out.names = append(out.names, name)
		}
		out.values[name] = other.values[name]
	}
	return out
}

// Equal reports whether s and other hold the same names with values equal
// under cmp. Order is not significant.
func (s Set) Equal(other Set, cmp propval.Comparer) bool {
	if s.Len() != other.Len() {
		return false
	}
	for name, v := range s.values {
		ov, ok := other.values[name]
		if !ok || !cmp.Equal(v, ov) {
			return false
		}
	}
	return true
}

// String renders the set for debugging, e.g. "a=1;b=5.2 m;c=\"x\"". Use
// Format for text that Parse accepts.
func (s Set) String() string {
	var b strings.Builder
	for i, name := range s.names {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(s.values[name].String())
	}
	return b.String()
}

func (s Set) clone() Set {
	out := Set{
		names:  slices.Clone(s.names),
		values: make(map[string]propval.Value, len(s.values)+1),
	}
	for k, v := range s.values {
		out.values[k] = v
	}
	return out
}
