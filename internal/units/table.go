package units

import (
	"maps"
	"slices"
)

// Table is an immutable vocabulary mapping unit names ("Meter") to units.
//
// Tables are passed explicitly to parsing and formatting so that independent
// vocabularies can coexist. A nil *Table is an empty table.
type Table struct {
	byName map[string]Unit
	byKey  map[string]string
}

// NewTable creates a table from a name→unit map. The map is copied.
func NewTable(entries map[string]Unit) *Table {
	t := &Table{
		byName: make(map[string]Unit, len(entries)),
		byKey:  make(map[string]string, len(entries)),
	}
	for name, u := range entries {
		t.add(name, u)
	}
	return t
}

// add registers name. When several names share one structural unit the
// lexically smallest name wins the reverse lookup, keeping Name deterministic.
func (t *Table) add(name string, u Unit) {
	t.byName[name] = u
	k := u.key()
	if prev, ok := t.byKey[k]; !ok || name < prev {
		t.byKey[k] = name
	}
}

// Unit returns the unit registered under name.
func (t *Table) Unit(name string) (Unit, bool) {
	if t == nil {
		return nil, false
	}
	u, ok := t.byName[name]
	return u, ok
}

// Lookup is Unit with an *UnknownUnitError for missing names.
func (t *Table) Lookup(name string) (Unit, error) {
	u, ok := t.Unit(name)
	if !ok {
		return nil, &UnknownUnitError{Name: name}
	}
	return u, nil
}

// Name returns the name under which a unit structurally equal to u is
// registered.
func (t *Table) Name(u Unit) (string, bool) {
	if t == nil || u == nil {
		return "", false
	}
	name, ok := t.byKey[u.key()]
	return name, ok
}

// With returns a copy of the table with name bound to u, replacing any
// previous binding of name.
func (t *Table) With(name string, u Unit) *Table {
	entries := t.entries()
	if entries == nil {
		entries = make(map[string]Unit, 1)
	}
	entries[name] = u
	return NewTable(entries)
}

// Names returns all registered names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.byName))
}

// UnitsFor returns the units of quantity q, ordered by name.
func (t *Table) UnitsFor(q Quantity) []Unit {
	var out []Unit
	for _, name := range t.Names() {
		if u := t.byName[name]; u.Quantity() == q {
			out = append(out, u)
		}
	}
	return out
}

// Len returns the number of registered names.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

func (t *Table) entries() map[string]Unit {
	if t == nil {
		return nil
	}
	return maps.Clone(t.byName)
}
