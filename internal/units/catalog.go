package units

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
)

// CompileCatalog compiles a CUE struct of unit definitions into a Table that
// extends base (which may be nil).
//
// Each field names one unit and takes one of three shapes:
//
//	Meter:      {quantity: "Length", symbol: "m"}                  // base
//	CentiMeter: {symbol: "cm", parent: "Meter", factor: 0.01}      // alternate
//	Celsius:    {symbol: "°C", parent: "Kelvin", offset: 273.15}   // affine alternate
//	CubicMeterPerHour: {
//		quantity: "VolumeFlow"
//		elements: [{unit: "CubicMeter", pow: 1}, {unit: "Hour", pow: -1}]
//	}
//
// A symbol on an elements unit names it as an identity alternate of the
// product. Parents and elements may refer to units defined anywhere in the
// catalog or in base; definition order does not matter.
//
// Uses the CUE SDK's Go API directly, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(src)
//	tbl, err := CompileCatalog(v.LookupPath(cue.ParsePath("units")), units.Standard())
func CompileCatalog(v cue.Value, base *Table) (*Table, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	c := &catalog{
		defs:     make(map[string]cue.Value),
		resolved: make(map[string]Unit),
		visiting: make(map[string]bool),
		base:     base,
	}

	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		name := iter.Label()
		c.order = append(c.order, name)
		c.defs[name] = iter.Value()
	}

	entries := base.entries()
	if entries == nil {
		entries = make(map[string]Unit, len(c.order))
	}
	for _, name := range c.order {
		u, err := c.resolve(name)
		if err != nil {
			return nil, err
		}
		entries[name] = u
	}
	return NewTable(entries), nil
}

// catalog resolves unit definitions lazily so references may point forward.
type catalog struct {
	order    []string
	defs     map[string]cue.Value
	resolved map[string]Unit
	visiting map[string]bool
	base     *Table
}

// reference resolves a unit name used as a parent or element.
func (c *catalog) reference(from, name string, pos cue.Value) (Unit, error) {
	if _, ok := c.defs[name]; ok {
		return c.resolve(name)
	}
	if u, ok := c.base.Unit(name); ok {
		return u, nil
	}
	return nil, &CatalogError{
		Unit:    from,
		Message: fmt.Sprintf("references unknown unit %q", name),
		Pos:     pos.Pos(),
	}
}

func (c *catalog) resolve(name string) (Unit, error) {
	if u, ok := c.resolved[name]; ok {
		return u, nil
	}
	v := c.defs[name]
	if c.visiting[name] {
		return nil, &CatalogError{Unit: name, Message: "definition cycle", Pos: v.Pos()}
	}
	c.visiting[name] = true
	defer delete(c.visiting, name)

	u, err := c.compile(name, v)
	if err != nil {
		return nil, err
	}
	c.resolved[name] = u
	return u, nil
}

func (c *catalog) compile(name string, v cue.Value) (Unit, error) {
	quantity, err := optionalString(v, "quantity")
	if err != nil {
		return nil, err
	}
	symbol, err := optionalString(v, "symbol")
	if err != nil {
		return nil, err
	}
	parentVal := v.LookupPath(cue.ParsePath("parent"))
	elementsVal := v.LookupPath(cue.ParsePath("elements"))

	switch {
	case parentVal.Exists() && elementsVal.Exists():
		return nil, &CatalogError{Unit: name, Message: "parent and elements are mutually exclusive", Pos: v.Pos()}

	case parentVal.Exists():
		return c.compileAlternate(name, v, parentVal, Quantity(quantity), symbol)

	case elementsVal.Exists():
		return c.compileProduct(name, elementsVal, Quantity(quantity), symbol)

	default:
		if quantity == "" {
			return nil, &CatalogError{Unit: name, Message: "base unit requires quantity", Pos: v.Pos()}
		}
		if strings.TrimSpace(symbol) == "" {
			return nil, &CatalogError{Unit: name, Message: "base unit requires symbol", Pos: v.Pos()}
		}
		return NewBase(Quantity(quantity), symbol), nil
	}
}

func (c *catalog) compileAlternate(name string, v, parentVal cue.Value, q Quantity, symbol string) (Unit, error) {
	parentName, err := parentVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	parent, err := c.reference(name, parentName, parentVal)
	if err != nil {
		return nil, err
	}
	if q != "" && q != parent.Quantity() {
		return nil, &CatalogError{
			Unit:    name,
			Message: fmt.Sprintf("quantity %s does not match parent %s (%s)", q, parentName, parent.Quantity()),
			Pos:     v.Pos(),
		}
	}
	if strings.TrimSpace(symbol) == "" {
		return nil, &CatalogError{Unit: name, Message: "alternate unit requires symbol", Pos: v.Pos()}
	}

	factor, err := optionalFloat(v, "factor", 1)
	if err != nil {
		return nil, err
	}
	if factor == 0 {
		return nil, &CatalogError{Unit: name, Message: "factor must be non-zero", Pos: v.Pos()}
	}
	offset, err := optionalFloat(v, "offset", 0)
	if err != nil {
		return nil, err
	}
	return NewAlternate(symbol, parent, newConverter(factor, offset)), nil
}

func (c *catalog) compileProduct(name string, elementsVal cue.Value, q Quantity, symbol string) (Unit, error) {
	if q == "" {
		return nil, &CatalogError{Unit: name, Message: "product unit requires quantity", Pos: elementsVal.Pos()}
	}

	iter, err := elementsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var elems []Element
	for iter.Next() {
		ev := iter.Value()
		unitVal := ev.LookupPath(cue.ParsePath("unit"))
		unitName, err := unitVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		u, err := c.reference(name, unitName, unitVal)
		if err != nil {
			return nil, err
		}
		powVal := ev.LookupPath(cue.ParsePath("pow"))
		pow := int64(1)
		if powVal.Exists() {
			if pow, err = powVal.Int64(); err != nil {
				return nil, formatCUEError(err)
			}
		}
		if pow == 0 {
			return nil, &CatalogError{Unit: name, Message: "element power must be non-zero", Pos: ev.Pos()}
		}
		elems = append(elems, Element{Unit: u, Pow: int(pow)})
	}
	if len(elems) == 0 {
		return nil, &CatalogError{Unit: name, Message: "product unit requires at least one element", Pos: elementsVal.Pos()}
	}

	p := NewProduct(q, elems...)
	if symbol != "" {
		return NewAlternate(symbol, p, Identity{}), nil
	}
	return p, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func optionalFloat(v cue.Value, field string, def float64) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return def, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return f, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &CatalogError{
			Unit:    "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
