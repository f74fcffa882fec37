package units

import (
	"slices"
	"strconv"
	"strings"
)

// Quantity names a physical dimension family such as Length or Temperature.
type Quantity string

// Quantities used by the standard vocabulary. Catalogs may introduce others.
const (
	Dimensionless Quantity = "Dimensionless"
	Angle         Quantity = "Angle"
	Length        Quantity = "Length"
	Area          Quantity = "Area"
	Volume        Quantity = "Volume"
	Mass          Quantity = "Mass"
	Duration      Quantity = "Duration"
	Temperature   Quantity = "Temperature"
	Velocity      Quantity = "Velocity"
	VolumeFlow    Quantity = "VolumeFlow"
	Force         Quantity = "Force"
	Energy        Quantity = "Energy"
	Power         Quantity = "Power"
	Pressure      Quantity = "Pressure"
)

// Unit is a sealed interface over Base, Alternate and Product.
//
// Units are immutable values. Build them with NewBase, NewAlternate,
// NewProduct, Times, Divide or Pow; the zero values are not valid units.
type Unit interface {
	// Quantity returns the dimension family the unit belongs to.
	Quantity() Quantity

	// Symbol returns the display symbol ("m", "°C", "m³/h").
	Symbol() string

	// String returns the symbol, for fmt.
	String() string

	// key returns the canonical structural identity used by Equal.
	key() string
}

// Base is the canonical leaf unit anchoring a quantity's conversions.
type Base struct {
	quantity Quantity
	symbol   string
}

// NewBase creates the base unit of quantity q.
func NewBase(q Quantity, symbol string) Base {
	return Base{quantity: q, symbol: symbol}
}

func (u Base) Quantity() Quantity { return u.quantity }
func (u Base) Symbol() string     { return u.symbol }
func (u Base) String() string     { return u.symbol }

func (u Base) key() string {
	return "B(" + string(u.quantity) + "," + strconv.Quote(u.symbol) + ")"
}

// Alternate is a named unit defined relative to a parent unit.
// Its quantity is always the parent's quantity.
type Alternate struct {
	symbol    string
	parent    Unit
	converter Converter
	k         string
}

// NewAlternate creates a unit whose values map onto parent through c.
// A nil converter means Identity.
func NewAlternate(symbol string, parent Unit, c Converter) Alternate {
	if c == nil {
		c = Identity{}
	}
	u := Alternate{symbol: symbol, parent: parent, converter: c}
	u.k = "A(" + string(parent.Quantity()) + "," + strconv.Quote(symbol) + "," +
		converterKey(c) + "," + parent.key() + ")"
	return u
}

func (u Alternate) Quantity() Quantity { return u.parent.Quantity() }
func (u Alternate) Symbol() string     { return u.symbol }
func (u Alternate) String() string     { return u.symbol }
func (u Alternate) key() string        { return u.k }

// Parent returns the unit this unit is defined against.
func (u Alternate) Parent() Unit { return u.parent }

// Converter returns the map from this unit's scale to the parent's scale.
func (u Alternate) Converter() Converter { return u.converter }

// Element is one factor of a Product unit: Unit raised to a non-zero Pow.
type Element struct {
	Unit Unit
	Pow  int
}

// Product is a derived unit built by multiplying powers of other units.
type Product struct {
	quantity Quantity
	elements []Element
	k        string
}

// NewProduct creates a product unit of quantity q. Product operands are
// flattened into their elements, equal units are merged by adding powers and
// zero powers are dropped. Element order is kept for display only.
func NewProduct(q Quantity, elems ...Element) Product {
	merged := make([]Element, 0, len(elems))
	add := func(e Element) {
		for i := range merged {
			if Equal(merged[i].Unit, e.Unit) {
				merged[i].Pow += e.Pow
				return
			}
		}
		merged = append(merged, e)
	}
	for _, e := range elems {
		if e.Unit == nil || e.Pow == 0 {
			continue
		}
		if p, ok := e.Unit.(Product); ok {
			for _, inner := range p.elements {
				add(Element{Unit: inner.Unit, Pow: inner.Pow * e.Pow})
			}
			continue
		}
		add(e)
	}
	merged = slices.DeleteFunc(merged, func(e Element) bool { return e.Pow == 0 })

	keys := make([]string, len(merged))
	for i, e := range merged {
		keys[i] = e.Unit.key() + "^" + strconv.Itoa(e.Pow)
	}
	slices.Sort(keys)

	return Product{
		quantity: q,
		elements: merged,
		k:        "P(" + string(q) + ",[" + strings.Join(keys, ",") + "])",
	}
}

func (u Product) Quantity() Quantity { return u.quantity }
func (u Product) String() string     { return u.Symbol() }
func (u Product) key() string        { return u.k }

// Elements returns a copy of the product's elements.
func (u Product) Elements() []Element {
	return slices.Clone(u.elements)
}

// Symbol composes the element symbols, e.g. "m³/h" or "kg·m/s²".
func (u Product) Symbol() string {
	var num, den []string
	for _, e := range u.elements {
		switch {
		case e.Pow > 0:
			num = append(num, e.Unit.Symbol()+superscript(e.Pow))
		case e.Pow < 0:
			den = append(den, e.Unit.Symbol()+superscript(-e.Pow))
		}
	}
	s := strings.Join(num, "·")
	if len(den) == 0 {
		return s
	}
	if s == "" {
		s = "1"
	}
	if len(den) == 1 {
		return s + "/" + den[0]
	}
	return s + "/(" + strings.Join(den, "·") + ")"
}

// Times returns the product a·b of quantity q.
func Times(q Quantity, a, b Unit) Product {
	return NewProduct(q, Element{Unit: a, Pow: 1}, Element{Unit: b, Pow: 1})
}

// Divide returns the quotient a/b of quantity q.
func Divide(q Quantity, a, b Unit) Product {
	return NewProduct(q, Element{Unit: a, Pow: 1}, Element{Unit: b, Pow: -1})
}

// Pow returns u raised to n as a unit of quantity q.
func Pow(q Quantity, u Unit, n int) Product {
	return NewProduct(q, Element{Unit: u, Pow: n})
}

// Equal reports whether a and b are structurally equal. Product elements
// compare as a multiset, so construction order does not matter.
func Equal(a, b Unit) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.key() == b.key()
}

var superscriptDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(n int) string {
	if n == 1 {
		return ""
	}
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteRune(superscriptDigits[d-'0'])
	}
	return b.String()
}
