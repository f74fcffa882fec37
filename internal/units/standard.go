package units

import "math"

// Standard units. These are plain values; Standard() binds them to the names
// used in literal text.
var (
	One     = NewBase(Dimensionless, "")
	Percent = NewAlternate("%", One, Linear{Factor: 0.01})

	Radian  = NewBase(Angle, "rad")
	Degrees = NewAlternate("°", Radian, Linear{Factor: math.Pi / 180})

	Meter      = NewBase(Length, "m")
	CentiMeter = NewAlternate("cm", Meter, Linear{Factor: 0.01})
	Millimeter = NewAlternate("mm", Meter, Linear{Factor: 0.001})
	KiloMeter  = NewAlternate("km", Meter, Linear{Factor: 1000})
	Inch       = NewAlternate("in", Meter, Linear{Factor: 0.0254})
	Foot       = NewAlternate("ft", Meter, Linear{Factor: 0.3048})

	Kilogram = NewBase(Mass, "kg")
	Gram     = NewAlternate("g", Kilogram, Linear{Factor: 0.001})
	Pound    = NewAlternate("lb", Kilogram, Linear{Factor: 0.45359237})

	Second = NewBase(Duration, "s")
	Minute = NewAlternate("min", Second, Linear{Factor: 60})
	Hour   = NewAlternate("h", Second, Linear{Factor: 3600})
	Day    = NewAlternate("d", Second, Linear{Factor: 86400})

	Kelvin     = NewBase(Temperature, "K")
	Celsius    = NewAlternate("°C", Kelvin, Affine{Factor: 1, Offset: 273.15})
	Fahrenheit = NewAlternate("°F", Kelvin, Affine{Factor: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0})

	SquareMeter = Pow(Area, Meter, 2)
	CubicMeter  = Pow(Volume, Meter, 3)
	Liter       = NewAlternate("l", CubicMeter, Linear{Factor: 0.001})

	MeterPerSecond      = Divide(Velocity, Meter, Second)
	CubicMeterPerSecond = Divide(VolumeFlow, CubicMeter, Second)
	CubicMeterPerHour   = Divide(VolumeFlow, CubicMeter, Hour)
	LiterPerSecond      = Divide(VolumeFlow, Liter, Second)

	Newton = NewAlternate("N", NewProduct(Force,
		Element{Unit: Kilogram, Pow: 1},
		Element{Unit: Meter, Pow: 1},
		Element{Unit: Second, Pow: -2},
	), nil)
	Joule        = NewAlternate("J", Times(Energy, Newton, Meter), nil)
	KiloWattHour = NewAlternate("kWh", Joule, Linear{Factor: 3.6e6})
	Watt         = NewAlternate("W", Divide(Power, Joule, Second), nil)
	KiloWatt     = NewAlternate("kW", Watt, Linear{Factor: 1000})

	Pascal     = NewAlternate("Pa", Divide(Pressure, Newton, SquareMeter), nil)
	KiloPascal = NewAlternate("kPa", Pascal, Linear{Factor: 1000})
	Bar        = NewAlternate("bar", Pascal, Linear{Factor: 1e5})
)

var standard = NewTable(map[string]Unit{
	"One":                 One,
	"Percent":             Percent,
	"Radian":              Radian,
	"Degrees":             Degrees,
	"Meter":               Meter,
	"CentiMeter":          CentiMeter,
	"Millimeter":          Millimeter,
	"KiloMeter":           KiloMeter,
	"Inch":                Inch,
	"Foot":                Foot,
	"Kilogram":            Kilogram,
	"Gram":                Gram,
	"Pound":               Pound,
	"Second":              Second,
	"Minute":              Minute,
	"Hour":                Hour,
	"Day":                 Day,
	"Kelvin":              Kelvin,
	"Celsius":             Celsius,
	"Fahrenheit":          Fahrenheit,
	"SquareMeter":         SquareMeter,
	"CubicMeter":          CubicMeter,
	"Liter":               Liter,
	"MeterPerSecond":      MeterPerSecond,
	"CubicMeterPerSecond": CubicMeterPerSecond,
	"CubicMeterPerHour":   CubicMeterPerHour,
	"LiterPerSecond":      LiterPerSecond,
	"Newton":              Newton,
	"Joule":               Joule,
	"KiloWattHour":        KiloWattHour,
	"Watt":                Watt,
	"KiloWatt":            KiloWatt,
	"Pascal":              Pascal,
	"KiloPascal":          KiloPascal,
	"Bar":                 Bar,
})

// Standard returns the built-in vocabulary. The table is shared and
// immutable; use With or CompileCatalog to extend it.
func Standard() *Table {
	return standard
}
