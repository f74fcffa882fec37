package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"meter to centimeter", 1, Meter, CentiMeter, 100},
		{"centimeter to meter", 250, CentiMeter, Meter, 2.5},
		{"millimeter to centimeter", 15, Millimeter, CentiMeter, 1.5},
		{"foot to inch", 1, Foot, Inch, 12},
		{"celsius to kelvin", 5, Celsius, Kelvin, 278.15},
		{"kelvin to celsius", 0, Kelvin, Celsius, -273.15},
		{"fahrenheit to celsius", 212, Fahrenheit, Celsius, 100},
		{"celsius to fahrenheit", -40, Celsius, Fahrenheit, -40},
		{"hour to second", 2, Hour, Second, 7200},
		{"cubic meter per hour to per second", 3600, CubicMeterPerHour, CubicMeterPerSecond, 1},
		{"liter per second to cubic meter per hour", 1, LiterPerSecond, CubicMeterPerHour, 3.6},
		{"kilowatt hour to joule", 1, KiloWattHour, Joule, 3.6e6},
		{"kilowatt to watt", 2.5, KiloWatt, Watt, 2500},
		{"bar to kilopascal", 1, Bar, KiloPascal, 100},
		{"percent to one", 50, Percent, One, 0.5},
		{"degrees to radian", 180, Degrees, Radian, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestConvert_IdentityIsExact(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1e-300, 1e300, math.Pi, 5.2}
	for _, u := range Standard().Names() {
		unit, _ := Standard().Unit(u)
		for _, v := range values {
			got, err := Convert(v, unit, unit)
			require.NoError(t, err)
			assert.Equal(t, v, got, "unit %s", u)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	got, err := Convert(37.5, Celsius, Fahrenheit)
	require.NoError(t, err)
	back, err := Convert(got, Fahrenheit, Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 37.5, back, tolerance)
}

func TestConvert_IncompatibleQuantity(t *testing.T) {
	_, err := Convert(1, Meter, Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompatibleQuantity)
	assert.True(t, IsIncompatibleQuantity(err))

	var qe *IncompatibleQuantityError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, Length, qe.From)
	assert.Equal(t, Duration, qe.To)
}

func TestConvert_NilUnit(t *testing.T) {
	_, err := Convert(1, nil, Meter)
	assert.Error(t, err)
}

func TestConvert_NonLinearProduct(t *testing.T) {
	perCelsius := Divide(Temperature, Celsius, Second)
	perKelvin := Divide(Temperature, Kelvin, Second)

	_, err := Convert(1, perCelsius, perKelvin)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonLinearProduct)
}

func TestConverter_Inverse(t *testing.T) {
	converters := []Converter{
		Identity{},
		Linear{Factor: 0.01},
		Affine{Factor: 5.0 / 9.0, Offset: 255.37},
	}
	for _, c := range converters {
		assert.InDelta(t, 42.0, c.Inverse().Convert(c.Convert(42)), tolerance, "%#v", c)
	}
}

func TestConverter_IsLinear(t *testing.T) {
	assert.True(t, Identity{}.IsLinear())
	assert.True(t, Linear{Factor: 3}.IsLinear())
	assert.True(t, Affine{Factor: 3}.IsLinear())
	assert.False(t, Affine{Factor: 1, Offset: 273.15}.IsLinear())
}

func TestConverterBetween_ComposesToSimplestForm(t *testing.T) {
	c, err := ConverterBetween(Meter, Meter)
	require.NoError(t, err)
	assert.Equal(t, Identity{}, c)

	c, err = ConverterBetween(CentiMeter, Meter)
	require.NoError(t, err)
	assert.IsType(t, Linear{}, c)

	c, err = ConverterBetween(Celsius, Kelvin)
	require.NoError(t, err)
	assert.IsType(t, Affine{}, c)
}
