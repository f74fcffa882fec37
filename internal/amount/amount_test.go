package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/propfilter/internal/units"
)

const eps = 1e-9

func TestNew_ClampsDecimals(t *testing.T) {
	a := New(1, units.Meter, -3)
	assert.Equal(t, 0, a.Decimals)
}

func TestAmount_ConvertTo(t *testing.T) {
	a := New(1.5, units.Meter, 1)

	cm, err := a.ConvertTo(units.CentiMeter)
	require.NoError(t, err)
	assert.InDelta(t, 150, cm.Value, eps)
	assert.True(t, units.Equal(units.CentiMeter, cm.Unit))
	assert.Equal(t, 1, cm.Decimals)

	_, err = a.ConvertTo(units.Second)
	assert.ErrorIs(t, err, units.ErrIncompatibleQuantity)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Amount
		want int
	}{
		{"same unit less", New(1, units.Meter, 0), New(2, units.Meter, 0), -1},
		{"same unit greater", New(5, units.Celsius, 0), New(2, units.Celsius, 0), 1},
		{"converted equal", New(1, units.Meter, 0), New(100, units.CentiMeter, 0), 0},
		{"converted less", New(1, units.CentiMeter, 0), New(1, units.Meter, 0), -1},
		{"affine", New(0, units.Celsius, 0), New(273.15, units.Kelvin, 2), 0},
		{"flow", New(0, units.CubicMeterPerSecond, 0), New(36, units.CubicMeterPerHour, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b, eps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_IncompatibleQuantity(t *testing.T) {
	_, err := Compare(New(1, units.Meter, 0), New(1, units.Second, 0), eps)
	assert.ErrorIs(t, err, units.ErrIncompatibleQuantity)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(New(1, units.Meter, 0), New(100, units.CentiMeter, 0), eps))
	assert.False(t, Equal(New(1, units.Meter, 0), New(1, units.CentiMeter, 0), eps))
	assert.False(t, Equal(New(1, units.Meter, 0), New(1, units.Second, 0), eps))

	// Epsilon absorbs conversion noise but not real differences.
	assert.True(t, Equal(New(0.3, units.Meter, 0), New(0.1+0.2, units.Meter, 0), eps))
	assert.False(t, Equal(New(0.3, units.Meter, 0), New(0.31, units.Meter, 0), eps))
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "5.2 m", New(5.2, units.Meter, 1).String())
	assert.Equal(t, "5.00 °C", New(5, units.Celsius, 2).String())
	assert.Equal(t, "36 m³/h", New(36, units.CubicMeterPerHour, 0).String())
	assert.Equal(t, "3", New(3, units.One, 0).String())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in       string
		value    float64
		decimals int
	}{
		{"5", 5, 0},
		{"-1", -1, 0},
		{"5.0", 5, 1},
		{"5.20", 5.2, 2},
		{"0.001", 0.001, 3},
		{"-273.15", -273.15, 2},
		{" 42 ", 42, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, d, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.value, v)
			assert.Equal(t, tt.decimals, d)
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "5m"} {
		_, _, err := ParseNumber(in)
		assert.Error(t, err, in)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{5, 0, "5"},
		{5, 1, "5.0"},
		{5.2, 1, "5.2"},
		{5.25, 1, "5.25"},
		{0.1, 3, "0.100"},
		{-1, 0, "-1"},
		{1500, 0, "1500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.decimals), "%v/%d", tt.v, tt.decimals)
	}
}

func TestFormatNumber_RoundTrips(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 5.2, 1.0 / 3.0, 123456.789, 1e-7, 2.5e10} {
		for _, decimals := range []int{0, 1, 4} {
			got, _, err := ParseNumber(FormatNumber(v, decimals))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}
