package propval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/propfilter/internal/units"
)

func TestComparer_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same integer", Integer(1), Integer(1), true},
		{"different integer", Integer(1), Integer(2), false},
		{"same amount", NewAmount(1, units.Meter, 0), NewAmount(1, units.Meter, 0), true},
		{"converted amount", NewAmount(1, units.Meter, 0), NewAmount(100, units.CentiMeter, 0), true},
		{"meter vs centimeter", NewAmount(1, units.Meter, 0), NewAmount(1, units.CentiMeter, 0), false},
		{"decimals ignored", NewAmount(5, units.Meter, 0), NewAmount(5, units.Meter, 3), true},
		{"affine", NewAmount(0, units.Celsius, 0), NewAmount(273.15, units.Kelvin, 2), true},
		{"different quantity", NewAmount(1, units.Meter, 0), NewAmount(1, units.Second, 0), false},
		{"same text", Text("abc"), Text("abc"), true},
		{"different text", Text("abc"), Text("abd"), false},
		{"text NFC", Text("caf\u00e9"), Text("cafe\u0301"), true},
		{"integer vs amount", Integer(1), NewAmount(1, units.One, 0), false},
		{"integer vs text", Integer(1), Text("1"), false},
		{"nil vs value", nil, Integer(1), false},
		{"nil vs nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultComparer.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, DefaultComparer.Equal(tt.b, tt.a), "symmetric")
		})
	}
}

func TestComparer_Epsilon(t *testing.T) {
	a := NewAmount(1, units.Meter, 0)
	b := NewAmount(1.0005, units.Meter, 0)

	assert.False(t, DefaultComparer.Equal(a, b))
	assert.True(t, Comparer{Epsilon: 0.001}.Equal(a, b))

	c, err := Comparer{Epsilon: 0.001}.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestComparer_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"integer less", Integer(1), Integer(2), -1},
		{"integer equal", Integer(2), Integer(2), 0},
		{"integer greater", Integer(3), Integer(2), 1},
		{"amount same unit", NewAmount(2, units.Meter, 0), NewAmount(1, units.Meter, 0), 1},
		{"amount converted", NewAmount(1, units.Meter, 0), NewAmount(150, units.CentiMeter, 0), -1},
		{"flow rate", NewAmount(0.01, units.CubicMeterPerSecond, 2), NewAmount(36, units.CubicMeterPerHour, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultComparer.Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparer_Compare_Errors(t *testing.T) {
	_, err := Compare(Text("a"), Text("b"))
	assert.True(t, errors.Is(err, ErrNotComparable))

	_, err = Compare(Integer(1), NewAmount(1, units.Meter, 0))
	assert.True(t, errors.Is(err, ErrNotComparable))

	_, err = Compare(nil, Integer(1))
	assert.True(t, errors.Is(err, ErrNotComparable))

	_, err = Compare(NewAmount(1, units.Meter, 0), NewAmount(1, units.Kilogram, 0))
	assert.True(t, units.IsIncompatibleQuantity(err))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", Integer(1).Kind().String())
	assert.Equal(t, "amount", NewAmount(1, units.Meter, 0).Kind().String())
	assert.Equal(t, "text", Text("").Kind().String())
	assert.Equal(t, "unknown", Kind(0).String())
}
