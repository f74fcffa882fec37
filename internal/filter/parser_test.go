package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/propfilter/internal/units"
)

func TestParse_Structure(t *testing.T) {
	f, err := Parse(`a=1,2~5 & b.c>=2.50:Meter & d!=null,"x" & e<f`, units.Standard())
	require.NoError(t, err)
	require.Len(t, f.Clauses, 4)

	a := f.Clauses[0]
	assert.Equal(t, "a", a.Property)
	assert.Equal(t, Equal, a.Operator)
	assert.Equal(t, 0, a.Pos)
	assert.Equal(t, []Term{
		IntLiteral{Value: 1},
		Range{Low: IntLiteral{Value: 2}, High: IntLiteral{Value: 5}},
	}, a.Terms)

	b := f.Clauses[1]
	assert.Equal(t, "b.c", b.Property)
	assert.Equal(t, GreaterOrEqual, b.Operator)
	require.Len(t, b.Terms, 1)
	lit, ok := b.Terms[0].(AmountLiteral)
	require.True(t, ok)
	assert.Equal(t, 2.5, lit.Amount.Value)
	assert.Equal(t, 2, lit.Amount.Decimals)
	assert.Equal(t, "Meter", lit.UnitName)
	assert.True(t, units.Equal(units.Meter, lit.Amount.Unit))

	d := f.Clauses[2]
	assert.Equal(t, NotEqual, d.Operator)
	assert.Equal(t, []Term{NullLiteral{}, TextLiteral{Value: "x"}}, d.Terms)

	e := f.Clauses[3]
	assert.Equal(t, Less, e.Operator)
	assert.Equal(t, []Term{PropertyRef{Name: "f"}}, e.Terms)
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "   "} {
		f, err := Parse(text, units.Standard())
		require.NoError(t, err)
		assert.True(t, f.IsEmpty())
		assert.Equal(t, "", f.String())
	}
}

func TestParse_CanonicalString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a=1", "a=1"},
		{" a = 1 , 2 ", "a=1,2"},
		{"a=1:Meter~5.0:Meter", "a=1:Meter~5.0:Meter"},
		{`b = "q\"t" & c != null`, `b="q\"t"&c!=null`},
		{"b>=a&a<=b&c>0&d<0", "b>=a&a<=b&c>0&d<0"},
		{"flow=36:CubicMeterPerHour~163:CubicMeterPerHour", "flow=36:CubicMeterPerHour~163:CubicMeterPerHour"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f := MustParse(tt.text, units.Standard())
			assert.Equal(t, tt.want, f.String())
			assert.Equal(t, tt.text, f.Text)

			again := MustParse(f.String(), units.Standard())
			assert.Equal(t, f.String(), again.String())
			assert.Equal(t, f.ID, again.ID)
		})
	}
}

func TestParse_ID(t *testing.T) {
	tbl := units.Standard()
	a := MustParse("a=1&b=2", tbl)
	b := MustParse(" a = 1 & b = 2 ", tbl)
	c := MustParse("a=1&b=3", tbl)

	assert.Equal(t, a.ID, b.ID, "whitespace does not change identity")
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, a.ID, New(a.Clauses...).ID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
	}{
		{"missing operator", "a 1", 2},
		{"missing value", "a=", 2},
		{"missing property", "=1", 0},
		{"dangling and", "a=1&", 4},
		{"dangling comma", "a=1,", 4},
		{"double operator", "a==1", 2},
		{"unknown operator", "a=>1", 2},
		{"decimal without unit", "a=1.5", 2},
		{"missing unit name", "a=1:", 4},
		{"relational multi term", "a>1,2", 1},
		{"relational range", "a<=1~2", 1},
		{"null range bound", "a=null~2", 2},
		{"text range bound", `a=1~"x"`, 4},
		{"mixed range bounds", "a=1~2:Meter", 2},
		{"range quantity mismatch", "a=1:Meter~2:Second", 2},
		{"trailing junk", "a=1 b", 4},
		{"lexer error", "a=1#", 3},
		{"integer overflow", "a=99999999999999999999", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, units.Standard())
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
			assert.Equal(t, tt.pos, pe.Pos, pe.Error())
			assert.Equal(t, tt.text, pe.Input)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := Parse("a=1:Meter&b=2:Parsec", units.Standard())
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 14, pe.Pos)
	assert.True(t, errors.Is(err, units.ErrUnknownUnit))

	var ue *units.UnknownUnitError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Parsec", ue.Name)
}

func TestParse_CustomTable(t *testing.T) {
	tbl := units.Standard().With("Furlong",
		units.NewAlternate("fur", units.Meter, units.Linear{Factor: 201.168}))

	f, err := Parse("d>=1:Furlong", tbl)
	require.NoError(t, err)
	assert.Equal(t, "d>=1:Furlong", f.String())

	_, err = Parse("d>=1:Furlong", units.Standard())
	assert.True(t, units.IsUnknownUnit(err))
}

func TestFilter_Properties(t *testing.T) {
	f := MustParse("a=b,1&c>a&b=null", units.Standard())
	assert.Equal(t, []string{"a", "b", "c"}, f.Properties())

	var nilFilter *Filter
	assert.Nil(t, nilFilter.Properties())
}

func TestOperator(t *testing.T) {
	relational := map[Operator]bool{
		Equal: false, NotEqual: false,
		Greater: true, GreaterOrEqual: true, Less: true, LessOrEqual: true,
	}
	for op, want := range relational {
		assert.Equal(t, want, op.IsRelational(), op.String())
	}
	assert.Equal(t, "?", Operator(0).String())
}
