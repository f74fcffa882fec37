package filter

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/propfilter/internal/units"
)

func TestDescribe_Golden(t *testing.T) {
	f := MustParse(`a=1:Meter~5:Meter&b!=null&c>=d&e=1,2,"x"&f<0.5:Bar&g=20:Celsius~30:Kelvin`,
		units.Standard())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "describe_default", []byte(Describe(f)+"\n"))
}

func TestDescriber_Labels(t *testing.T) {
	d := Describer{
		Messages: Messages{
			MsgEqual: "{property} ska vara {value}",
			MsgRange: "{low}-{high}",
			MsgOr:    " eller ",
		},
		Properties: map[string]string{"len": "Längd"},
		Units:      map[string]string{"Meter": "m"},
	}
	f := MustParse("len=1:Meter~5:Meter,7:Meter&n>1", units.Standard())

	assert.Equal(t, "Längd ska vara 1-5 m eller 7 m\nn must be greater than 1", d.Describe(f))
}

func TestDescribe_Empty(t *testing.T) {
	assert.Equal(t, "", Describe(MustParse("", units.Standard())))
	assert.Equal(t, "", Describe(nil))
}
