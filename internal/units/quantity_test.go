package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MineRappa/internal/units"
)

func TestRoundTripConversion(t *testing.T) {
	groups := [][]units.Unit{
		{units.Metre, units.Millimetre, units.Centimetre, units.Kilometre, units.Inch, units.Foot, units.Yard},
		{units.Pascal, units.Kilopascal, units.Megapascal, units.Gigapascal, units.PSI, units.KSI, units.PSF},
		{units.NewtonPerCubicMetre, units.KilonewtonPerCubicMetre, units.MeganewtonPerCubicMetre, units.PoundForcePerCubicFoot},
		{units.Radian, units.Degree},
	}
	for _, g := range groups {
		for _, from := range g {
			for _, to := range g {
				q := units.New(123.456, from)
				there, err := q.To(to)
				require.NoError(t, err)
				back, err := there.To(from)
				require.NoError(t, err)
				assert.InDelta(t, q.Magnitude(), back.Magnitude(), 1e-9, "%s -> %s -> %s", from, to, from)
			}
		}
	}
}

func TestKnownConversions(t *testing.T) {
	cases := []struct {
		name string
		q    units.Quantity
		to   units.Unit
		want float64
	}{
		{"FeetToMetres", units.New(500, units.Foot), units.Metre, 152.4},
		{"MillimetresToInches", units.New(54, units.Millimetre), units.Inch, 2.125984},
		{"PsiToMPa", units.New(1000, units.PSI), units.Megapascal, 6.894757},
		{"PcfToKNPerCubicMetre", units.New(1, units.PoundForcePerCubicFoot), units.KilonewtonPerCubicMetre, 0.157087},
		{"DegreesToRadians", units.New(180, units.Degree), units.Radian, 3.141593},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.q.In(tc.to)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestIncompatibleDimensions(t *testing.T) {
	length := units.New(3, units.Metre)
	stress := units.New(3, units.Megapascal)

	_, err := length.To(units.Megapascal)
	assert.True(t, units.IsDimensionality(err))

	_, err = length.Add(stress)
	assert.True(t, units.IsDimensionality(err))

	_, err = length.Sub(stress)
	assert.True(t, units.IsDimensionality(err))

	_, err = length.Compare(stress)
	var de *units.DimensionalityError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "compare", de.Op)
	assert.Equal(t, units.Length, de.From)
	assert.Equal(t, units.Stress, de.To)
}

func TestArithmetic(t *testing.T) {
	a := units.New(1, units.Foot)
	b := units.New(12, units.Inch)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, units.Foot, sum.Unit())
	assert.InDelta(t, 2.0, sum.Magnitude(), 1e-12)

	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	ratio := units.New(60, units.Foot).Div(units.New(7, units.Foot))
	assert.True(t, ratio.Is(units.Dimensionless))
	assert.InDelta(t, 60.0/7.0, ratio.Magnitude(), 1e-12)

	stress := units.New(20, units.KilonewtonPerCubicMetre).Mul(units.New(150, units.Metre))
	require.True(t, stress.Is(units.Stress))
	mpa, err := stress.In(units.Megapascal)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mpa, 1e-12)

	scaled := units.New(4, units.Metre).Mul(units.Scalar(2.5))
	assert.Equal(t, units.Metre, scaled.Unit())
	assert.InDelta(t, 10.0, scaled.Magnitude(), 1e-12)
}

func TestZeroLength(t *testing.T) {
	assert.True(t, units.ZeroLength.Is(units.Length))
	assert.True(t, units.ZeroLength.IsZero())

	m, err := units.New(-2, units.Foot).Max(units.ZeroLength)
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 37.21, units.Round(37.2093, 2))
	assert.Equal(t, 3460.0, units.New(3460.4, units.PSI).Round(0).Magnitude())
	assert.Equal(t, "3460 psi", units.New(3460, units.PSI).String())
}
