package rap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

func TestCoalPillarBieniawski(t *testing.T) {
	d := coalDesign(t)

	strength, err := d.PillarStrength()
	require.NoError(t, err)
	assert.Equal(t, units.PSI, strength.Unit())
	assert.Equal(t, 3460.0, units.Round(strength.Magnitude(), 0))

	sv, err := d.VerticalPreMiningStress()
	require.NoError(t, err)
	assert.Equal(t, units.PSI, sv.Unit())
	assert.InDelta(t, 550, sv.Magnitude(), 1e-9)

	stress, err := d.PillarStress()
	require.NoError(t, err)
	assert.Equal(t, 876.0, units.Round(stress.Magnitude(), 0))

	fos, err := d.FactorOfSafety()
	require.NoError(t, err)
	assert.Equal(t, 3.95, units.Round(fos, 2))

	good, err := d.GoodFactorOfSafety()
	require.NoError(t, err)
	assert.False(t, good, "3.95 is above the Bieniawski band")

	er, err := d.ExtractionRatio()
	require.NoError(t, err)
	assert.Equal(t, 37.21, er)
}

func TestCustomExponentialMetric(t *testing.T) {
	d := metricDesign(t)

	sv, err := d.VerticalPreMiningStress()
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal, sv.Unit())
	assert.InDelta(t, 3.0, sv.Magnitude(), 1e-9)

	stress, err := d.PillarStress()
	require.NoError(t, err)
	assert.InDelta(t, 18.75, stress.Magnitude(), 1e-9)

	strength, err := d.PillarStrength()
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal, strength.Unit())
	assert.Equal(t, 11.37, units.Round(strength.Magnitude(), 2))

	fos, err := d.FactorOfSafety()
	require.NoError(t, err)
	assert.Equal(t, 0.61, units.Round(fos, 2))

	w, err := d.PillarWidthFromFOSAndStress()
	require.NoError(t, err)
	assert.Equal(t, units.Metre, w.Unit())
	assert.Equal(t, 7.5, units.Round(w.Magnitude(), 1))
	assert.Equal(t, w, d.Pillar.Width())
	assert.Equal(t, w, d.Pillar.Length())
	assert.Equal(t, units.New(4, units.Metre), d.Pillar.Height())

	// The resized pillar meets the recommended factor of safety.
	fos, err = d.FactorOfSafety()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, fos, 1e-3)
}

func TestFloorBearingCapacity(t *testing.T) {
	d := floorDesign(t)

	get := func(fn func() (float64, error)) float64 {
		v, err := fn()
		require.NoError(t, err)
		return v
	}
	assert.InDelta(t, 0.6, get(d.SfGamma), 1e-9)
	assert.Equal(t, 1.47, units.Round(get(d.SfQ), 2))
	assert.Equal(t, 14.72, units.Round(get(d.BcfQ), 2))
	assert.Equal(t, 10.94, units.Round(get(d.BcfGamma), 2))
	assert.Equal(t, 25.80, units.Round(get(d.BcfC), 2))
	assert.Equal(t, 5.47, units.Round(get(d.BearingCapacityFactorOfSafety), 2))

	bc, err := d.BearingCapacity()
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal, bc.Unit())
	assert.Equal(t, 47.28, units.Round(bc.Magnitude(), 2))
}

func TestFrictionlessFloor(t *testing.T) {
	d := floorDesign(t)
	d.FrictionAngle = ptr(units.New(0, units.Degree))

	nc, err := d.BcfC()
	require.NoError(t, err)
	assert.InDelta(t, 5.1416, nc, 1e-4)

	bc, err := d.BearingCapacity()
	require.NoError(t, err)
	// No friction term: Nγ is zero. Cohesion 1.2 × (π + 2 + B/L).
	assert.InDelta(t, 1.2*(3.14159265+3), bc.Magnitude(), 1e-6)
}

func TestMissingInputs(t *testing.T) {
	p := pillar(t, units.New(3, units.Metre), units.New(10, units.Metre), units.New(10, units.Metre))
	d := rap.New(p, units.New(6, units.Metre))

	var missing *rap.MissingInputError

	_, err := d.VerticalPreMiningStress()
	require.ErrorIs(t, err, rap.ErrMissingInput)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "mine_depth", missing.Field)

	_, err = d.PillarStrength()
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "formula", missing.Field)

	_, err = d.SfQ()
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "friction_angle", missing.Field)

	// sf_gamma needs only the pillar.
	_, err = d.SfGamma()
	assert.NoError(t, err)

	d.FrictionAngle = ptr(units.New(30, units.Degree))
	_, err = d.BearingCapacity()
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "floor_density", missing.Field)

	_, err = (&rap.RoomAndPillar{}).ExtractionRatio()
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "pillar", missing.Field)
}

func TestDimensionMismatch(t *testing.T) {
	d := metricDesign(t)
	d.OverburdenDensity = ptr(units.New(20, units.Megapascal))
	_, err := d.VerticalPreMiningStress()
	assert.True(t, units.IsDimensionality(err))
}

func TestQueriesAreIdempotent(t *testing.T) {
	d := floorDesign(t)
	d.UseFormula(customExponential(t))

	for _, fn := range []func() (units.Quantity, error){
		d.VerticalPreMiningStress, d.PillarStress, d.PillarStrength, d.BearingCapacity,
	} {
		a, errA := fn()
		b, errB := fn()
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
	a, _ := d.FactorOfSafety()
	b, _ := d.FactorOfSafety()
	assert.Equal(t, a, b)
	assert.Equal(t, d.Outputs(), d.Outputs())
}

func TestSquatPillarUsesHighStaceyPage(t *testing.T) {
	d := coalDesign(t)
	require.NoError(t, d.Pillar.SetSquare(units.New(60, units.Foot)))
	d.Pillar.Geometry.Height = units.New(5, units.Foot)
	require.Greater(t, d.Pillar.WidthHeightRatio(), 10.0)

	high, err := d.HighStaceyPage()
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal, high.Unit())
	assert.Equal(t, 883.1, units.Round(high.Magnitude(), 1))

	for _, name := range []string{"Bieniawski", "Holland", "Salamon-Munro"} {
		f, err := rap.Lookup(name)
		require.NoError(t, err)
		d.UseFormula(f)
		got, err := d.PillarStrength()
		require.NoError(t, err)
		assert.Equal(t, high, got, name)
	}
}

func TestCMRIStrength(t *testing.T) {
	s, err := rap.NewSample(units.New(40, units.Megapascal), units.New(54, units.Millimetre), units.New(54, units.Millimetre), true)
	require.NoError(t, err)
	p, err := rap.NewPillar(s, units.New(3, units.Metre), units.New(15, units.Metre), units.Quantity{})
	require.NoError(t, err)

	d := rap.New(p, units.New(6, units.Metre))
	d.DesignType = rap.InitialDesign
	d.Location = rap.India
	d.OreType = rap.Coal
	f, err := d.SelectFormula()
	require.NoError(t, err)
	assert.Equal(t, rap.CMRI, f.Odd())

	_, err = d.PillarStrength()
	var missing *rap.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "mine_depth", missing.Field)

	d.MineDepth = ptr(units.New(200, units.Metre))
	strength, err := d.PillarStrength()
	require.NoError(t, err)
	assert.Equal(t, 12.27, units.Round(strength.Magnitude(), 2))

	_, err = f.PillarStrength(p, nil)
	assert.ErrorIs(t, err, rap.ErrUnsupportedFormula)
}

func TestSelectFormula(t *testing.T) {
	d := coalDesign(t)
	d.Formula = nil

	_, err := d.SelectFormula()
	var missing *rap.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "design_type", missing.Field)

	d.DesignType = rap.Redesign
	_, err = d.SelectFormula()
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "formula", missing.Field)

	holland, err := rap.Lookup("holland")
	require.NoError(t, err)
	d.UseFormula(holland)
	f, err := d.SelectFormula()
	require.NoError(t, err)
	assert.Equal(t, "Holland", f.Name())

	d.DesignType = rap.InitialDesign
	d.OreType = rap.Coal
	f, err = d.SelectFormula()
	require.NoError(t, err)
	assert.Equal(t, "Bieniawski", f.Name())
	assert.Equal(t, "Bieniawski", d.Formula.Name())
}

func TestOutputs(t *testing.T) {
	d := coalDesign(t)
	names := map[string]bool{}
	for _, o := range d.Outputs() {
		names[o.Name] = true
		assert.NotEmpty(t, o.Label)
	}
	assert.True(t, names["factor_of_safety"])
	assert.True(t, names["extraction_ratio"])
	assert.True(t, names["sf_gamma"])
	assert.False(t, names["bearing_capacity"], "no floor inputs were given")
	assert.Equal(t, "Room Span", rap.Label("room_span"))
	assert.Equal(t, "unknown_thing", rap.Label("unknown_thing"))
}
