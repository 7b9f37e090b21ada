package rap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

func ptr(q units.Quantity) *units.Quantity { return &q }

func coreSample(t *testing.T) *rap.Sample {
	t.Helper()
	s, err := rap.NewSample(units.New(3822, units.PSI), units.New(40, units.Inch), units.New(54, units.Millimetre), true)
	require.NoError(t, err)
	return s
}

func pillar(t *testing.T, h, l, w units.Quantity) *rap.Pillar {
	t.Helper()
	p, err := rap.NewPillar(coreSample(t), h, l, w)
	require.NoError(t, err)
	return p
}

// coalDesign is a 60 × 80 ft coal pillar, 7 ft high, 500 ft deep, with
// 18 ft rooms and no overburden unit weight.
func coalDesign(t *testing.T) *rap.RoomAndPillar {
	t.Helper()
	p := pillar(t, units.New(7, units.Foot), units.New(80, units.Foot), units.New(60, units.Foot))
	d := rap.New(p, units.New(18, units.Foot))
	f, err := rap.Lookup("Bieniawski")
	require.NoError(t, err)
	d.UseFormula(f)
	d.MineDepth = ptr(units.New(500, units.Foot))
	return d
}

func customExponential(t *testing.T) rap.Formula {
	t.Helper()
	f, err := rap.NewFormula(rap.FormulaSpec{
		Name:     "Custom",
		Alpha:    0.4,
		Beta:     -0.6,
		KType:    rap.KOther,
		Category: rap.Exponential,
		System:   rap.Metric,
		K:        ptr(units.Scalar(15)),
		FOS:      rap.FOS{Lower: 1.3, Recommended: 1.5, Upper: 2.0},
	})
	require.NoError(t, err)
	return f
}

// metricDesign is a 4 m cube pillar with 6 m rooms at 150 m under
// 20 kN/m³ overburden.
func metricDesign(t *testing.T) *rap.RoomAndPillar {
	t.Helper()
	p := pillar(t, units.New(4, units.Metre), units.New(4, units.Metre), units.New(4, units.Metre))
	d := rap.New(p, units.New(6, units.Metre))
	d.UseFormula(customExponential(t))
	d.OverburdenDensity = ptr(units.New(20, units.KilonewtonPerCubicMetre))
	d.MineDepth = ptr(units.New(150, units.Metre))
	return d
}

// floorDesign is a 10 m square pillar, 3 m high, on a 28° floor.
func floorDesign(t *testing.T) *rap.RoomAndPillar {
	t.Helper()
	p := pillar(t, units.New(3, units.Metre), units.New(10, units.Metre), units.New(10, units.Metre))
	d := rap.New(p, units.New(6, units.Metre))
	d.FrictionAngle = ptr(units.New(28, units.Degree))
	d.Cohesion = ptr(units.New(1.2, units.Megapascal))
	d.FloorDensity = ptr(units.New(22, units.KilonewtonPerCubicMetre))
	d.MineDepth = ptr(units.New(150, units.Metre))
	d.OverburdenDensity = ptr(units.New(22.5, units.KilonewtonPerCubicMetre))
	return d
}
