package rap

import (
	"fmt"
	"math"

	"MineRappa/internal/units"
)

const (
	// MaxScanSteps bounds the unit-step scan for a sign change, in the
	// formula's length unit (feet or metres).
	MaxScanSteps = 10000
	// MaxNewtonIterations bounds the refinement once a bracket is found.
	MaxNewtonIterations = 100
	// WidthTolerance is the absolute step size at which Newton stops.
	WidthTolerance = 0.001
)

// widthEquation is f(x) = a·x^e − b·x² − u·x − c, whose positive root is
// the square pillar width at which strength equals fos × tributary stress.
type widthEquation struct {
	a, e, b, u, c float64
}

func (q widthEquation) eval(x float64) float64 {
	return q.a*math.Pow(x, q.e) - q.b*x*x - q.u*x - q.c
}

func (q widthEquation) deriv(x float64) float64 {
	return q.a*q.e*math.Pow(x, q.e-1) - 2*q.b*x - q.u
}

// newWidthEquation substitutes σ = σv·(x+s)²/x² into strength = fos·σ.
//
//	exponential: k·h^β·x^(α+2) = fos·σv·(x+s)²
//	linear:      k·α·x² + (k·β/h)·x³ = fos·σv·(x+s)²
func newWidthEquation(f Formula, k, h, s, sv, fos float64) widthEquation {
	load := fos * sv
	q := widthEquation{u: 2 * s * load, c: load * s * s}
	if f.Category() == Linear {
		q.a, q.e, q.b = k*f.Beta()/h, 3, load-k*f.Alpha()
	} else {
		q.a, q.e, q.b = k*math.Pow(h, f.Beta()), f.Alpha()+2, load
	}
	return q
}

// bracket scans x = 0, 1, 2, … for the first point whose sign differs from
// f at the start of the scan.
func (q widthEquation) bracket() (float64, error) {
	ref := 0.0
	for i := 0; i <= MaxScanSteps; i++ {
		x := float64(i)
		v := q.eval(x)
		if math.IsNaN(v) {
			return 0, &RootFindingError{Stage: "bracket", Steps: i, Last: x}
		}
		s := sign(v)
		switch {
		case ref == 0:
			ref = s
		case s == 0 || s != ref:
			return x, nil
		}
	}
	return 0, &RootFindingError{Stage: "bracket", Steps: MaxScanSteps, Last: MaxScanSteps}
}

// newton refines a root from x0.
func (q widthEquation) newton(x0 float64) (float64, error) {
	x := x0
	for i := 1; i <= MaxNewtonIterations; i++ {
		v := q.eval(x)
		if v == 0 {
			return x, nil
		}
		d := q.deriv(x)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, &RootFindingError{Stage: "newton", Steps: i, Last: x}
		}
		next := x - v/d
		if math.IsNaN(next) {
			return 0, &RootFindingError{Stage: "newton", Steps: i, Last: x}
		}
		if math.Abs(next-x) < WidthTolerance {
			return next, nil
		}
		x = next
	}
	return 0, &RootFindingError{Stage: "newton", Steps: MaxNewtonIterations, Last: x}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// PillarWidthFromFOSAndStress finds the square pillar width at which the
// selected formula reaches its recommended factor of safety under the
// tributary-area stress, then sets the pillar's width and length to it.
// This is the only derivation that modifies the design.
func (r *RoomAndPillar) PillarWidthFromFOSAndStress() (units.Quantity, error) {
	f, err := r.formula()
	if err != nil {
		return units.Quantity{}, err
	}
	if f.Category() == Odd {
		return units.Quantity{}, fmt.Errorf("%w: %s cannot be solved for width", ErrUnsupportedFormula, f.Name())
	}
	p, err := r.pillar()
	if err != nil {
		return units.Quantity{}, err
	}
	span, err := field(r.RoomSpan, "room_span")
	if err != nil {
		return units.Quantity{}, err
	}
	sv, err := r.VerticalPreMiningStress()
	if err != nil {
		return units.Quantity{}, err
	}
	fos := f.FOS().Recommended
	if fos <= 0 {
		return units.Quantity{}, missing("fos")
	}

	sys := f.System()
	k, err := f.resolveK(p, nil)
	if err != nil {
		return units.Quantity{}, err
	}
	h, err := p.Height().In(sys.LengthUnit())
	if err != nil {
		return units.Quantity{}, err
	}
	s, err := span.In(sys.LengthUnit())
	if err != nil {
		return units.Quantity{}, err
	}
	stress, err := sv.In(sys.StressUnit())
	if err != nil {
		return units.Quantity{}, err
	}

	eq := newWidthEquation(f, k, h, s, stress, fos)
	x0, err := eq.bracket()
	if err != nil {
		return units.Quantity{}, err
	}
	x, err := eq.newton(x0)
	if err != nil {
		return units.Quantity{}, err
	}
	if x <= 0 {
		return units.Quantity{}, &RootFindingError{Stage: "newton", Steps: MaxNewtonIterations, Last: x}
	}

	width := units.New(x, sys.LengthUnit())
	if err := p.SetSquare(width); err != nil {
		return units.Quantity{}, err
	}
	return width, nil
}
