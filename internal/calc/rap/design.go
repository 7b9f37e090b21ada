package rap

import (
	"math"

	"MineRappa/internal/units"
)

// squatRatio is the width/height ratio above which a pillar is treated as
// squat and evaluated with the high-ratio Stacey-Page formula.
const squatRatio = 10.0

// fallbackStressGradient approximates the vertical stress gradient, in psi
// per foot of depth, when the overburden unit weight is not known.
const fallbackStressGradient = 1.1

// RoomAndPillar is a room-and-pillar design under evaluation. Fields are
// set one by one as input arrives; a nil field is unset. Derived values
// fail with a *MissingInputError naming the first unset prerequisite.
type RoomAndPillar struct {
	Pillar   *Pillar
	RoomSpan *units.Quantity
	Formula  *Formula

	FrictionAngle     *units.Quantity
	Cohesion          *units.Quantity
	RMR               *float64
	SeamHeight        *units.Quantity
	SeamDip           *units.Quantity
	MineDepth         *units.Quantity
	FloorDensity      *units.Quantity
	OverburdenDensity *units.Quantity

	DesignType     DesignType
	FragmentMethod FragmentMethod
	Location       Location
	OreType        OreType
}

// New returns a design around pillar with the given room span.
func New(pillar *Pillar, roomSpan units.Quantity) *RoomAndPillar {
	return &RoomAndPillar{Pillar: pillar, RoomSpan: &roomSpan}
}

// UseFormula selects f.
func (r *RoomAndPillar) UseFormula(f Formula) { r.Formula = &f }

// SelectFormula settles the formula for the design type. A redesign keeps
// the engineer's choice; an initial design takes DecideFormula's pick.
func (r *RoomAndPillar) SelectFormula() (Formula, error) {
	switch r.DesignType {
	case Redesign:
		if r.Formula == nil {
			return Formula{}, missing("formula")
		}
		return *r.Formula, nil
	case InitialDesign:
		f := DecideFormula(r.OreType, r.Location)
		r.Formula = &f
		return f, nil
	}
	return Formula{}, missing("design_type")
}

func (r *RoomAndPillar) pillar() (*Pillar, error) {
	if r.Pillar == nil {
		return nil, missing("pillar")
	}
	return r.Pillar, nil
}

func (r *RoomAndPillar) formula() (Formula, error) {
	if r.Formula == nil {
		return Formula{}, missing("formula")
	}
	return *r.Formula, nil
}

func (r *RoomAndPillar) sample() (*Sample, error) {
	p, err := r.pillar()
	if err != nil {
		return nil, err
	}
	if p.Sample == nil {
		return nil, missing("sample")
	}
	return p.Sample, nil
}

func field(q *units.Quantity, name string) (units.Quantity, error) {
	if q == nil {
		return units.Quantity{}, missing(name)
	}
	return *q, nil
}

// VerticalPreMiningStress is the overburden unit weight times the mine
// depth. Without a unit weight it falls back to 1.1 psi per foot of depth.
func (r *RoomAndPillar) VerticalPreMiningStress() (units.Quantity, error) {
	depth, err := field(r.MineDepth, "mine_depth")
	if err != nil {
		return units.Quantity{}, err
	}
	if r.OverburdenDensity == nil {
		ft, err := depth.In(units.Foot)
		if err != nil {
			return units.Quantity{}, err
		}
		return units.New(fallbackStressGradient*ft, units.PSI), nil
	}
	if !r.OverburdenDensity.Is(units.UnitWeight) {
		return units.Quantity{}, &units.DimensionalityError{Op: "weigh overburden with", From: r.OverburdenDensity.Dimension(), To: units.UnitWeight}
	}
	if !depth.Is(units.Length) {
		return units.Quantity{}, &units.DimensionalityError{Op: "measure depth with", From: depth.Dimension(), To: units.Length}
	}
	return r.OverburdenDensity.Mul(depth).To(units.Megapascal)
}

// PillarStress uses the tributary area method: the pre-mining stress
// scaled by (pillar plus room) area over pillar area.
func (r *RoomAndPillar) PillarStress() (units.Quantity, error) {
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
	l, w, s := p.Length().SI(), p.Width().SI(), span.SI()
	return sv.Scale((l + s) * (w + s) / (l * w)), nil
}

// ExtractionRatio is the percentage of the seam removed, to 2 decimals.
func (r *RoomAndPillar) ExtractionRatio() (float64, error) {
	p, err := r.pillar()
	if err != nil {
		return 0, err
	}
	span, err := field(r.RoomSpan, "room_span")
	if err != nil {
		return 0, err
	}
	l, w, s := p.Length().SI(), p.Width().SI(), span.SI()
	left := (w / (w + s)) * (l / (l + s))
	return units.Round(100*(1-left), 2), nil
}

// PillarStrength evaluates the selected formula. C.M.R.I. is computed in
// closed form from the mine depth; otherwise a squat pillar (w/h > 10) is
// always evaluated with HighStaceyPage.
func (r *RoomAndPillar) PillarStrength() (units.Quantity, error) {
	f, err := r.formula()
	if err != nil {
		return units.Quantity{}, err
	}
	if f.Odd() == CMRI {
		return r.cmri(f)
	}
	p, err := r.pillar()
	if err != nil {
		return units.Quantity{}, err
	}
	if p.WidthHeightRatio() > squatRatio {
		return r.HighStaceyPage()
	}
	return f.PillarStrength(p, nil)
}

// cmri is α·σc·h^β + (H/160)(w/h − 1) in MPa and metres.
func (r *RoomAndPillar) cmri(f Formula) (units.Quantity, error) {
	s, err := r.sample()
	if err != nil {
		return units.Quantity{}, err
	}
	depth, err := field(r.MineDepth, "mine_depth")
	if err != nil {
		return units.Quantity{}, err
	}
	sc, err := s.Strength.In(units.Megapascal)
	if err != nil {
		return units.Quantity{}, err
	}
	h, err := r.Pillar.Height().In(units.Metre)
	if err != nil {
		return units.Quantity{}, err
	}
	d, err := depth.In(units.Metre)
	if err != nil {
		return units.Quantity{}, err
	}
	v := f.Alpha()*sc*math.Pow(h, f.Beta()) + (d/160)*(r.Pillar.WidthHeightRatio()-1)
	return units.New(v, units.Megapascal), nil
}

// HighStaceyPage is the Stacey-Page strength for squat pillars. The pillar
// is reduced to a square of equal hydraulic radius and the sample's Gaddy
// factor serves as k.
func (r *RoomAndPillar) HighStaceyPage() (units.Quantity, error) {
	s, err := r.sample()
	if err != nil {
		return units.Quantity{}, err
	}
	k, err := s.GaddyFactor().In(units.Megapascal)
	if err != nil {
		return units.Quantity{}, err
	}
	p := r.Pillar
	l, w, h := p.Length().SI(), p.Width().SI(), p.Height().SI()
	we := 4 * l * w / (2*l + 2*w)
	outer := k * (2.5 / math.Pow(we*h, 0.07))
	inner := 0.13*(math.Pow(we/(4.5*h), 4.5)-1) + 1
	return units.New(outer*inner, units.Megapascal), nil
}

// FactorOfSafety is pillar strength over pillar stress.
func (r *RoomAndPillar) FactorOfSafety() (float64, error) {
	strength, err := r.PillarStrength()
	if err != nil {
		return 0, err
	}
	stress, err := r.PillarStress()
	if err != nil {
		return 0, err
	}
	return strength.Div(stress).Float()
}

// GoodFactorOfSafety reports whether the factor of safety lies in the
// selected formula's band.
func (r *RoomAndPillar) GoodFactorOfSafety() (bool, error) {
	f, err := r.formula()
	if err != nil {
		return false, err
	}
	fos, err := r.FactorOfSafety()
	if err != nil {
		return false, err
	}
	return f.IsGoodFactorOfSafety(fos), nil
}
