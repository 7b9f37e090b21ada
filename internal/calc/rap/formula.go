package rap

import (
	"fmt"
	"math"

	"MineRappa/internal/units"
)

// KType says where a formula takes its material constant k from.
type KType int

const (
	KCubical KType = iota + 1
	KUniaxial
	KGaddy
	KOther
)

// Category is the algebraic shape of a formula.
type Category int

const (
	Linear Category = iota + 1
	Exponential
	Odd
)

// OddKind names the formulas that fit neither the linear nor the
// exponential shape. It is only set for the Odd category.
type OddKind int

const (
	NotOdd OddKind = iota
	CMRI
	HardyAgapito
)

// UnitSystem fixes the units a formula's constants were fitted in.
type UnitSystem int

const (
	Metric UnitSystem = iota + 1
	Imperial
)

// StressUnit is psi for imperial formulas and MPa for metric ones.
func (s UnitSystem) StressUnit() units.Unit {
	if s == Imperial {
		return units.PSI
	}
	return units.Megapascal
}

// LengthUnit is feet for imperial formulas and metres for metric ones.
func (s UnitSystem) LengthUnit() units.Unit {
	if s == Imperial {
		return units.Foot
	}
	return units.Metre
}

// FOS is the band of acceptable factors of safety for a formula.
type FOS struct {
	Lower       float64 `json:"lower" yaml:"lower"`
	Recommended float64 `json:"recommended" yaml:"recommended"`
	Upper       float64 `json:"upper" yaml:"upper"`
}

// FormulaSpec carries the parameters NewFormula validates.
type FormulaSpec struct {
	Name     string
	Alpha    float64
	Beta     float64
	KType    KType
	Category Category
	Odd      OddKind
	System   UnitSystem
	K        *units.Quantity
	FOS      FOS
}

// Formula is an empirical pillar strength model. Values are immutable once
// built and safe to share between designs.
type Formula struct {
	name     string
	alpha    float64
	beta     float64
	ktype    KType
	category Category
	odd      OddKind
	system   UnitSystem
	k        units.Quantity
	hasK     bool
	fos      FOS
}

// NewFormula validates spec. For linear and exponential formulas k must be
// given exactly when the constant source is KOther; the other sources are
// read from the pillar's sample at evaluation time.
func NewFormula(spec FormulaSpec) (Formula, error) {
	bad := func(format string, args ...any) (Formula, error) {
		return Formula{}, &ConstructionError{What: "formula " + spec.Name, Reason: fmt.Sprintf(format, args...)}
	}
	if spec.KType < KCubical || spec.KType > KOther {
		return bad("unknown constant source %d", spec.KType)
	}
	if spec.System != Metric && spec.System != Imperial {
		return bad("unknown unit system %d", spec.System)
	}
	switch spec.Category {
	case Linear, Exponential:
		if spec.Odd != NotOdd {
			return bad("only odd formulas carry an odd kind")
		}
		if (spec.K != nil) != (spec.KType == KOther) {
			if spec.K == nil {
				return bad("constant k is required when its source is other")
			}
			return bad("constant k must not be set when it comes from the sample")
		}
	case Odd:
		if spec.Odd != CMRI && spec.Odd != HardyAgapito {
			return bad("odd formula needs a known kind")
		}
	default:
		return bad("unknown category %d", spec.Category)
	}
	if spec.FOS.Lower > spec.FOS.Recommended || spec.FOS.Recommended > spec.FOS.Upper {
		return bad("factor of safety band %v is not ordered", spec.FOS)
	}

	f := Formula{
		name:     spec.Name,
		alpha:    spec.Alpha,
		beta:     spec.Beta,
		ktype:    spec.KType,
		category: spec.Category,
		odd:      spec.Odd,
		system:   spec.System,
		fos:      spec.FOS,
	}
	if spec.K != nil {
		k := *spec.K
		if k.Is(units.Dimensionless) {
			k = units.New(k.Magnitude(), spec.System.StressUnit())
		}
		if !k.Is(units.Stress) {
			return bad("constant k must be a stress, got %s", k.Dimension())
		}
		f.k, f.hasK = k, true
	}
	return f, nil
}

func mustFormula(spec FormulaSpec) Formula {
	f, err := NewFormula(spec)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Formula) Name() string              { return f.name }
func (f Formula) Alpha() float64            { return f.alpha }
func (f Formula) Beta() float64             { return f.beta }
func (f Formula) KType() KType              { return f.ktype }
func (f Formula) Category() Category        { return f.category }
func (f Formula) Odd() OddKind              { return f.odd }
func (f Formula) System() UnitSystem        { return f.system }
func (f Formula) FOS() FOS                  { return f.fos }
func (f Formula) K() (units.Quantity, bool) { return f.k, f.hasK }
func (f Formula) String() string            { return f.name }

// IsGoodFactorOfSafety reports whether fos lies inside the formula's band.
func (f Formula) IsGoodFactorOfSafety(fos float64) bool {
	return f.fos.Lower <= fos && fos <= f.fos.Upper
}

// resolveK returns k expressed in the formula's stress unit.
func (f Formula) resolveK(p *Pillar, override *units.Quantity) (float64, error) {
	var k units.Quantity
	switch {
	case override != nil:
		k = *override
		if k.Is(units.Dimensionless) {
			return k.Magnitude(), nil
		}
	case f.ktype == KOther:
		if !f.hasK {
			return 0, missing("k")
		}
		k = f.k
	default:
		if p == nil || p.Sample == nil {
			return 0, missing("sample")
		}
		switch f.ktype {
		case KCubical:
			k = p.Sample.CubicalStrength()
		case KGaddy:
			k = p.Sample.GaddyFactor()
		case KUniaxial:
			k = p.Sample.Strength
		}
	}
	return k.In(f.system.StressUnit())
}

// PillarStrength evaluates the formula for p. kOverride, when not nil,
// replaces whatever constant the formula would otherwise use. The pillar
// is not modified, so one pillar can be evaluated under any formula.
//
// C.M.R.I. needs the mine depth and is evaluated by RoomAndPillar.
func (f Formula) PillarStrength(p *Pillar, kOverride *units.Quantity) (units.Quantity, error) {
	if p == nil {
		return units.Quantity{}, missing("pillar")
	}
	if f.category == Odd {
		switch f.odd {
		case HardyAgapito:
			return f.hardyAgapito(p, kOverride)
		default:
			return units.Quantity{}, fmt.Errorf("%w: %s needs the mine depth", ErrUnsupportedFormula, f.name)
		}
	}

	k, err := f.resolveK(p, kOverride)
	if err != nil {
		return units.Quantity{}, err
	}
	w, err := p.Width().In(f.system.LengthUnit())
	if err != nil {
		return units.Quantity{}, err
	}
	h, err := p.Height().In(f.system.LengthUnit())
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(f.evaluate(k, w, h), f.system.StressUnit()), nil
}

func (f Formula) evaluate(k, w, h float64) float64 {
	if f.category == Linear {
		return k * (f.alpha + f.beta*(w/h))
	}
	return k * math.Pow(w, f.alpha) * math.Pow(h, f.beta)
}

// hardyAgapito scales the specimen strength by the pillar/specimen volume
// ratio and the ratio of their slenderness.
func (f Formula) hardyAgapito(p *Pillar, kOverride *units.Quantity) (units.Quantity, error) {
	if p.Sample == nil {
		return units.Quantity{}, missing("sample")
	}
	k, err := f.resolveK(p, kOverride)
	if err != nil {
		return units.Quantity{}, err
	}
	s := p.Sample
	vs := s.Volume().SI()
	if vs == 0 || s.Diameter().IsZero() {
		return units.Quantity{}, missing("sample.diameter")
	}
	volumeRatio := p.Volume().SI() / vs
	shapeRatio := p.WidthHeightRatio() * (s.Height().SI() / s.Diameter().SI())
	v := k * math.Pow(volumeRatio, f.alpha) * math.Pow(shapeRatio, f.beta)
	return units.New(v, f.system.StressUnit()), nil
}
