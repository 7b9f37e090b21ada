package rap

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"MineRappa/internal/units"
)

var validate = validator.New()

// Value is a form value and the unit suffix shown beside it.
type Value struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit" validate:"max=32"`
}

type SampleInput struct {
	Strength Value `json:"strength" yaml:"strength"`
	Height   Value `json:"height" yaml:"height"`
	Diameter Value `json:"diameter" yaml:"diameter"`
	Cylinder bool  `json:"cylinder" yaml:"cylinder"`
}

type PillarInput struct {
	Height Value  `json:"height" yaml:"height"`
	Length Value  `json:"length" yaml:"length"`
	Width  *Value `json:"width,omitempty" yaml:"width,omitempty"`
}

// FormulaInput describes a formula that is not in the catalogue.
type FormulaInput struct {
	Name       string  `json:"name" yaml:"name" validate:"required"`
	Alpha      float64 `json:"alpha" yaml:"alpha"`
	Beta       float64 `json:"beta" yaml:"beta"`
	KType      string  `json:"k_type" yaml:"k_type" validate:"required"`
	Category   string  `json:"category" yaml:"category" validate:"required"`
	UnitSystem string  `json:"unit_system" yaml:"unit_system" validate:"required"`
	K          *Value  `json:"k,omitempty" yaml:"k,omitempty"`
	FOS        FOS     `json:"fos" yaml:"fos"`
}

type Input struct {
	Sample        SampleInput   `json:"sample" yaml:"sample"`
	Pillar        PillarInput   `json:"pillar" yaml:"pillar"`
	RoomSpan      Value         `json:"room_span" yaml:"room_span"`
	Formula       string        `json:"formula,omitempty" yaml:"formula,omitempty" validate:"excluded_with=CustomFormula"`
	CustomFormula *FormulaInput `json:"custom_formula,omitempty" yaml:"custom_formula,omitempty"`

	FrictionAngle     *Value   `json:"friction_angle,omitempty" yaml:"friction_angle,omitempty"`
	Cohesion          *Value   `json:"cohesion,omitempty" yaml:"cohesion,omitempty"`
	RMR               *float64 `json:"rmr,omitempty" yaml:"rmr,omitempty" validate:"omitempty,gte=0,lte=100"`
	SeamHeight        *Value   `json:"seam_height,omitempty" yaml:"seam_height,omitempty"`
	SeamDip           *Value   `json:"seam_dip,omitempty" yaml:"seam_dip,omitempty"`
	MineDepth         *Value   `json:"mine_depth" yaml:"mine_depth" validate:"required"`
	FloorDensity      *Value   `json:"floor_density,omitempty" yaml:"floor_density,omitempty"`
	OverburdenDensity *Value   `json:"overburden_density,omitempty" yaml:"overburden_density,omitempty"`

	DesignType     string `json:"design_type,omitempty" yaml:"design_type,omitempty"`
	FragmentMethod string `json:"fragment_method,omitempty" yaml:"fragment_method,omitempty"`
	Location       string `json:"location,omitempty" yaml:"location,omitempty"`
	OreType        string `json:"ore_type,omitempty" yaml:"ore_type,omitempty"`
}

type Measure struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func measure(q units.Quantity, places int) Measure {
	return Measure{Value: units.Round(q.Magnitude(), places), Unit: q.Unit().String()}
}

type BearingFactors struct {
	SfGamma  float64 `json:"sf_gamma"`
	SfQ      float64 `json:"sf_q"`
	BcfQ     float64 `json:"bcf_q"`
	BcfGamma float64 `json:"bcf_gamma"`
	BcfC     float64 `json:"bcf_c"`
}

type Result struct {
	Formula                       string          `json:"formula"`
	UnitSystem                    string          `json:"unit_system"`
	FOSBand                       FOS             `json:"fos_band"`
	VerticalPreMiningStress       Measure         `json:"vertical_pre_mining_stress"`
	PillarStress                  Measure         `json:"pillar_stress"`
	PillarStrength                Measure         `json:"pillar_strength"`
	FactorOfSafety                float64         `json:"factor_of_safety"`
	GoodFactorOfSafety            bool            `json:"good_factor_of_safety"`
	ExtractionRatio               float64         `json:"extraction_ratio"`
	WidthHeightRatio              float64         `json:"width_height_ratio"`
	PillarWidth                   Measure         `json:"pillar_width"`
	PillarLength                  Measure         `json:"pillar_length"`
	Bearing                       *BearingFactors `json:"bearing,omitempty"`
	BearingCapacity               *Measure        `json:"bearing_capacity,omitempty"`
	BearingCapacityFactorOfSafety *float64        `json:"bearing_capacity_factor_of_safety,omitempty"`
	SolvedWidth                   *Measure        `json:"solved_width,omitempty"`
	Notes                         string          `json:"notes"`
}

// FormulaInfo is the catalogue entry shown in selection lists.
type FormulaInfo struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	KType      string   `json:"k_type"`
	UnitSystem string   `json:"unit_system"`
	Alpha      float64  `json:"alpha"`
	Beta       float64  `json:"beta"`
	K          *Measure `json:"k,omitempty"`
	FOS        FOS      `json:"fos"`
}

func Describe(f Formula) FormulaInfo {
	info := FormulaInfo{
		Name:       f.Name(),
		Category:   f.Category().String(),
		KType:      f.KType().String(),
		UnitSystem: f.System().String(),
		Alpha:      f.Alpha(),
		Beta:       f.Beta(),
		FOS:        f.FOS(),
	}
	if k, ok := f.K(); ok {
		m := measure(k, 4)
		info.K = &m
	}
	return info
}

func quantity(reg *units.Registry, v *Value) *units.Quantity {
	if v == nil {
		return nil
	}
	q := reg.FromSuffix(v.Value, v.Unit)
	return &q
}

func (in *FormulaInput) build(reg *units.Registry) (Formula, error) {
	kt, err := ParseKType(in.KType)
	if err != nil {
		return Formula{}, err
	}
	cat, err := ParseCategory(in.Category)
	if err != nil {
		return Formula{}, err
	}
	sys, err := ParseUnitSystem(in.UnitSystem)
	if err != nil {
		return Formula{}, err
	}
	return NewFormula(FormulaSpec{
		Name:     in.Name,
		Alpha:    in.Alpha,
		Beta:     in.Beta,
		KType:    kt,
		Category: cat,
		System:   sys,
		K:        quantity(reg, in.K),
		FOS:      in.FOS,
	})
}

// Build turns form input into a design. Unit suffixes the registry does not
// know become dimensionless values and fail later where a dimension is
// required.
func Build(reg *units.Registry, in Input) (*RoomAndPillar, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("rap: invalid input: %w", err)
	}
	s := in.Sample
	sample, err := NewSample(
		reg.FromSuffix(s.Strength.Value, s.Strength.Unit),
		reg.FromSuffix(s.Height.Value, s.Height.Unit),
		reg.FromSuffix(s.Diameter.Value, s.Diameter.Unit),
		s.Cylinder,
	)
	if err != nil {
		return nil, err
	}
	var width units.Quantity
	if in.Pillar.Width != nil {
		width = reg.FromSuffix(in.Pillar.Width.Value, in.Pillar.Width.Unit)
	}
	pillar, err := NewPillar(sample,
		reg.FromSuffix(in.Pillar.Height.Value, in.Pillar.Height.Unit),
		reg.FromSuffix(in.Pillar.Length.Value, in.Pillar.Length.Unit),
		width,
	)
	if err != nil {
		return nil, err
	}

	d := New(pillar, reg.FromSuffix(in.RoomSpan.Value, in.RoomSpan.Unit))
	switch {
	case in.CustomFormula != nil:
		f, err := in.CustomFormula.build(reg)
		if err != nil {
			return nil, err
		}
		d.UseFormula(f)
	case in.Formula != "":
		f, err := Lookup(in.Formula)
		if err != nil {
			return nil, err
		}
		d.UseFormula(f)
	}

	d.FrictionAngle = quantity(reg, in.FrictionAngle)
	d.Cohesion = quantity(reg, in.Cohesion)
	d.RMR = in.RMR
	d.SeamHeight = quantity(reg, in.SeamHeight)
	d.SeamDip = quantity(reg, in.SeamDip)
	d.MineDepth = quantity(reg, in.MineDepth)
	d.FloorDensity = quantity(reg, in.FloorDensity)
	d.OverburdenDensity = quantity(reg, in.OverburdenDensity)

	if in.DesignType != "" {
		if d.DesignType, err = ParseDesignType(in.DesignType); err != nil {
			return nil, err
		}
	}
	if in.FragmentMethod != "" {
		if d.FragmentMethod, err = ParseFragmentMethod(in.FragmentMethod); err != nil {
			return nil, err
		}
	}
	if in.Location != "" {
		if d.Location, err = ParseLocation(in.Location); err != nil {
			return nil, err
		}
	}
	if in.OreType != "" {
		if d.OreType, err = ParseOreType(in.OreType); err != nil {
			return nil, err
		}
	}
	if d.DesignType != 0 {
		if _, err := d.SelectFormula(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Calculate evaluates the design described by in.
func Calculate(reg *units.Registry, in Input) (Result, error) {
	d, err := Build(reg, in)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(d)
}

// Solve sizes a square pillar for the formula's recommended factor of
// safety and evaluates the resized design.
func Solve(reg *units.Registry, in Input) (Result, error) {
	d, err := Build(reg, in)
	if err != nil {
		return Result{}, err
	}
	if err := sized(d.Pillar, false); err != nil {
		return Result{}, err
	}
	w, err := d.PillarWidthFromFOSAndStress()
	if err != nil {
		return Result{}, err
	}
	res, err := Evaluate(d)
	if err != nil {
		return Result{}, err
	}
	m := measure(w, 3)
	res.SolvedWidth = &m
	res.Notes += fmt.Sprintf(" Square pillar width solved for FOS %.2f.", d.Formula.FOS().Recommended)
	return res, nil
}

// Evaluate collects the derived values of d. Bearing capacity is only
// evaluated when one of its inputs was given.
func Evaluate(d *RoomAndPillar) (Result, error) {
	p, err := d.pillar()
	if err != nil {
		return Result{}, err
	}
	if err := sized(p, true); err != nil {
		return Result{}, err
	}
	f, err := d.formula()
	if err != nil {
		return Result{}, err
	}
	sv, err := d.VerticalPreMiningStress()
	if err != nil {
		return Result{}, err
	}
	stress, err := d.PillarStress()
	if err != nil {
		return Result{}, err
	}
	strength, err := d.PillarStrength()
	if err != nil {
		return Result{}, err
	}
	fos, err := d.FactorOfSafety()
	if err != nil {
		return Result{}, err
	}
	er, err := d.ExtractionRatio()
	if err != nil {
		return Result{}, err
	}
	if err := finite([]named{
		{"vertical_pre_mining_stress", sv.Magnitude()},
		{"pillar_stress", stress.Magnitude()},
		{"pillar_strength", strength.Magnitude()},
		{"factor_of_safety", fos},
		{"extraction_ratio", er},
	}); err != nil {
		return Result{}, err
	}

	res := Result{
		Formula:                 f.Name(),
		UnitSystem:              f.System().String(),
		FOSBand:                 f.FOS(),
		VerticalPreMiningStress: measure(sv, 3),
		PillarStress:            measure(stress, 3),
		PillarStrength:          measure(strength, 3),
		FactorOfSafety:          units.Round(fos, 3),
		GoodFactorOfSafety:      f.IsGoodFactorOfSafety(fos),
		ExtractionRatio:         er,
		WidthHeightRatio:        units.Round(d.Pillar.WidthHeightRatio(), 3),
		PillarWidth:             measure(d.Pillar.Width(), 3),
		PillarLength:            measure(d.Pillar.Length(), 3),
	}

	notes := []string{"Tributary area pillar stress; " + f.Name() + " pillar strength."}
	if d.OverburdenDensity == nil {
		notes = append(notes, "Overburden density not given, 1.1 psi/ft of depth assumed.")
	}
	if f.Odd() != CMRI && d.Pillar.WidthHeightRatio() > squatRatio {
		notes = append(notes, "Squat pillar (w/h > 10), high ratio Stacey-Page strength used.")
	}

	if d.FrictionAngle != nil || d.Cohesion != nil || d.FloorDensity != nil {
		b, err := bearing(d)
		if err != nil {
			return Result{}, err
		}
		bc, err := d.BearingCapacity()
		if err != nil {
			return Result{}, err
		}
		bfos, err := d.BearingCapacityFactorOfSafety()
		if err != nil {
			return Result{}, err
		}
		if err := finite([]named{{"bearing_capacity", bc.Magnitude()}, {"bearing_capacity_factor_of_safety", bfos}}); err != nil {
			return Result{}, err
		}
		m := measure(bc, 3)
		bfos = units.Round(bfos, 3)
		res.Bearing, res.BearingCapacity, res.BearingCapacityFactorOfSafety = &b, &m, &bfos
	}
	res.Notes = strings.Join(notes, " ")
	return res, nil
}

// sized rejects zero pillar dimensions. The zero floor accepts them, but
// every ratio and tributary stress of such a pillar is infinite. plan
// covers length and width; the width solver only needs the height.
func sized(p *Pillar, plan bool) error {
	if p.Height().IsZero() {
		return missing("pillar.height")
	}
	if !plan {
		return nil
	}
	if p.Length().IsZero() {
		return missing("pillar.length")
	}
	if p.Width().IsZero() {
		return missing("pillar.width")
	}
	return nil
}

type named struct {
	name  string
	value float64
}

// finite fails on the first NaN or infinite value.
func finite(values []named) error {
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConstruction, v.name)
		}
	}
	return nil
}

func bearing(d *RoomAndPillar) (BearingFactors, error) {
	var (
		b   BearingFactors
		err error
	)
	if b.SfGamma, err = d.SfGamma(); err != nil {
		return b, err
	}
	if b.SfQ, err = d.SfQ(); err != nil {
		return b, err
	}
	if b.BcfQ, err = d.BcfQ(); err != nil {
		return b, err
	}
	if b.BcfGamma, err = d.BcfGamma(); err != nil {
		return b, err
	}
	if b.BcfC, err = d.BcfC(); err != nil {
		return b, err
	}
	b.SfGamma = units.Round(b.SfGamma, 3)
	b.SfQ = units.Round(b.SfQ, 3)
	b.BcfQ = units.Round(b.BcfQ, 3)
	b.BcfGamma = units.Round(b.BcfGamma, 3)
	b.BcfC = units.Round(b.BcfC, 3)
	return b, nil
}
