package rap

import (
	"math"

	"MineRappa/internal/units"
)

// Floor bearing capacity follows the strip-footing model with Meyerhof
// shape corrections: the pillar is the footing and the floor the soil.

func (r *RoomAndPillar) frictionAngle() (float64, error) {
	phi, err := field(r.FrictionAngle, "friction_angle")
	if err != nil {
		return 0, err
	}
	return phi.In(units.Radian)
}

// aspect is pillar width over length, B/L.
func (r *RoomAndPillar) aspect() (float64, error) {
	p, err := r.pillar()
	if err != nil {
		return 0, err
	}
	return p.Width().SI() / p.Length().SI(), nil
}

// SfGamma is the unit-weight shape factor 1 − 0.4·B/L.
func (r *RoomAndPillar) SfGamma() (float64, error) {
	a, err := r.aspect()
	if err != nil {
		return 0, err
	}
	return 1 - 0.4*a, nil
}

// SfQ is the surcharge shape factor 1 + sin φ·B/L.
func (r *RoomAndPillar) SfQ() (float64, error) {
	phi, err := r.frictionAngle()
	if err != nil {
		return 0, err
	}
	a, err := r.aspect()
	if err != nil {
		return 0, err
	}
	return 1 + math.Sin(phi)*a, nil
}

// BcfQ is Nq = e^(π tan φ)·tan²(45° + φ/2).
func (r *RoomAndPillar) BcfQ() (float64, error) {
	phi, err := r.frictionAngle()
	if err != nil {
		return 0, err
	}
	return nq(phi), nil
}

func nq(phi float64) float64 {
	t := math.Tan(math.Pi/4 + phi/2)
	return math.Exp(math.Pi*math.Tan(phi)) * t * t
}

// BcfGamma is Nγ = 1.5·(Nq − 1)·tan φ.
func (r *RoomAndPillar) BcfGamma() (float64, error) {
	phi, err := r.frictionAngle()
	if err != nil {
		return 0, err
	}
	return 1.5 * (nq(phi) - 1) * math.Tan(phi), nil
}

// BcfC is Nc = (Nq − 1)·cot φ, which tends to π + 2 for a frictionless floor.
func (r *RoomAndPillar) BcfC() (float64, error) {
	phi, err := r.frictionAngle()
	if err != nil {
		return 0, err
	}
	if phi == 0 {
		return math.Pi + 2, nil
	}
	return (nq(phi) - 1) / math.Tan(phi), nil
}

// BearingCapacity is 0.5·γ·B·Nγ·sγ + c·cot φ·(Nq·sq − 1), in MPa.
func (r *RoomAndPillar) BearingCapacity() (units.Quantity, error) {
	phi, err := r.frictionAngle()
	if err != nil {
		return units.Quantity{}, err
	}
	gamma, err := field(r.FloorDensity, "floor_density")
	if err != nil {
		return units.Quantity{}, err
	}
	c, err := field(r.Cohesion, "cohesion")
	if err != nil {
		return units.Quantity{}, err
	}
	if !gamma.Is(units.UnitWeight) {
		return units.Quantity{}, &units.DimensionalityError{Op: "weigh floor with", From: gamma.Dimension(), To: units.UnitWeight}
	}
	if !c.Is(units.Stress) {
		return units.Quantity{}, &units.DimensionalityError{Op: "use cohesion of", From: c.Dimension(), To: units.Stress}
	}
	sg, err := r.SfGamma()
	if err != nil {
		return units.Quantity{}, err
	}
	sq, err := r.SfQ()
	if err != nil {
		return units.Quantity{}, err
	}
	ng, err := r.BcfGamma()
	if err != nil {
		return units.Quantity{}, err
	}

	friction := gamma.Mul(r.Pillar.Width()).Scale(0.5 * ng * sg)
	var cohesive units.Quantity
	if phi == 0 {
		a, _ := r.aspect()
		cohesive = c.Scale(math.Pi + 2 + a)
	} else {
		cohesive = c.Scale((nq(phi)*sq - 1) / math.Tan(phi))
	}
	total, err := friction.Add(cohesive)
	if err != nil {
		return units.Quantity{}, err
	}
	return total.To(units.Megapascal)
}

// BearingCapacityFactorOfSafety is bearing capacity over pillar stress.
func (r *RoomAndPillar) BearingCapacityFactorOfSafety() (float64, error) {
	bc, err := r.BearingCapacity()
	if err != nil {
		return 0, err
	}
	stress, err := r.PillarStress()
	if err != nil {
		return 0, err
	}
	return bc.Div(stress).Float()
}
