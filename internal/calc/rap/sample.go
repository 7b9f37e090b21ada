package rap

import (
	"math"

	"MineRappa/internal/calc/solid"
	"MineRappa/internal/units"
)

// gaddyHeightLimit is the specimen height above which the size correction
// of the cubical strength stops growing.
var gaddyHeightLimit = units.New(36, units.Inch)

// Sample is a tested rock or coal specimen. Its length and width both hold
// the diameter.
type Sample struct {
	Geometry solid.Solid    `json:"geometry"`
	Strength units.Quantity `json:"strength"`
	Cylinder bool           `json:"cylinder"`
}

// NewSample builds a specimen of the given uniaxial strength.
func NewSample(strength, height, diameter units.Quantity, cylinder bool) (*Sample, error) {
	if !strength.Is(units.Stress) {
		return nil, &ConstructionError{What: "sample", Reason: "strength must be a stress, got " + strength.Dimension().String()}
	}
	g, err := solid.New(height, diameter, diameter)
	if err != nil {
		return nil, err
	}
	return &Sample{Geometry: g, Strength: strength, Cylinder: cylinder}, nil
}

func (s *Sample) Diameter() units.Quantity { return s.Geometry.Length }
func (s *Sample) Height() units.Quantity   { return s.Geometry.Height }

// IsCubical reports whether height equals diameter.
func (s *Sample) IsCubical() bool { return solid.IsCubical(s.Geometry) }

// Volume of the specimen: π r² h for cylinders, otherwise the prism volume.
func (s *Sample) Volume() units.Quantity {
	if !s.Cylinder {
		return solid.Volume(s.Geometry)
	}
	r := s.Diameter().Scale(0.5)
	return r.Mul(r).Mul(s.Height()).Scale(math.Pi)
}

// GaddyFactor is strength × √(diameter in inches), tagged with the
// strength's unit.
func (s *Sample) GaddyFactor() units.Quantity {
	d, _ := s.Diameter().In(units.Inch)
	return s.Strength.Scale(math.Sqrt(d))
}

// CubicalStrength is the Gaddy factor corrected to a cube. The correction
// is discontinuous: above 36 in of height the divisor is fixed at 6.
func (s *Sample) CubicalStrength() units.Quantity {
	g := s.GaddyFactor()
	if c, _ := s.Height().Compare(gaddyHeightLimit); c > 0 {
		return g.Scale(1.0 / 6)
	}
	h, _ := s.Height().In(units.Inch)
	return g.Scale(1 / math.Sqrt(h))
}
