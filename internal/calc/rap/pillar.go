package rap

import (
	"MineRappa/internal/calc/solid"
	"MineRappa/internal/units"
)

// Pillar is a column of ore left standing between rooms. It owns the sample
// its strength is derived from.
type Pillar struct {
	Geometry solid.Solid `json:"geometry"`
	Sample   *Sample     `json:"sample"`
}

// NewPillar builds a pillar. A zero width gives a square pillar.
func NewPillar(sample *Sample, height, length, width units.Quantity) (*Pillar, error) {
	if sample == nil {
		return nil, &ConstructionError{What: "pillar", Reason: "a sample is required"}
	}
	g, err := solid.New(height, length, width)
	if err != nil {
		return nil, err
	}
	return &Pillar{Geometry: g, Sample: sample}, nil
}

func (p *Pillar) Height() units.Quantity { return p.Geometry.Height }
func (p *Pillar) Length() units.Quantity { return p.Geometry.Length }
func (p *Pillar) Width() units.Quantity  { return p.Geometry.Width }

func (p *Pillar) WidthHeightRatio() float64 { return solid.WidthHeightRatio(p.Geometry) }
func (p *Pillar) Area() units.Quantity      { return solid.Area(p.Geometry) }
func (p *Pillar) Perimeter() units.Quantity { return solid.Perimeter(p.Geometry) }
func (p *Pillar) Volume() units.Quantity    { return solid.Volume(p.Geometry) }
func (p *Pillar) IsSquare() bool            { return solid.IsSquare(p.Geometry) }

// SetWidth replaces the width, floored at zero like the constructor.
func (p *Pillar) SetWidth(w units.Quantity) error {
	f, err := solid.Floor(w)
	if err != nil {
		return err
	}
	p.Geometry.Width = f
	return nil
}

// SetSquare sets both length and width to side.
func (p *Pillar) SetSquare(side units.Quantity) error {
	f, err := solid.Floor(side)
	if err != nil {
		return err
	}
	p.Geometry.Length = f
	p.Geometry.Width = f
	return nil
}
