// Package solid holds the rectangular geometry shared by rock samples and
// mine pillars, together with the pure functions that query it.
package solid

import (
	"MineRappa/internal/units"
)

// Solid is a right rectangular prism. Every dimension is a length and is
// never below units.ZeroLength.
type Solid struct {
	Height units.Quantity `json:"height"`
	Length units.Quantity `json:"length"`
	Width  units.Quantity `json:"width"`
}

// New builds a solid. Negative dimensions are floored to zero instead of
// rejected: form input arrives imprecise and a zero dimension surfaces
// later as an obviously wrong result. A zero width means a square cross
// section and takes the length.
func New(height, length, width units.Quantity) (Solid, error) {
	h, err := Floor(height)
	if err != nil {
		return Solid{}, err
	}
	l, err := Floor(length)
	if err != nil {
		return Solid{}, err
	}
	w, err := Floor(width)
	if err != nil {
		return Solid{}, err
	}
	if w.IsZero() {
		w = l
	}
	return Solid{Height: h, Length: l, Width: w}, nil
}

// Floor clamps a length at units.ZeroLength. The zero value of Quantity is
// accepted as an omitted dimension.
func Floor(q units.Quantity) (units.Quantity, error) {
	if q.Unit() == (units.Unit{}) || (q.IsZero() && q.Is(units.Dimensionless)) {
		return units.ZeroLength, nil
	}
	return q.Max(units.ZeroLength)
}

// Volume is length × width × height.
func Volume(s Solid) units.Quantity {
	return s.Length.Mul(s.Width).Mul(s.Height)
}

// Area is the horizontal cross section, length × width.
func Area(s Solid) units.Quantity {
	return s.Length.Mul(s.Width)
}

// Perimeter of the horizontal cross section.
func Perimeter(s Solid) units.Quantity {
	p, _ := s.Length.Add(s.Width)
	return p.Scale(2)
}

// IsSquare reports whether length equals width.
func IsSquare(s Solid) bool {
	c, err := s.Length.Compare(s.Width)
	return err == nil && c == 0
}

// IsCubical reports whether the solid is square with height equal to width.
func IsCubical(s Solid) bool {
	c, err := s.Height.Compare(s.Width)
	return err == nil && c == 0 && IsSquare(s)
}

// WidthHeightRatio is width / height. A zero height yields +Inf.
func WidthHeightRatio(s Solid) float64 {
	return s.Width.SI() / s.Height.SI()
}
