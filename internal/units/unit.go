package units

import "math"

// Unit is a named scale of one dimension. Factor converts a magnitude in
// this unit to the coherent SI unit of the same dimension.
type Unit struct {
	Name   string
	Symbol string
	Dim    Dimension
	Factor float64
}

func (u Unit) factor() float64 {
	if u.Factor == 0 {
		return 1
	}
	return u.Factor
}

func (u Unit) String() string {
	if u.Symbol != "" {
		return u.Symbol
	}
	return u.Name
}

const (
	poundForce = 4.4482216152605 // N
	cubicFoot  = 0.028316846592  // m³
)

// Well-known units. These are plain values; lookups by name go through a
// Registry.
var (
	None = Unit{Name: "dimensionless", Symbol: "", Dim: Dimensionless, Factor: 1}

	Metre      = Unit{Name: "metre", Symbol: "m", Dim: Length, Factor: 1}
	Millimetre = Unit{Name: "millimetre", Symbol: "mm", Dim: Length, Factor: 1e-3}
	Centimetre = Unit{Name: "centimetre", Symbol: "cm", Dim: Length, Factor: 1e-2}
	Kilometre  = Unit{Name: "kilometre", Symbol: "km", Dim: Length, Factor: 1e3}
	Inch       = Unit{Name: "inch", Symbol: "in", Dim: Length, Factor: 0.0254}
	Foot       = Unit{Name: "foot", Symbol: "ft", Dim: Length, Factor: 0.3048}
	Yard       = Unit{Name: "yard", Symbol: "yd", Dim: Length, Factor: 0.9144}

	Pascal                  = Unit{Name: "pascal", Symbol: "Pa", Dim: Stress, Factor: 1}
	Kilopascal              = Unit{Name: "kilopascal", Symbol: "kPa", Dim: Stress, Factor: 1e3}
	Megapascal              = Unit{Name: "megapascal", Symbol: "MPa", Dim: Stress, Factor: 1e6}
	Gigapascal              = Unit{Name: "gigapascal", Symbol: "GPa", Dim: Stress, Factor: 1e9}
	PSI                     = Unit{Name: "pound_force_per_square_inch", Symbol: "psi", Dim: Stress, Factor: poundForce / (0.0254 * 0.0254)}
	KSI                     = Unit{Name: "kip_per_square_inch", Symbol: "ksi", Dim: Stress, Factor: 1e3 * poundForce / (0.0254 * 0.0254)}
	PSF                     = Unit{Name: "pound_force_per_square_foot", Symbol: "psf", Dim: Stress, Factor: poundForce / (0.3048 * 0.3048)}
	NewtonPerCubicMetre     = Unit{Name: "newton_per_cubic_metre", Symbol: "N/m³", Dim: UnitWeight, Factor: 1}
	KilonewtonPerCubicMetre = Unit{Name: "kilonewton_per_cubic_metre", Symbol: "kN/m³", Dim: UnitWeight, Factor: 1e3}
	MeganewtonPerCubicMetre = Unit{Name: "meganewton_per_cubic_metre", Symbol: "MN/m³", Dim: UnitWeight, Factor: 1e6}
	PoundForcePerCubicFoot  = Unit{Name: "pound_force_per_cubic_foot", Symbol: "lbf/ft³", Dim: UnitWeight, Factor: poundForce / cubicFoot}

	Radian = Unit{Name: "radian", Symbol: "rad", Dim: Angle, Factor: 1}
	Degree = Unit{Name: "degree", Symbol: "°", Dim: Angle, Factor: math.Pi / 180}

	SquareMetre = Unit{Name: "square_metre", Symbol: "m²", Dim: Area, Factor: 1}
	SquareFoot  = Unit{Name: "square_foot", Symbol: "ft²", Dim: Area, Factor: 0.3048 * 0.3048}
	CubicMetre  = Unit{Name: "cubic_metre", Symbol: "m³", Dim: Volume, Factor: 1}
	CubicFoot   = Unit{Name: "cubic_foot", Symbol: "ft³", Dim: Volume, Factor: cubicFoot}
)

// coherent returns the SI unit used for results of Mul and Div.
func coherent(d Dimension) Unit {
	switch d {
	case Dimensionless:
		return None
	case Length:
		return Metre
	case Area:
		return SquareMetre
	case Volume:
		return CubicMetre
	case Stress:
		return Pascal
	case UnitWeight:
		return NewtonPerCubicMetre
	case Angle:
		return Radian
	}
	return Unit{Name: d.symbol(), Symbol: d.symbol(), Dim: d, Factor: 1}
}
