package units

import (
	"fmt"
	"math"
	"strconv"
)

// Quantity is a magnitude tagged with its unit. The zero value is a
// dimensionless zero.
type Quantity struct {
	mag  float64
	unit Unit
}

// ZeroLength is the zero-magnitude length every length field is floored at.
var ZeroLength = New(0, Metre)

// New returns mag expressed in u.
func New(mag float64, u Unit) Quantity {
	return Quantity{mag: mag, unit: u}
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity {
	return Quantity{mag: v, unit: None}
}

func (q Quantity) Magnitude() float64   { return q.mag }
func (q Quantity) Unit() Unit           { return q.unit }
func (q Quantity) Dimension() Dimension { return q.unit.Dim }

// SI returns the magnitude in the coherent SI unit of its dimension.
func (q Quantity) SI() float64 { return q.mag * q.unit.factor() }

// Is reports whether q has dimension d.
func (q Quantity) Is(d Dimension) bool { return q.unit.Dim == d }

// To re-expresses q in u.
func (q Quantity) To(u Unit) (Quantity, error) {
	if q.unit.Dim != u.Dim {
		return Quantity{}, &DimensionalityError{Op: "convert", From: q.unit.Dim, To: u.Dim}
	}
	if q.unit == u {
		return q, nil
	}
	return Quantity{mag: q.SI() / u.factor(), unit: u}, nil
}

// In returns the magnitude of q expressed in u.
func (q Quantity) In(u Unit) (float64, error) {
	c, err := q.To(u)
	if err != nil {
		return 0, err
	}
	return c.mag, nil
}

// Float returns the magnitude of a dimensionless quantity.
func (q Quantity) Float() (float64, error) {
	return q.In(None)
}

// Add returns q+o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	v, err := o.In(q.unit)
	if err != nil {
		return Quantity{}, &DimensionalityError{Op: "add", From: q.unit.Dim, To: o.unit.Dim}
	}
	return Quantity{mag: q.mag + v, unit: q.unit}, nil
}

// Sub returns q-o expressed in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	v, err := o.In(q.unit)
	if err != nil {
		return Quantity{}, &DimensionalityError{Op: "subtract", From: q.unit.Dim, To: o.unit.Dim}
	}
	return Quantity{mag: q.mag - v, unit: q.unit}, nil
}

// Mul returns q×o. Multiplying by a dimensionless quantity keeps q's unit;
// any other product is expressed in the coherent SI unit.
func (q Quantity) Mul(o Quantity) Quantity {
	if o.unit.Dim.IsDimensionless() {
		return Quantity{mag: q.mag * o.SI(), unit: q.unit}
	}
	d := q.unit.Dim.add(o.unit.Dim)
	return Quantity{mag: q.SI() * o.SI(), unit: coherent(d)}
}

// Div returns q÷o. Quantities of equal dimension divide to a plain ratio.
func (q Quantity) Div(o Quantity) Quantity {
	if o.unit.Dim.IsDimensionless() {
		return Quantity{mag: q.mag / o.SI(), unit: q.unit}
	}
	d := q.unit.Dim.sub(o.unit.Dim)
	return Quantity{mag: q.SI() / o.SI(), unit: coherent(d)}
}

// Scale multiplies the magnitude by f.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{mag: q.mag * f, unit: q.unit}
}

// Compare returns -1, 0 or +1 as q is less than, equal to or greater than o.
func (q Quantity) Compare(o Quantity) (int, error) {
	if q.unit.Dim != o.unit.Dim {
		return 0, &DimensionalityError{Op: "compare", From: q.unit.Dim, To: o.unit.Dim}
	}
	a, b := q.SI(), o.SI()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// Max returns the larger of q and o, keeping the unit of the winner.
func (q Quantity) Max(o Quantity) (Quantity, error) {
	c, err := q.Compare(o)
	if err != nil {
		return Quantity{}, err
	}
	if c < 0 {
		return o, nil
	}
	return q, nil
}

// IsZero reports whether the magnitude is exactly zero.
func (q Quantity) IsZero() bool { return q.mag == 0 }

// Round rounds the magnitude half away from zero to the given decimal places.
func (q Quantity) Round(places int) Quantity {
	return Quantity{mag: Round(q.mag, places), unit: q.unit}
}

func (q Quantity) String() string {
	s := strconv.FormatFloat(q.mag, 'g', -1, 64)
	if sym := q.unit.String(); sym != "" && q.unit != None {
		return fmt.Sprintf("%s %s", s, sym)
	}
	return s
}

// Round rounds v half away from zero to the given decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
