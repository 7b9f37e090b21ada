package units

import (
	"fmt"
	"strings"
)

// Dimension is the exponent vector of a physical quantity over the base
// dimensions length, mass, time and plane angle.
type Dimension struct {
	Length int8
	Mass   int8
	Time   int8
	Angle  int8
}

var (
	Dimensionless = Dimension{}
	Length        = Dimension{Length: 1}
	Area          = Dimension{Length: 2}
	Volume        = Dimension{Length: 3}
	Stress        = Dimension{Length: -1, Mass: 1, Time: -2}
	UnitWeight    = Dimension{Length: -2, Mass: 1, Time: -2}
	Angle         = Dimension{Angle: 1}
)

var dimensionNames = map[Dimension]string{
	Dimensionless: "dimensionless",
	Length:        "length",
	Area:          "area",
	Volume:        "volume",
	Stress:        "stress",
	UnitWeight:    "unit weight",
	Angle:         "angle",
}

func (d Dimension) add(o Dimension) Dimension {
	return Dimension{d.Length + o.Length, d.Mass + o.Mass, d.Time + o.Time, d.Angle + o.Angle}
}

func (d Dimension) sub(o Dimension) Dimension {
	return Dimension{d.Length - o.Length, d.Mass - o.Mass, d.Time - o.Time, d.Angle - o.Angle}
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool { return d == Dimensionless }

func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return d.symbol()
}

// symbol renders the SI base expression, e.g. "m^-1·kg·s^-2".
func (d Dimension) symbol() string {
	var parts []string
	add := func(sym string, exp int8) {
		switch exp {
		case 0:
		case 1:
			parts = append(parts, sym)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", sym, exp))
		}
	}
	add("m", d.Length)
	add("kg", d.Mass)
	add("s", d.Time)
	add("rad", d.Angle)
	return strings.Join(parts, "·")
}
