package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Registry resolves unit names, aliases and UI display suffixes. A process
// normally builds one with NewRegistry and hands it to whatever parses user
// input; nothing in this package keeps a global registry.
type Registry struct {
	units    map[string]Unit
	suffixes map[string]string
}

// NewRegistry returns a registry seeded with the well-known units.
func NewRegistry() *Registry {
	r := &Registry{
		units:    make(map[string]Unit),
		suffixes: make(map[string]string),
	}
	r.Define(None, "dimensionless", "none")
	r.Define(Metre, "meter", "metres", "meters")
	r.Define(Millimetre, "millimeter", "millimetres", "millimeters")
	r.Define(Centimetre, "centimeter", "centimetres", "centimeters")
	r.Define(Kilometre, "kilometer", "kilometres", "kilometers")
	r.Define(Inch, "inches", `"`)
	r.Define(Foot, "feet", "'")
	r.Define(Yard, "yards")
	r.Define(Pascal, "pascals")
	r.Define(Kilopascal, "kilopascals")
	r.Define(Megapascal, "megapascals", "N/mm^2")
	r.Define(Gigapascal, "gigapascals")
	r.Define(PSI, "lbf/in^2", "lb/in^2")
	r.Define(KSI, "kip/in^2")
	r.Define(PSF, "lbf/ft^2", "lb/ft^2")
	r.Define(NewtonPerCubicMetre, "N/m^3")
	r.Define(KilonewtonPerCubicMetre, "kN/m^3")
	r.Define(MeganewtonPerCubicMetre, "MN/m^3")
	r.Define(PoundForcePerCubicFoot, "lbf/ft^3", "lb/ft^3", "pcf")
	r.Define(Radian, "radians")
	r.Define(Degree, "deg", "degrees")
	r.Define(SquareMetre, "m^2")
	r.Define(SquareFoot, "ft^2")
	r.Define(CubicMetre, "m^3")
	r.Define(CubicFoot, "ft^3")

	// Suffixes shown next to spin boxes in the data-entry forms.
	r.DefineSuffix("°", "degree")
	r.DefineSuffix("º", "degree")
	r.DefineSuffix("lb/ft³", "pound_force_per_cubic_foot")
	r.DefineSuffix("kN/m³", "kilonewton_per_cubic_metre")
	r.DefineSuffix("MN/m³", "meganewton_per_cubic_metre")
	r.DefineSuffix("%", "dimensionless")
	return r
}

// Define registers u under its name, its symbol and any aliases.
func (r *Registry) Define(u Unit, aliases ...string) {
	keys := append([]string{u.Name, u.Symbol}, aliases...)
	for _, k := range keys {
		if k == "" && u != None {
			continue
		}
		r.units[normalize(k)] = u
	}
}

// DefineSuffix maps a display suffix to a registered unit name.
func (r *Registry) DefineSuffix(suffix, unitName string) {
	r.suffixes[strings.TrimSpace(suffix)] = unitName
}

// Lookup resolves a unit name, symbol or alias. Matching ignores case and
// surrounding space and accepts superscript exponents.
func (r *Registry) Lookup(name string) (Unit, error) {
	if u, ok := r.units[normalize(name)]; ok {
		return u, nil
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// MustLookup is Lookup for names known at compile time.
func (r *Registry) MustLookup(name string) Unit {
	u, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Quantity builds mag expressed in the named unit.
func (r *Registry) Quantity(mag float64, unit string) (Quantity, error) {
	u, err := r.Lookup(unit)
	if err != nil {
		return Quantity{}, err
	}
	return New(mag, u), nil
}

// Parse reads strings like "3.4 cm", "500ft" or "28°".
func (r *Registry) Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	i := numericPrefix(s)
	if i == 0 {
		return Quantity{}, fmt.Errorf("units: no magnitude in %q", s)
	}
	mag, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("units: parsing %q: %w", s, err)
	}
	rest := strings.TrimSpace(s[i:])
	if name, ok := r.suffixes[rest]; ok {
		rest = name
	}
	return r.Quantity(mag, rest)
}

// FromSuffix builds a quantity from a form value and the suffix displayed
// next to it. An unrecognised suffix yields a dimensionless quantity rather
// than an error so a bad label never takes the form down.
func (r *Registry) FromSuffix(mag float64, suffix string) Quantity {
	suffix = strings.TrimSpace(suffix)
	if name, ok := r.suffixes[suffix]; ok {
		suffix = name
	}
	u, err := r.Lookup(suffix)
	if err != nil {
		return Scalar(mag)
	}
	return New(mag, u)
}

func numericPrefix(s string) int {
	end := 0
	for i, c := range s {
		switch {
		case unicode.IsDigit(c), c == '.':
		case (c == '-' || c == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case (c == 'e' || c == 'E') && i > 0 && i+1 < len(s) && strings.ContainsRune("0123456789+-", rune(s[i+1])):
		default:
			return end
		}
		end = i + 1
	}
	return end
}

var superscripts = strings.NewReplacer("²", "^2", "³", "^3", "**", "^", " per ", "/")

func normalize(name string) string {
	name = superscripts.Replace(strings.TrimSpace(name))
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
