package rap

import "fmt"

// DesignType says whether the engineer chose the formula or left it to
// DecideFormula.
type DesignType int

const (
	InitialDesign DesignType = iota + 1
	Redesign
)

// FragmentMethod is how the ore is broken.
type FragmentMethod int

const (
	DrillBlast FragmentMethod = iota + 1
	ContinuousMiner
)

// Location is the country whose mines a formula was developed for.
type Location int

const (
	Estonia Location = iota + 1
	India
	SouthAfrica
	OtherLocation
)

// OreType is the kind of deposit being mined.
type OreType int

const (
	HardRock OreType = iota + 1
	Coal
	OilShale
	OtherOre
)

var (
	kTypeNames      = map[KType]string{KCubical: "cubical", KUniaxial: "uniaxial", KGaddy: "gaddy", KOther: "other"}
	categoryNames   = map[Category]string{Linear: "linear", Exponential: "exponential", Odd: "odd"}
	systemNames     = map[UnitSystem]string{Metric: "metric", Imperial: "imperial"}
	designTypeNames = map[DesignType]string{InitialDesign: "initial", Redesign: "redesign"}
	fragmentNames   = map[FragmentMethod]string{DrillBlast: "drill_blast", ContinuousMiner: "continuous_miner"}
	locationNames   = map[Location]string{Estonia: "estonia", India: "india", SouthAfrica: "south_africa", OtherLocation: "other"}
	oreTypeNames    = map[OreType]string{HardRock: "hard_rock", Coal: "coal", OilShale: "oil_shale", OtherOre: "other"}
)

func (k KType) String() string          { return nameOf(kTypeNames, k) }
func (c Category) String() string       { return nameOf(categoryNames, c) }
func (s UnitSystem) String() string     { return nameOf(systemNames, s) }
func (d DesignType) String() string     { return nameOf(designTypeNames, d) }
func (m FragmentMethod) String() string { return nameOf(fragmentNames, m) }
func (l Location) String() string       { return nameOf(locationNames, l) }
func (o OreType) String() string        { return nameOf(oreTypeNames, o) }

func ParseKType(s string) (KType, error)                   { return parseName(kTypeNames, "constant source", s) }
func ParseCategory(s string) (Category, error)             { return parseName(categoryNames, "category", s) }
func ParseUnitSystem(s string) (UnitSystem, error)         { return parseName(systemNames, "unit system", s) }
func ParseDesignType(s string) (DesignType, error)         { return parseName(designTypeNames, "design type", s) }
func ParseFragmentMethod(s string) (FragmentMethod, error) { return parseName(fragmentNames, "fragment method", s) }
func ParseLocation(s string) (Location, error)             { return parseName(locationNames, "location", s) }
func ParseOreType(s string) (OreType, error)               { return parseName(oreTypeNames, "ore type", s) }

func nameOf[T comparable](names map[T]string, v T) string {
	if n, ok := names[v]; ok {
		return n
	}
	return "unset"
}

// parseName matches s against names the way Lookup matches formulas, so
// "South Africa", "south-africa" and "SOUTH_AFRICA" are one location.
func parseName[T comparable](names map[T]string, kind, s string) (T, error) {
	key := foldName(s)
	for v, n := range names {
		if foldName(n) == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("rap: unknown %s %q", kind, s)
}
