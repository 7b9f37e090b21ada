package rap

import (
	"fmt"
	"strings"
	"unicode"

	"MineRappa/internal/units"
)

func constant(v float64, u units.Unit) *units.Quantity {
	q := units.New(v, u)
	return &q
}

// catalogue holds the published formulas in display order.
var catalogue = []Formula{
	mustFormula(FormulaSpec{
		Name: "Hardy-Agapito", Alpha: -0.118, Beta: 0.833,
		KType: KUniaxial, Category: Odd, Odd: HardyAgapito, System: Metric,
		FOS: FOS{Lower: 1.5, Recommended: 2.0, Upper: 2.5},
	}),
	mustFormula(FormulaSpec{
		Name: "Salamon-Munro", Alpha: 0.46, Beta: -0.66,
		KType: KOther, Category: Exponential, System: Imperial, K: constant(1320, units.PSI),
		FOS: FOS{Lower: 1.31, Recommended: 1.6, Upper: 1.88},
	}),
	mustFormula(FormulaSpec{
		Name: "Salamon-Munro Metric", Alpha: 0.46, Beta: -0.66,
		KType: KOther, Category: Exponential, System: Metric, K: constant(7.18, units.Megapascal),
		FOS: FOS{Lower: 1.31, Recommended: 1.6, Upper: 1.88},
	}),
	mustFormula(FormulaSpec{
		Name: "Bieniawski", Alpha: 0.64, Beta: 0.36,
		KType: KCubical, Category: Linear, System: Imperial,
		FOS: FOS{Lower: 1.5, Recommended: 1.75, Upper: 2.0},
	}),
	mustFormula(FormulaSpec{
		Name: "Stacey-Page", Alpha: 0.5, Beta: -0.7,
		KType: KGaddy, Category: Exponential, System: Metric,
		FOS: FOS{Lower: 1.5, Recommended: 1.6, Upper: 2.0},
	}),
	mustFormula(FormulaSpec{
		Name: "C.M.R.I.", Alpha: 0.27, Beta: -0.36,
		KType: KUniaxial, Category: Odd, Odd: CMRI, System: Metric,
		FOS: FOS{Lower: 1.5, Recommended: 1.75, Upper: 2.0},
	}),
	mustFormula(FormulaSpec{
		Name: "Obert-Duval", Alpha: 0.778, Beta: 0.222,
		KType: KUniaxial, Category: Linear, System: Imperial,
		FOS: FOS{Lower: 2.0, Recommended: 3.0, Upper: 4.0},
	}),
	mustFormula(FormulaSpec{
		Name: "Holland-Gaddy", Alpha: 0.5, Beta: -1,
		KType: KGaddy, Category: Exponential, System: Imperial,
		FOS: FOS{Lower: 1.8, Recommended: 2.0, Upper: 2.2},
	}),
	mustFormula(FormulaSpec{
		Name: "Holland", Alpha: 0.5, Beta: -0.5,
		KType: KCubical, Category: Exponential, System: Imperial,
		FOS: FOS{Lower: 1.8, Recommended: 2.0, Upper: 2.2},
	}),
}

// Catalogue returns the published formulas in display order.
func Catalogue() []Formula {
	out := make([]Formula, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a catalogue formula by name. Case, spaces, hyphens,
// underscores and dots are ignored, so "salamon_munro", "CMRI" and
// "Stacey Page" all resolve.
func Lookup(name string) (Formula, error) {
	key := foldName(name)
	for _, f := range catalogue {
		if foldName(f.name) == key {
			return f, nil
		}
	}
	return Formula{}, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
}

func mustLookup(name string) Formula {
	f, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

func foldName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
