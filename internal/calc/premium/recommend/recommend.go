package recommend

import (
	"fmt"

	"MineRappa/internal/calc/rap"
)

type FormulaRecommendInput struct {
	OreType  string `json:"ore_type"`
	Location string `json:"location"`
}

type FormulaRecommendResult struct {
	Formula rap.FormulaInfo `json:"formula"`
	Notes   string          `json:"notes"`
}

// Formula recommends a strength formula for an initial design. Either
// field may be empty and then counts as "other".
func Formula(in FormulaRecommendInput) (FormulaRecommendResult, error) {
	ore, loc := rap.OtherOre, rap.OtherLocation
	var err error
	if in.OreType != "" {
		if ore, err = rap.ParseOreType(in.OreType); err != nil {
			return FormulaRecommendResult{}, err
		}
	}
	if in.Location != "" {
		if loc, err = rap.ParseLocation(in.Location); err != nil {
			return FormulaRecommendResult{}, err
		}
	}
	f := rap.DecideFormula(ore, loc)
	return FormulaRecommendResult{
		Formula: rap.Describe(f),
		Notes:   fmt.Sprintf("Recommended for %s in %s. Keep the factor of safety between %.2f and %.2f.", ore, loc, f.FOS().Lower, f.FOS().Upper),
	}, nil
}
