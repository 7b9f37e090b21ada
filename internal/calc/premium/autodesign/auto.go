// Package autodesign sizes square pillars under several strength formulas
// and ranks the results by ore recovery.
package autodesign

import (
	"cmp"
	"fmt"
	"slices"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

type PillarAutoInput struct {
	Design rap.Input `json:"design"`
	// Formulas to try. Empty means every catalogue formula that can be
	// solved for width.
	Formulas []string `json:"formulas,omitempty"`
}

type Candidate struct {
	Formula         string       `json:"formula"`
	Width           *rap.Measure `json:"width,omitempty"`
	FactorOfSafety  float64      `json:"factor_of_safety,omitempty"`
	ExtractionRatio float64      `json:"extraction_ratio,omitempty"`
	// Viable is set when the factor of safety of the sized design lies in
	// the formula's band. Squat pillars are rated by high ratio
	// Stacey-Page after sizing and can fall outside it.
	Viable          bool         `json:"viable"`
	Error           string       `json:"error,omitempty"`
}

type PillarAutoResult struct {
	Best       *Candidate  `json:"best,omitempty"`
	Candidates []Candidate `json:"candidates"`
	Notes      string      `json:"notes"`
}

func solvable() []string {
	var names []string
	for _, f := range rap.Catalogue() {
		if f.Category() != rap.Odd {
			names = append(names, f.Name())
		}
	}
	return names
}

// rank orders candidates: solved before failed, viable before out of
// band, then highest extraction ratio first.
func rank(c []Candidate) {
	slices.SortStableFunc(c, func(a, b Candidate) int {
		if (a.Error == "") != (b.Error == "") {
			if a.Error == "" {
				return -1
			}
			return 1
		}
		if a.Viable != b.Viable {
			if a.Viable {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.ExtractionRatio, a.ExtractionRatio)
	})
}

// Pillar back-solves the width under each formula and ranks the
// candidates. Best is the viable candidate with the highest extraction
// ratio; without one Pillar fails and still returns every candidate.
func Pillar(reg *units.Registry, in PillarAutoInput) (PillarAutoResult, error) {
	names := in.Formulas
	if len(names) == 0 {
		names = solvable()
	}
	out := PillarAutoResult{Candidates: make([]Candidate, 0, len(names))}
	for _, name := range names {
		design := in.Design
		design.Formula, design.CustomFormula, design.DesignType = name, nil, ""
		c := Candidate{Formula: name}
		res, err := rap.Solve(reg, design)
		if err != nil {
			c.Error = err.Error()
		} else {
			c.Formula = res.Formula
			c.Width = res.SolvedWidth
			c.FactorOfSafety = res.FactorOfSafety
			c.ExtractionRatio = res.ExtractionRatio
			c.Viable = res.GoodFactorOfSafety
		}
		out.Candidates = append(out.Candidates, c)
	}

	rank(out.Candidates)
	if len(out.Candidates) == 0 || !out.Candidates[0].Viable {
		return out, fmt.Errorf("autodesign: no formula sized the pillar inside its factor of safety band")
	}
	out.Best = &out.Candidates[0]
	viable := 0
	for _, c := range out.Candidates {
		if c.Viable {
			viable++
		}
	}
	out.Notes = fmt.Sprintf("Square pillar sized under %d formulas, %d inside their factor of safety band; %s gives the highest extraction.",
		len(names), viable, out.Best.Formula)
	return out, nil
}
