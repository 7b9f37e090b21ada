package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"MineRappa/internal/calc/rap"
)

func measure(m rap.Measure) string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit)
}

func printResult(w io.Writer, format string, res rap.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(name, value string) { fmt.Fprintf(tw, "%s\t%s\n", rap.Label(name), value) }

	row("formula", fmt.Sprintf("%s (%s)", res.Formula, res.UnitSystem))
	if res.SolvedWidth != nil {
		row("pillar.width", measure(*res.SolvedWidth)+" (solved)")
	} else {
		row("pillar.width", measure(res.PillarWidth))
	}
	row("pillar.length", measure(res.PillarLength))
	row("width_height_ratio", fmt.Sprintf("%g", res.WidthHeightRatio))
	row("extraction_ratio", fmt.Sprintf("%.2f", res.ExtractionRatio))
	row("vertical_pre_mining_stress", measure(res.VerticalPreMiningStress))
	row("pillar_stress", measure(res.PillarStress))
	row("pillar_strength", measure(res.PillarStrength))

	verdict := "outside"
	if res.GoodFactorOfSafety {
		verdict = "inside"
	}
	row("factor_of_safety", fmt.Sprintf("%.2f, %s %.2f to %.2f", res.FactorOfSafety, verdict, res.FOSBand.Lower, res.FOSBand.Upper))
	if res.BearingCapacity != nil {
		row("bearing_capacity", measure(*res.BearingCapacity))
		row("bearing_capacity_factor_of_safety", fmt.Sprintf("%.2f", *res.BearingCapacityFactorOfSafety))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, res.Notes)
	return err
}

func printFormulas(w io.Writer, list []rap.Formula) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tK\tUNITS\tALPHA\tBETA\tFOS")
	for _, f := range list {
		info := rap.Describe(f)
		k := info.KType
		if info.K != nil {
			k = measure(*info.K)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%g\t%.2f/%.2f/%.2f\n",
			info.Name, info.Category, k, info.UnitSystem, info.Alpha, info.Beta,
			info.FOS.Lower, info.FOS.Recommended, info.FOS.Upper)
	}
	return tw.Flush()
}
