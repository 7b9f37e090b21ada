package rap

import "MineRappa/internal/units"

// Labels maps input and output names to the text shown in reports.
var Labels = map[string]string{
	"pillar":                            "Pillar",
	"sample":                            "Sample",
	"sample.strength":                   "Sample Strength",
	"sample.height":                     "Sample Height",
	"sample.diameter":                   "Sample Diameter",
	"pillar.height":                     "Pillar Height",
	"pillar.length":                     "Pillar Length",
	"pillar.width":                      "Pillar Width",
	"room_span":                         "Room Span",
	"formula":                           "Pillar Strength Formula",
	"k":                                 "Formula Constant k",
	"fos":                               "Recommended Factor of Safety",
	"friction_angle":                    "Friction Angle",
	"cohesion":                          "Cohesion",
	"rmr":                               "Rock Mass Rating",
	"seam_height":                       "Seam Height",
	"seam_dip":                          "Seam Dip",
	"mine_depth":                        "Mine Depth",
	"floor_density":                     "Floor Density",
	"overburden_density":                "Overburden Density",
	"design_type":                       "Design Type",
	"fragment_method":                   "Fragmentation Method",
	"location":                          "Location",
	"ore_type":                          "Ore Type",
	"vertical_pre_mining_stress":        "Vertical Pre-Mining Stress",
	"pillar_stress":                     "Pillar Stress",
	"pillar_strength":                   "Pillar Strength",
	"extraction_ratio":                  "Extraction Ratio (%)",
	"factor_of_safety":                  "Factor of Safety",
	"sf_gamma":                          "Shape Factor Sγ",
	"sf_q":                              "Shape Factor Sq",
	"bcf_q":                             "Bearing Capacity Factor Nq",
	"bcf_gamma":                         "Bearing Capacity Factor Nγ",
	"bcf_c":                             "Bearing Capacity Factor Nc",
	"bearing_capacity":                  "Floor Bearing Capacity",
	"bearing_capacity_factor_of_safety": "Bearing Capacity Factor of Safety",
	"width_height_ratio":                "Width to Height Ratio",
}

// Label returns the display text for name, or name itself.
func Label(name string) string {
	if l, ok := Labels[name]; ok {
		return l
	}
	return name
}

// Output is one named derived value of a design.
type Output struct {
	Name  string
	Label string
	Value units.Quantity
}

// Outputs evaluates every derived value the design has inputs for, in
// report order. Values whose inputs are missing are left out.
func (r *RoomAndPillar) Outputs() []Output {
	scalar := func(fn func() (float64, error)) func() (units.Quantity, error) {
		return func() (units.Quantity, error) {
			v, err := fn()
			return units.Scalar(v), err
		}
	}
	ratio := func() (float64, error) {
		p, err := r.pillar()
		if err != nil {
			return 0, err
		}
		return p.WidthHeightRatio(), nil
	}
	derived := []struct {
		name string
		fn   func() (units.Quantity, error)
	}{
		{"width_height_ratio", scalar(ratio)},
		{"extraction_ratio", scalar(r.ExtractionRatio)},
		{"vertical_pre_mining_stress", r.VerticalPreMiningStress},
		{"pillar_stress", r.PillarStress},
		{"pillar_strength", r.PillarStrength},
		{"factor_of_safety", scalar(r.FactorOfSafety)},
		{"sf_gamma", scalar(r.SfGamma)},
		{"sf_q", scalar(r.SfQ)},
		{"bcf_q", scalar(r.BcfQ)},
		{"bcf_gamma", scalar(r.BcfGamma)},
		{"bcf_c", scalar(r.BcfC)},
		{"bearing_capacity", r.BearingCapacity},
		{"bearing_capacity_factor_of_safety", scalar(r.BearingCapacityFactorOfSafety)},
	}
	var out []Output
	for _, d := range derived {
		v, err := d.fn()
		if err != nil {
			continue
		}
		out = append(out, Output{Name: d.name, Label: Label(d.name), Value: v})
	}
	return out
}
