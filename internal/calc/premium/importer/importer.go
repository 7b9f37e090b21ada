// Package importer reads room-and-pillar designs from spreadsheets.
//
// The first row of the first sheet is a header. A header is either a field
// name such as "pillar.height" or its report label such as "Pillar Height";
// unknown headers are ignored. Quantity cells carry their unit: "7 ft",
// "3822 psi", "28°".
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

// Row is one design read from the sheet. Line is the 1-based sheet row.
type Row struct {
	Line  int       `json:"line"`
	Name  string    `json:"name,omitempty"`
	Input rap.Input `json:"input"`
	Error string    `json:"error,omitempty"`
}

type setter func(reg *units.Registry, row *Row, cell string) error

func value(get func(*rap.Input) *rap.Value) setter {
	return func(reg *units.Registry, row *Row, cell string) error {
		v, err := parseValue(reg, cell)
		if err != nil {
			return err
		}
		*get(&row.Input) = v
		return nil
	}
}

func optional(get func(*rap.Input) **rap.Value) setter {
	return func(reg *units.Registry, row *Row, cell string) error {
		v, err := parseValue(reg, cell)
		if err != nil {
			return err
		}
		*get(&row.Input) = &v
		return nil
	}
}

func text(get func(*rap.Input) *string) setter {
	return func(_ *units.Registry, row *Row, cell string) error {
		*get(&row.Input) = cell
		return nil
	}
}

var columns = map[string]setter{
	"name": func(_ *units.Registry, row *Row, cell string) error {
		row.Name = cell
		return nil
	},
	"sample.strength": value(func(in *rap.Input) *rap.Value { return &in.Sample.Strength }),
	"sample.height":   value(func(in *rap.Input) *rap.Value { return &in.Sample.Height }),
	"sample.diameter": value(func(in *rap.Input) *rap.Value { return &in.Sample.Diameter }),
	"sample.cylinder": func(_ *units.Registry, row *Row, cell string) error {
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return fmt.Errorf("cylinder %q: %w", cell, err)
		}
		row.Input.Sample.Cylinder = b
		return nil
	},
	"pillar.height":      value(func(in *rap.Input) *rap.Value { return &in.Pillar.Height }),
	"pillar.length":      value(func(in *rap.Input) *rap.Value { return &in.Pillar.Length }),
	"pillar.width":       optional(func(in *rap.Input) **rap.Value { return &in.Pillar.Width }),
	"room_span":          value(func(in *rap.Input) *rap.Value { return &in.RoomSpan }),
	"friction_angle":     optional(func(in *rap.Input) **rap.Value { return &in.FrictionAngle }),
	"cohesion":           optional(func(in *rap.Input) **rap.Value { return &in.Cohesion }),
	"seam_height":        optional(func(in *rap.Input) **rap.Value { return &in.SeamHeight }),
	"seam_dip":           optional(func(in *rap.Input) **rap.Value { return &in.SeamDip }),
	"mine_depth":         optional(func(in *rap.Input) **rap.Value { return &in.MineDepth }),
	"floor_density":      optional(func(in *rap.Input) **rap.Value { return &in.FloorDensity }),
	"overburden_density": optional(func(in *rap.Input) **rap.Value { return &in.OverburdenDensity }),
	"rmr": func(_ *units.Registry, row *Row, cell string) error {
		v, err := toFloat(cell)
		if err != nil {
			return fmt.Errorf("rmr %q: %w", cell, err)
		}
		row.Input.RMR = &v
		return nil
	},
	"formula":         text(func(in *rap.Input) *string { return &in.Formula }),
	"design_type":     text(func(in *rap.Input) *string { return &in.DesignType }),
	"fragment_method": text(func(in *rap.Input) *string { return &in.FragmentMethod }),
	"location":        text(func(in *rap.Input) *string { return &in.Location }),
	"ore_type":        text(func(in *rap.Input) *string { return &in.OreType }),
}

// byLabel resolves report labels back to field names.
var byLabel = func() map[string]string {
	m := make(map[string]string, len(rap.Labels))
	for name, label := range rap.Labels {
		m[strings.ToLower(label)] = name
	}
	return m
}()

func column(header string) (setter, bool) {
	h := strings.ToLower(strings.TrimSpace(header))
	if name, ok := byLabel[h]; ok {
		h = name
	}
	s, ok := columns[h]
	return s, ok
}

func parseValue(reg *units.Registry, cell string) (rap.Value, error) {
	q, err := reg.Parse(cell)
	if err != nil {
		return rap.Value{}, err
	}
	return rap.Value{Value: q.Magnitude(), Unit: q.Unit().Name}, nil
}

// ParseWorkbook reads every non-empty row of the first sheet. Rows whose
// cells cannot be read are returned with Error set.
func ParseWorkbook(r io.Reader, reg *units.Registry) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("importer: empty sheet")
	}

	header := make([]setter, len(rows[0]))
	known := 0
	for i, h := range rows[0] {
		if s, ok := column(h); ok {
			header[i] = s
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("importer: no known columns in header")
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		row, ok := parseRow(reg, header, rows[i])
		if !ok {
			continue
		}
		row.Line = i + 1
		out = append(out, row)
	}
	return out, nil
}

func parseRow(reg *units.Registry, header []setter, cells []string) (Row, bool) {
	var row Row
	seen := false
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if i >= len(header) || header[i] == nil || cell == "" {
			continue
		}
		seen = true
		if err := header[i](reg, &row, cell); err != nil && row.Error == "" {
			row.Error = err.Error()
		}
	}
	return row, seen
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
