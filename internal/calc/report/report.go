// Package report renders room-and-pillar designs as PDF.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// greek spells out letters the core PDF fonts cannot encode.
var greek = strings.NewReplacer("γ", "gamma", "σ", "sigma", "φ", "phi")

type line struct {
	label, value string
}

func inputs(d *rap.RoomAndPillar) []line {
	var out []line
	add := func(name string, q *units.Quantity) {
		if q != nil {
			out = append(out, line{rap.Label(name), q.Round(3).String()})
		}
	}
	if p := d.Pillar; p != nil {
		h, l, w := p.Height(), p.Length(), p.Width()
		add("pillar.height", &h)
		add("pillar.length", &l)
		add("pillar.width", &w)
		if s := p.Sample; s != nil {
			st, sh, sd := s.Strength, s.Height(), s.Diameter()
			add("sample.strength", &st)
			add("sample.height", &sh)
			add("sample.diameter", &sd)
		}
	}
	add("room_span", d.RoomSpan)
	add("mine_depth", d.MineDepth)
	add("overburden_density", d.OverburdenDensity)
	add("seam_height", d.SeamHeight)
	add("seam_dip", d.SeamDip)
	add("friction_angle", d.FrictionAngle)
	add("cohesion", d.Cohesion)
	add("floor_density", d.FloorDensity)
	if d.RMR != nil {
		out = append(out, line{rap.Label("rmr"), fmt.Sprintf("%g", *d.RMR)})
	}
	if d.Formula != nil {
		f := d.Formula
		out = append(out, line{rap.Label("formula"), fmt.Sprintf("%s (%s, %s)", f.Name(), f.Category(), f.System())})
		if k, ok := f.K(); ok {
			out = append(out, line{rap.Label("k"), k.String()})
		}
		out = append(out, line{rap.Label("fos"), fmt.Sprintf("%.2f (%.2f to %.2f)", f.FOS().Recommended, f.FOS().Lower, f.FOS().Upper)})
	}
	for _, e := range []struct {
		name string
		v    fmt.Stringer
		set  bool
	}{
		{"design_type", d.DesignType, d.DesignType != 0},
		{"fragment_method", d.FragmentMethod, d.FragmentMethod != 0},
		{"location", d.Location, d.Location != 0},
		{"ore_type", d.OreType, d.OreType != 0},
	} {
		if e.set {
			out = append(out, line{rap.Label(e.name), e.v.String()})
		}
	}
	return out
}

func outputs(d *rap.RoomAndPillar) []line {
	var out []line
	for _, o := range d.Outputs() {
		out = append(out, line{o.Label, o.Value.Round(3).String()})
	}
	if d.Formula != nil {
		if fos, err := d.FactorOfSafety(); err == nil {
			verdict := "outside"
			if d.Formula.IsGoodFactorOfSafety(fos) {
				verdict = "inside"
			}
			out = append(out, line{"Factor of Safety Check", verdict + " the " + d.Formula.Name() + " band"})
		}
	}
	return out
}

func table(pdf *gofpdf.Fpdf, heading string, rows []line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(90, 6, r.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r.value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// Render writes a report of d to w. Values the design lacks inputs for
// are left out.
func Render(w io.Writer, meta Meta, d *rap.RoomAndPillar) error {
	if meta.Title == "" {
		meta.Title = "Room and Pillar Design"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	translate := func(rows []line) []line {
		for i := range rows {
			rows[i].label, rows[i].value = tr(greek.Replace(rows[i].label)), tr(greek.Replace(rows[i].value))
		}
		return rows
	}
	table(pdf, "Inputs", translate(inputs(d)))
	table(pdf, "Results", translate(outputs(d)))

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(meta.Notes), "", "L", false)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
