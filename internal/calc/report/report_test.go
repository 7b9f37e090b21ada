package report

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

func design() rap.Input {
	return rap.Input{
		Sample: rap.SampleInput{
			Strength: rap.Value{Value: 40, Unit: "MPa"},
			Height:   rap.Value{Value: 100, Unit: "mm"},
			Diameter: rap.Value{Value: 50, Unit: "mm"},
			Cylinder: true,
		},
		Pillar: rap.PillarInput{
			Height: rap.Value{Value: 3, Unit: "m"},
			Length: rap.Value{Value: 10, Unit: "m"},
		},
		RoomSpan:          rap.Value{Value: 6, Unit: "m"},
		Formula:           "Stacey-Page",
		MineDepth:         &rap.Value{Value: 150, Unit: "m"},
		OverburdenDensity: &rap.Value{Value: 22.5, Unit: "kN/m³"},
		FrictionAngle:     &rap.Value{Value: 28, Unit: "°"},
		Cohesion:          &rap.Value{Value: 1.2, Unit: "MPa"},
		FloorDensity:      &rap.Value{Value: 22, Unit: "kN/m³"},
		OreType:           "hard_rock",
	}
}

func TestReportLines(t *testing.T) {
	d, err := rap.Build(units.NewRegistry(), design())
	require.NoError(t, err)

	in := map[string]string{}
	for _, l := range inputs(d) {
		in[l.label] = l.value
	}
	assert.Equal(t, "10 m", in["Pillar Width"])
	assert.Equal(t, "150 m", in["Mine Depth"])
	assert.Equal(t, "28 °", in["Friction Angle"])
	assert.Equal(t, "hard_rock", in["Ore Type"])
	assert.Contains(t, in["Pillar Strength Formula"], "Stacey-Page")

	out := map[string]string{}
	for _, l := range outputs(d) {
		out[l.label] = l.value
	}
	assert.Contains(t, out, "Bearing Capacity Factor of Safety")
	assert.Contains(t, out, "Factor of Safety Check")
}

func TestRender(t *testing.T) {
	d, err := rap.Build(units.NewRegistry(), design())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Meta{Project: "North panel", Author: "mine planning", Notes: "σv from 22.5 kN/m³"}, d))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestHandler(t *testing.T) {
	h := &Handler{Units: units.NewRegistry(), Log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	body, err := json.Marshal(Input{Meta: Meta{Title: "Panel 3"}, Design: design()})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	bad := design()
	bad.Formula = "nope"
	body, err = json.Marshal(Input{Design: bad})
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
