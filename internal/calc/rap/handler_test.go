package rap_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

func post(t *testing.T, fn http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodPost, "/", &buf))
	return rec
}

func TestHandlerCalc(t *testing.T) {
	h := rap.NewHandler(units.NewRegistry(), nil)

	rec := post(t, h.Calc, coalInput())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var res rap.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 3.95, units.Round(res.FactorOfSafety, 2))

	rec = post(t, h.Calc, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerSolve(t *testing.T) {
	h := rap.NewHandler(units.NewRegistry(), nil)

	rec := post(t, h.Solve, metricInput())
	require.Equal(t, http.StatusOK, rec.Code)
	var res rap.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.NotNil(t, res.SolvedWidth)

	in := metricInput()
	in.CustomFormula = nil
	in.Formula = "hardy agapito"
	rec = post(t, h.Solve, in)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	in.Formula = "nope"
	rec = post(t, h.Solve, in)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerFormulas(t *testing.T) {
	h := rap.NewHandler(units.NewRegistry(), nil)
	rec := httptest.NewRecorder()
	h.Formulas(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []rap.FormulaInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 9)
	assert.Equal(t, "Hardy-Agapito", list[0].Name)
}

func TestHandlerRejectsFlooredPillar(t *testing.T) {
	h := rap.NewHandler(units.NewRegistry(), nil)

	in := coalInput()
	in.Pillar.Height = rap.Value{Value: -7, Unit: "ft"}
	for _, fn := range []http.HandlerFunc{h.Calc, h.Solve} {
		rec := post(t, fn, in)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "pillar.height")
	}
}
