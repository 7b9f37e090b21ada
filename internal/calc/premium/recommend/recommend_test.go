package recommend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormula(t *testing.T) {
	tests := []struct {
		in   FormulaRecommendInput
		want string
	}{
		{FormulaRecommendInput{OreType: "coal", Location: "South Africa"}, "Salamon-Munro Metric"},
		{FormulaRecommendInput{OreType: "hard rock"}, "Hardy-Agapito"},
		{FormulaRecommendInput{Location: "india"}, "C.M.R.I."},
		{FormulaRecommendInput{}, "Obert-Duval"},
	}
	for _, tt := range tests {
		res, err := Formula(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Formula.Name)
		assert.NotEmpty(t, res.Notes)
	}

	_, err := Formula(FormulaRecommendInput{OreType: "gold"})
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Formula(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"ore_type":"coal"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res FormulaRecommendResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "Bieniawski", res.Formula.Name)
	assert.Equal(t, "linear", res.Formula.Category)
}
