package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/config"
	"MineRappa/internal/repo"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	router := mux.NewRouter()
	HandleList(router, config.Config{Addr: ":0", TokenKey: "test-key"}, repo.NewPostgres(nil))
	return CORS(router)
}

func TestFormulasIsPublic(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/formulas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []rap.FormulaInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, len(rap.Catalogue()))
}

func TestUserRoutesNeedSession(t *testing.T) {
	srv := newServer(t)
	for _, path := range []string{"/api/user/rap/calc", "/api/user/rap/solve", "/api/user/designs"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}")))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/user/rap/calc", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
