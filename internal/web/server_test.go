package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/devguide/internal/glossary"
	"github.com/kamusis/devguide/internal/logging"
)

func TestHandler_ServesGlossary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.json")
	body := `{"terms": [{"term": "API", "reading": "エーピーアイ", "category": "Web", "description": "d", "example": "e", "relatedTerms": ["REST"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	s := NewServer(":0", path, logging.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/glossary.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var g glossary.Glossary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Len(t, g.Terms, 1)
	assert.Equal(t, "API", g.Terms[0].Term)
}

func TestHandler_MissingGlossaryIs404(t *testing.T) {
	s := NewServer(":0", filepath.Join(t.TempDir(), "missing.json"), logging.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/glossary.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandler_InvalidGlossaryIs500(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"terms": "nope"}`), 0o644))
	s := NewServer(":0", path, logging.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/glossary.json", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_ServesIndexPage(t *testing.T) {
	s := NewServer(":0", "unused.json", logging.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fetch('/glossary.json')")
}

func TestHandler_IndexPageRanksWithGlossaryWeights(t *testing.T) {
	s := NewServer(":0", "unused.json", logging.Nop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	page := rec.Body.String()
	assert.Contains(t, page, fmt.Sprintf("const THRESHOLD = %v;", glossary.DefaultThreshold))
	for _, k := range glossary.DefaultKeys {
		assert.Contains(t, page, fmt.Sprintf("{ name: '%s', weight: %v,", k.Name, k.Weight))
	}
	assert.Contains(t, page, "rank(terms.filter(")
	assert.NotContains(t, page, ".includes(q)")
}
