package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "bolextract/docs"
	"bolextract/internal/handler"
	"bolextract/internal/router"
	"bolextract/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	return router.Setup(
		[]string{"http://localhost:8080"},
		handler.NewExtractionHandler(new(mocks.MockExtractionService)),
		handler.NewHealthHandler(new(mocks.MockCredentialVerifier)),
		handler.NewSPAHandler(staticDir),
	)
}

func TestRouter_Health(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "System is Online")
}

func TestRouter_Preflight(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/extract/bol", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ExtractRequiresFile(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/extract/bol", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestRouter_UnknownAPIRoute(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "API endpoint not found")
}

func TestRouter_ServesAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('bol')"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o600))
	r := setupRouter(t, dir)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/assets/app.js", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/history", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<html>")
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/extract/bol/s3")
}
