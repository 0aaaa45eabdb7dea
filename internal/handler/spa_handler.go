package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAHandler serves the built frontend and falls back to index.html for client routes.
type SPAHandler struct {
	buildDir string
}

// NewSPAHandler creates a new SPAHandler rooted at buildDir.
func NewSPAHandler(buildDir string) *SPAHandler {
	return &SPAHandler{buildDir: buildDir}
}

// Built reports whether the frontend build directory exists.
func (h *SPAHandler) Built() bool {
	info, err := os.Stat(h.buildDir)
	return err == nil && info.IsDir()
}

// AssetsDir returns the directory served under /assets.
func (h *SPAHandler) AssetsDir() string {
	return filepath.Join(h.buildDir, "assets")
}

// Fallback handles unmatched routes. API-looking paths get a JSON 404; everything
// else receives index.html so the client router can take over.
func (h *SPAHandler) Fallback(c *gin.Context) {
	path := strings.TrimPrefix(c.Request.URL.Path, "/")
	if strings.HasPrefix(path, "api") || strings.HasPrefix(path, "extract") {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "API endpoint not found")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "route not found")
		return
	}

	if !h.Built() {
		c.JSON(http.StatusOK, gin.H{"message": "Frontend not built. Please run `npm run build` in textract-spark directory."})
		return
	}
	c.File(filepath.Join(h.buildDir, "index.html"))
}
