package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bolextract/internal/port"
)

// readinessTimeout bounds the credential check behind /readyz.
const readinessTimeout = 5 * time.Second

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	verifier port.CredentialVerifier
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(verifier port.CredentialVerifier) *HealthHandler {
	return &HealthHandler{verifier: verifier}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "System is Online"})
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	id, err := h.verifier.Verify(ctx)
	if err != nil {
		log.Printf("healthHandler.Readiness: credential check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "aws credentials not usable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "account": id.Account})
}
