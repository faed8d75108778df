package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/unigrade-backend/internal/database"
	"github.com/stemsi/unigrade-backend/internal/response"
)

// HealthHandler reports on the configured backing services.
type HealthHandler struct {
	drivers gin.H
	probes  []database.Probe
}

// NewHealthHandler creates a HealthHandler. The memory drivers need no probes.
func NewHealthHandler(storeDriver, sessionDriver string, probes ...database.Probe) *HealthHandler {
	return &HealthHandler{
		drivers: gin.H{"store": storeDriver, "sessions": sessionDriver},
		probes:  probes,
	}
}

// Check godoc
// GET /health
// Answers 503 with the failing backends when any probe fails.
func (h *HealthHandler) Check(c *gin.Context) {
	failing := make(map[string]string)
	for _, p := range h.probes {
		if err := p.Check(c.Request.Context()); err != nil {
			failing[p.Name] = err.Error()
		}
	}
	if len(failing) > 0 {
		response.FailWithFields(c, response.ErrUnavailable, failing)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok", "drivers": h.drivers})
}
