package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
)

// TranscriptHandler serves student transcripts.
type TranscriptHandler struct {
	transcriptService *service.TranscriptService
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(transcriptService *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// GetTranscript godoc
// GET /api/v1/students/:id/transcript
// Approved results only, grouped by semester.
func (h *TranscriptHandler) GetTranscript(c *gin.Context) {
	transcript, err := h.transcriptService.GetTranscript(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, transcript)
}
