package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
	"github.com/stemsi/unigrade-backend/internal/validator"
)

// ApprovalHandler serves the admin approval queue.
type ApprovalHandler struct {
	markService     *service.MarkService
	analysisService *service.AnalysisService
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(markService *service.MarkService, analysisService *service.AnalysisService) *ApprovalHandler {
	return &ApprovalHandler{markService: markService, analysisService: analysisService}
}

// ListPending godoc
// GET /api/v1/admin/marks/pending
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	pending, err := h.markService.ListPending(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, pending)
}

// Approve godoc
// POST /api/v1/admin/marks/approve
func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.transition(c, h.markService.Approve)
}

// Reject godoc
// POST /api/v1/admin/marks/reject
// Rejected marks go back to DRAFT so the teacher can edit them again.
func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.transition(c, h.markService.Reject)
}

// Analyze godoc
// POST /api/v1/admin/analysis
// Always answers 200; generator failures come back as a fallback sentence.
func (h *ApprovalHandler) Analyze(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"analysis": h.analysisService.AnalyzePending(c.Request.Context()),
	})
}

func (h *ApprovalHandler) transition(c *gin.Context, apply func(ctx context.Context, ids []string) (int, error)) {
	var req model.MarkIDsRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithFields(c, response.ErrValidation, errs)
		return
	}

	updated, err := apply(c.Request.Context(), req.IDs)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}
