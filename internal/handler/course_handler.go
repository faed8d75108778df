package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/unigrade-backend/internal/grading"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
	"github.com/stemsi/unigrade-backend/internal/validator"
)

// CourseHandler serves the teacher side: allocated courses, rosters and mark entry.
type CourseHandler struct {
	courseService *service.CourseService
	rosterService *service.RosterService
	markService   *service.MarkService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(
	courseService *service.CourseService,
	rosterService *service.RosterService,
	markService *service.MarkService,
) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		rosterService: rosterService,
		markService:   markService,
	}
}

// ListTeacherCourses godoc
// GET /api/v1/teachers/:id/courses
func (h *CourseHandler) ListTeacherCourses(c *gin.Context) {
	courses, err := h.courseService.ListCoursesForTeacher(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// GetRoster godoc
// GET /api/v1/courses/:id/roster
// Every student paired with their mark for the course. Missing marks come
// back as unsaved drafts.
func (h *CourseHandler) GetRoster(c *gin.Context) {
	roster, err := h.rosterService.AssembleRoster(c.Request.Context(), c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, roster)
}

// SaveMarks godoc
// POST /api/v1/courses/:id/marks
// Saves the rows as drafts, or submits them for approval when submit is true.
func (h *CourseHandler) SaveMarks(c *gin.Context) {
	var req model.SaveMarksRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithFields(c, response.ErrValidation, errs)
		return
	}

	saved, err := h.markService.SaveCourseMarks(c.Request.Context(), c.Param("id"), req.Marks, req.Submit)
	if err != nil {
		failWith(c, err)
		return
	}
	response.Success(c, http.StatusOK, saved)
}

// PreviewGrade godoc
// POST /api/v1/grades/preview
func (h *CourseHandler) PreviewGrade(c *gin.Context) {
	var req model.GradePreviewRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithFields(c, response.ErrValidation, errs)
		return
	}
	response.Success(c, http.StatusOK, grading.Preview(*req.Theory, *req.Lab))
}
