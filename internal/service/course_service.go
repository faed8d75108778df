package service

import (
	"context"

	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// CourseService answers course allocation queries.
type CourseService struct {
	catalog repository.Catalog
}

// NewCourseService creates a new CourseService.
func NewCourseService(catalog repository.Catalog) *CourseService {
	return &CourseService{catalog: catalog}
}

// ListCoursesForTeacher returns the courses allocated to a teacher. An unknown
// teacher simply has no allocations.
func (s *CourseService) ListCoursesForTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	return s.catalog.ListCoursesForTeacher(ctx, teacherID)
}
