package repository

import (
	"context"

	"github.com/stemsi/unigrade-backend/internal/model"
)

// Catalog serves the read-only reference data: users, courses and allocations.
type Catalog interface {
	// FindUserByIdentifier matches an email (case-insensitive) or a student registry number.
	FindUserByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	// ListStudents returns every STUDENT user. There is no per-course enrollment,
	// every student is on every course roster.
	ListStudents(ctx context.Context) ([]model.User, error)
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
	// ListCoursesForTeacher resolves the teacher's allocations to courses, in allocation order.
	ListCoursesForTeacher(ctx context.Context, teacherID string) ([]model.Course, error)
}
