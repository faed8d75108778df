package repository

import (
	"context"
	"strings"

	"github.com/stemsi/unigrade-backend/internal/model"
)

// MemoryCatalog holds reference data built once at startup. It is never mutated,
// so reads need no locking.
type MemoryCatalog struct {
	users       []model.User
	courses     []model.Course
	allocations []model.CourseAllocation
}

// NewMemoryCatalog creates a catalog over fixed reference data.
func NewMemoryCatalog(users []model.User, courses []model.Course, allocations []model.CourseAllocation) *MemoryCatalog {
	return &MemoryCatalog{
		users:       append([]model.User(nil), users...),
		courses:     append([]model.Course(nil), courses...),
		allocations: append([]model.CourseAllocation(nil), allocations...),
	}
}

func (c *MemoryCatalog) FindUserByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	for i := range c.users {
		u := c.users[i]
		if strings.EqualFold(u.Email, identifier) || (u.StudentID != "" && u.StudentID == identifier) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCatalog) GetUser(_ context.Context, id string) (*model.User, error) {
	for i := range c.users {
		if c.users[i].ID == id {
			u := c.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCatalog) ListStudents(_ context.Context) ([]model.User, error) {
	students := make([]model.User, 0)
	for _, u := range c.users {
		if u.Role == model.RoleStudent {
			students = append(students, u)
		}
	}
	return students, nil
}

func (c *MemoryCatalog) GetCourse(_ context.Context, id string) (*model.Course, error) {
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := c.courses[i]
			return &course, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCatalog) ListCourses(_ context.Context) ([]model.Course, error) {
	return append([]model.Course{}, c.courses...), nil
}

func (c *MemoryCatalog) ListCoursesForTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	courses := make([]model.Course, 0)
	for _, a := range c.allocations {
		if a.TeacherID != teacherID {
			continue
		}
		course, err := c.GetCourse(ctx, a.CourseID)
		if err != nil {
			// allocation pointing at a missing course
			continue
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
