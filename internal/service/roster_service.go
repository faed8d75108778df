package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/grading"
	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// RosterService assembles the editable per-course mark sheet.
type RosterService struct {
	catalog repository.Catalog
	marks   repository.MarkStore
	log     zerolog.Logger
}

// NewRosterService creates a new RosterService.
func NewRosterService(catalog repository.Catalog, marks repository.MarkStore, log zerolog.Logger) *RosterService {
	return &RosterService{
		catalog: catalog,
		marks:   marks,
		log:     logger.Component(log, "roster_service"),
	}
}

// AssembleRoster pairs every student with their mark for the course. Students
// without a stored record get a placeholder draft that is not written anywhere.
func (s *RosterService) AssembleRoster(ctx context.Context, courseID string) ([]model.RosterEntry, error) {
	course, err := getCourse(ctx, s.catalog, courseID)
	if err != nil {
		return nil, err
	}

	students, err := s.catalog.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	stored, err := s.marks.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course marks: %w", err)
	}
	byStudent := make(map[string]model.MarkRecord, len(stored))
	for _, m := range stored {
		byStudent[m.StudentID] = m
	}

	roster := make([]model.RosterEntry, 0, len(students))
	for _, st := range students {
		mark, ok := byStudent[st.ID]
		if !ok {
			mark = newDraftMark(course, st.ID)
		}
		roster = append(roster, model.RosterEntry{Student: st, Mark: mark})
	}

	s.log.Debug().Str("course_id", courseID).Int("students", len(roster)).Int("stored", len(stored)).Msg("roster assembled")
	return roster, nil
}

// newDraftMark builds a transient zero-score draft carrying the course snapshot.
func newDraftMark(course *model.Course, studentID string) model.MarkRecord {
	return model.MarkRecord{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		CourseID:    course.ID,
		CourseCode:  course.Code,
		CourseName:  course.Name,
		Credits:     course.Credits,
		Semester:    course.Semester,
		GradeLetter: grading.Failing.Letter,
		GradePoint:  grading.Failing.Point,
		Status:      model.MarkStatusDraft,
		Persisted:   false,
	}
}

func getCourse(ctx context.Context, catalog repository.Catalog, courseID string) (*model.Course, error) {
	course, err := catalog.GetCourse(ctx, courseID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}
