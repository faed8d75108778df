package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// TranscriptService builds transcripts from approved marks only.
type TranscriptService struct {
	catalog repository.Catalog
	marks   repository.MarkStore
}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService(catalog repository.Catalog, marks repository.MarkStore) *TranscriptService {
	return &TranscriptService{catalog: catalog, marks: marks}
}

// GetTranscript returns the student's transcript. A student without approved
// marks gets no semesters and a CGPA of 0.
func (s *TranscriptService) GetTranscript(ctx context.Context, studentID string) (*model.TranscriptData, error) {
	student, err := s.catalog.GetUser(ctx, studentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student.Role != model.RoleStudent {
		return nil, ErrStudentNotFound
	}

	marks, err := s.marks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list student marks: %w", err)
	}

	t := BuildTranscript(*student, marks)
	return &t, nil
}

// BuildTranscript groups the student's APPROVED marks by semester and computes
// the credit-weighted GPA of each semester and the CGPA across them. Marks of
// other students or in any other status are ignored.
func BuildTranscript(student model.User, marks []model.MarkRecord) model.TranscriptData {
	bySemester := make(map[int][]model.MarkRecord)
	for _, m := range marks {
		if m.StudentID != student.ID || m.Status != model.MarkStatusApproved {
			continue
		}
		bySemester[m.Semester] = append(bySemester[m.Semester], m)
	}

	semesters := make([]model.GradeSheet, 0, len(bySemester))
	for sem, results := range bySemester {
		var credits, points float64
		for _, r := range results {
			credits += r.Credits
			points += r.GradePoint * r.Credits
		}
		semesters = append(semesters, model.GradeSheet{
			Semester:     sem,
			Results:      results,
			TotalCredits: credits,
			GPA:          weightedAverage(points, credits),
		})
	}
	sort.Slice(semesters, func(i, j int) bool { return semesters[i].Semester < semesters[j].Semester })

	var allCredits, allPoints float64
	for _, sheet := range semesters {
		allCredits += sheet.TotalCredits
		allPoints += sheet.GPA * sheet.TotalCredits
	}

	return model.TranscriptData{
		Student:   student,
		Semesters: semesters,
		CGPA:      weightedAverage(allPoints, allCredits),
	}
}

// weightedAverage is 0 when there is no weight.
func weightedAverage(points, credits float64) float64 {
	if credits == 0 {
		return 0
	}
	return points / credits
}
