package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// DashboardService computes the admin dashboard cards.
type DashboardService struct {
	catalog repository.Catalog
	marks   repository.MarkStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(catalog repository.Catalog, marks repository.MarkStore) *DashboardService {
	return &DashboardService{catalog: catalog, marks: marks}
}

// GetSystemStats counts students, courses and pending approvals. AvgGPA is the
// mean CGPA of the students holding at least one approved mark, 0 if none do.
func (s *DashboardService) GetSystemStats(ctx context.Context) (*model.SystemStats, error) {
	students, err := s.catalog.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	all, err := s.marks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}

	pending := 0
	approved := make(map[string][]model.MarkRecord)
	for _, m := range all {
		switch m.Status {
		case model.MarkStatusSubmitted:
			pending++
		case model.MarkStatusApproved:
			approved[m.StudentID] = append(approved[m.StudentID], m)
		}
	}

	return &model.SystemStats{
		TotalStudents:    len(students),
		TotalCourses:     len(courses),
		PendingApprovals: pending,
		AvgGPA:           averageCGPA(approved),
	}, nil
}

func averageCGPA(approved map[string][]model.MarkRecord) float64 {
	if len(approved) == 0 {
		return 0
	}

	ids := make([]string, 0, len(approved))
	for id := range approved {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sum float64
	for _, id := range ids {
		sum += BuildTranscript(model.User{ID: id}, approved[id]).CGPA
	}
	return sum / float64(len(ids))
}
