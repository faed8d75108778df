package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

type fixture struct {
	catalog    *repository.MemoryCatalog
	marks      *repository.MemoryMarkStore
	roster     *RosterService
	marking    *MarkService
	transcript *TranscriptService
	dashboard  *DashboardService
}

// newFixture wires the services over the demo catalog and the given seed marks.
func newFixture(seed ...model.MarkRecord) *fixture {
	catalog := repository.NewMemoryCatalog(repository.DemoUsers(), repository.DemoCourses(), repository.DemoAllocations())
	marks := repository.NewMemoryMarkStore(seed...)
	log := zerolog.Nop()
	return &fixture{
		catalog:    catalog,
		marks:      marks,
		roster:     NewRosterService(catalog, marks, log),
		marking:    NewMarkService(catalog, marks, log),
		transcript: NewTranscriptService(catalog, marks),
		dashboard:  NewDashboardService(catalog, marks),
	}
}

func score(v float64) *float64 { return &v }

func approvedMark(id, student string, course model.Course, theory, lab float64) model.MarkRecord {
	return model.MarkRecord{
		ID: id, StudentID: student, CourseID: course.ID,
		CourseCode: course.Code, CourseName: course.Name, Credits: course.Credits, Semester: course.Semester,
		Theory: theory, Lab: lab, Status: model.MarkStatusApproved,
	}
}

func demoCourse(t *testing.T, id string) model.Course {
	t.Helper()
	for _, c := range repository.DemoCourses() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("no demo course %s", id)
	return model.Course{}
}

func mustFind(t *testing.T, f *fixture, student, course string) model.MarkRecord {
	t.Helper()
	m, err := f.marks.Find(context.Background(), student, course)
	require.NoError(t, err)
	return m
}
