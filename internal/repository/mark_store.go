package repository

import (
	"context"

	"github.com/stemsi/unigrade-backend/internal/model"
)

// MarkStore is the authoritative state for mark records.
//
// Implementations keep at most one record per (student, course), recompute total
// and grade from the clamped scores on every write, and make each call atomic
// with respect to every other call.
type MarkStore interface {
	// Upsert replaces the record holding the same (student, course) key in place,
	// or appends a new one. The incoming status is kept.
	Upsert(ctx context.Context, m model.MarkRecord) (model.MarkRecord, error)
	// UpsertMany applies Upsert to each record as one atomic batch.
	UpsertMany(ctx context.Context, marks []model.MarkRecord) ([]model.MarkRecord, error)
	// FilterByStatus returns the records with exactly that status, in store order.
	FilterByStatus(ctx context.Context, status model.MarkStatus) ([]model.MarkRecord, error)
	// Transition sets status on every record whose id is listed and returns how
	// many records matched. Unknown ids are ignored and the current status is not checked.
	Transition(ctx context.Context, ids []string, status model.MarkStatus) (int, error)
	// Find returns the record for (studentID, courseID) or ErrNotFound.
	Find(ctx context.Context, studentID, courseID string) (model.MarkRecord, error)
	// FindByID returns the record holding id or ErrNotFound.
	FindByID(ctx context.Context, id string) (model.MarkRecord, error)
	// ListByStudent and ListByCourse return matching records in store order.
	ListByStudent(ctx context.Context, studentID string) ([]model.MarkRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.MarkRecord, error)
	ListAll(ctx context.Context) ([]model.MarkRecord, error)
}
