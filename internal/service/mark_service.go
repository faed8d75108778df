package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// MarkService drives the mark lifecycle: teacher saves, admin approval and rejection.
type MarkService struct {
	catalog repository.Catalog
	marks   repository.MarkStore
	log     zerolog.Logger
}

// NewMarkService creates a new MarkService.
func NewMarkService(catalog repository.Catalog, marks repository.MarkStore, log zerolog.Logger) *MarkService {
	return &MarkService{
		catalog: catalog,
		marks:   marks,
		log:     logger.Component(log, "mark_service"),
	}
}

// SaveMarks sets every record to SUBMITTED when submit is true, DRAFT otherwise,
// and upserts them as one batch. Totals and grades are recomputed by the store.
func (s *MarkService) SaveMarks(ctx context.Context, records []model.MarkRecord, submit bool) ([]model.MarkRecord, error) {
	status := model.MarkStatusDraft
	if submit {
		status = model.MarkStatusSubmitted
	}

	batch := make([]model.MarkRecord, len(records))
	for i, r := range records {
		r.Status = status
		batch[i] = r
	}

	saved, err := s.marks.UpsertMany(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save marks: %w", err)
	}

	s.log.Info().Int("count", len(saved)).Str("status", string(status)).Msg("marks saved")
	return saved, nil
}

// SaveCourseMarks turns edited roster rows into records and saves them.
// A row for a student that already has a record keeps that record's id and
// course snapshot; a new row takes the course's current fields.
func (s *MarkService) SaveCourseMarks(ctx context.Context, courseID string, rows []model.MarkInput, submit bool) ([]model.MarkRecord, error) {
	course, err := getCourse(ctx, s.catalog, courseID)
	if err != nil {
		return nil, err
	}

	students, err := s.catalog.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	known := make(map[string]struct{}, len(students))
	for _, st := range students {
		known[st.ID] = struct{}{}
	}

	records := make([]model.MarkRecord, 0, len(rows))
	claimed := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := known[row.StudentID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, row.StudentID)
		}

		rec, err := s.marks.Find(ctx, row.StudentID, courseID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			rec = newDraftMark(course, row.StudentID)
			if row.ID != "" {
				free, err := s.idAvailable(ctx, row.ID, claimed)
				if err != nil {
					return nil, err
				}
				if free {
					rec.ID = row.ID
				}
			}
		case err != nil:
			return nil, fmt.Errorf("find mark: %w", err)
		}

		rec.Theory = *row.Theory
		rec.Lab = *row.Lab
		claimed[rec.ID] = struct{}{}
		records = append(records, rec)
	}

	return s.SaveMarks(ctx, records, submit)
}

// idAvailable reports whether a client-supplied id belongs to no stored record
// and to no earlier row of the batch. A taken id is replaced by a fresh one so
// an approval never reaches a record it was not meant for.
func (s *MarkService) idAvailable(ctx context.Context, id string, claimed map[string]struct{}) (bool, error) {
	if _, ok := claimed[id]; ok {
		return false, nil
	}
	_, err := s.marks.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("find mark by id: %w", err)
	}
	s.log.Warn().Str("mark_id", id).Msg("client mark id already in use, assigning a new one")
	return false, nil
}

// ListPending returns every SUBMITTED record in store order.
func (s *MarkService) ListPending(ctx context.Context) ([]model.MarkRecord, error) {
	return s.marks.FilterByStatus(ctx, model.MarkStatusSubmitted)
}

// Approve moves the listed records to APPROVED and returns how many matched.
func (s *MarkService) Approve(ctx context.Context, ids []string) (int, error) {
	n, err := s.marks.Transition(ctx, ids, model.MarkStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("approve marks: %w", err)
	}
	s.log.Info().Int("requested", len(ids)).Int("updated", n).Msg("marks approved")
	return n, nil
}

// Reject sends the listed records back to DRAFT for revision.
func (s *MarkService) Reject(ctx context.Context, ids []string) (int, error) {
	n, err := s.marks.Transition(ctx, ids, model.MarkStatusDraft)
	if err != nil {
		return 0, fmt.Errorf("reject marks: %w", err)
	}
	s.log.Info().Int("requested", len(ids)).Int("updated", n).Msg("marks returned to draft")
	return n, nil
}
