package repository

import (
	"context"
	"sync"

	"github.com/stemsi/unigrade-backend/internal/grading"
	"github.com/stemsi/unigrade-backend/internal/model"
)

type markKey struct {
	studentID string
	courseID  string
}

// MemoryMarkStore keeps mark records in a slice guarded by a single lock.
// Slice order is store order: new records are appended, updates stay in place.
type MemoryMarkStore struct {
	mu      sync.RWMutex
	records []model.MarkRecord
	index   map[markKey]int
	byID    map[string]int
}

// NewMemoryMarkStore creates a store pre-filled with seed records.
// Seed records go through the same upsert path, so duplicates collapse.
func NewMemoryMarkStore(seed ...model.MarkRecord) *MemoryMarkStore {
	s := &MemoryMarkStore{index: make(map[markKey]int), byID: make(map[string]int)}
	for _, m := range seed {
		s.upsertLocked(m)
	}
	return s
}

// Upsert writes one record under its (student, course) key.
func (s *MemoryMarkStore) Upsert(_ context.Context, m model.MarkRecord) (model.MarkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertLocked(m), nil
}

// UpsertMany writes the batch under one lock.
func (s *MemoryMarkStore) UpsertMany(_ context.Context, marks []model.MarkRecord) ([]model.MarkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := make([]model.MarkRecord, 0, len(marks))
	for _, m := range marks {
		saved = append(saved, s.upsertLocked(m))
	}
	return saved, nil
}

func (s *MemoryMarkStore) upsertLocked(m model.MarkRecord) model.MarkRecord {
	m = grading.Recompute(m)
	m.Persisted = true

	key := markKey{m.StudentID, m.CourseID}
	if i, ok := s.index[key]; ok {
		if old := s.records[i].ID; old != m.ID && s.byID[old] == i {
			delete(s.byID, old)
		}
		s.records[i] = m
		s.byID[m.ID] = i
		return m
	}
	s.index[key] = len(s.records)
	s.byID[m.ID] = len(s.records)
	s.records = append(s.records, m)
	return m
}

// FilterByStatus returns copies of the records in the given status.
func (s *MemoryMarkStore) FilterByStatus(_ context.Context, status model.MarkStatus) ([]model.MarkRecord, error) {
	return s.filter(func(m *model.MarkRecord) bool { return m.Status == status }), nil
}

// Transition sets status on every record carrying one of ids.
func (s *MemoryMarkStore) Transition(_ context.Context, ids []string, status model.MarkStatus) (int, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.records {
		if _, ok := wanted[s.records[i].ID]; ok {
			s.records[i].Status = status
			n++
		}
	}
	return n, nil
}

// Find looks a record up by its (student, course) key.
func (s *MemoryMarkStore) Find(_ context.Context, studentID, courseID string) (model.MarkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[markKey{studentID, courseID}]; ok {
		return s.records[i], nil
	}
	return model.MarkRecord{}, ErrNotFound
}

// FindByID looks a record up by id.
func (s *MemoryMarkStore) FindByID(_ context.Context, id string) (model.MarkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.byID[id]; ok {
		return s.records[i], nil
	}
	return model.MarkRecord{}, ErrNotFound
}

func (s *MemoryMarkStore) ListByStudent(_ context.Context, studentID string) ([]model.MarkRecord, error) {
	return s.filter(func(m *model.MarkRecord) bool { return m.StudentID == studentID }), nil
}

func (s *MemoryMarkStore) ListByCourse(_ context.Context, courseID string) ([]model.MarkRecord, error) {
	return s.filter(func(m *model.MarkRecord) bool { return m.CourseID == courseID }), nil
}

func (s *MemoryMarkStore) ListAll(_ context.Context) ([]model.MarkRecord, error) {
	return s.filter(func(*model.MarkRecord) bool { return true }), nil
}

// filter copies matching records out so callers never alias store state.
func (s *MemoryMarkStore) filter(keep func(*model.MarkRecord) bool) []model.MarkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MarkRecord, 0)
	for i := range s.records {
		if keep(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}
