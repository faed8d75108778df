package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stemsi/unigrade-backend/internal/grading"
	"github.com/stemsi/unigrade-backend/internal/model"
)

const markColumns = `id, student_id, course_id, course_code, course_name, credits, semester,
	theory, lab, total, grade_point, grade_letter, status`

// PostgresMarkStore persists mark records in the marks table.
// Store order is the seq column, which an upsert never changes.
type PostgresMarkStore struct {
	pool *pgxpool.Pool
}

// NewPostgresMarkStore creates a store on the given pool.
func NewPostgresMarkStore(pool *pgxpool.Pool) *PostgresMarkStore {
	return &PostgresMarkStore{pool: pool}
}

// Upsert writes one record in its own transaction.
func (r *PostgresMarkStore) Upsert(ctx context.Context, m model.MarkRecord) (model.MarkRecord, error) {
	saved, err := r.UpsertMany(ctx, []model.MarkRecord{m})
	if err != nil {
		return model.MarkRecord{}, err
	}
	return saved[0], nil
}

// UpsertMany writes the batch in one transaction. A conflict on
// (student_id, course_id) updates the row in place, keeping its seq.
func (r *PostgresMarkStore) UpsertMany(ctx context.Context, marks []model.MarkRecord) ([]model.MarkRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	saved := make([]model.MarkRecord, 0, len(marks))
	for _, m := range marks {
		m = grading.Recompute(m)
		row := tx.QueryRow(ctx,
			`INSERT INTO marks (`+markColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 ON CONFLICT (student_id, course_id) DO UPDATE SET
				id = EXCLUDED.id,
				course_code = EXCLUDED.course_code,
				course_name = EXCLUDED.course_name,
				credits = EXCLUDED.credits,
				semester = EXCLUDED.semester,
				theory = EXCLUDED.theory,
				lab = EXCLUDED.lab,
				total = EXCLUDED.total,
				grade_point = EXCLUDED.grade_point,
				grade_letter = EXCLUDED.grade_letter,
				status = EXCLUDED.status,
				updated_at = NOW()
			 RETURNING `+markColumns,
			m.ID, m.StudentID, m.CourseID, m.CourseCode, m.CourseName, m.Credits, m.Semester,
			m.Theory, m.Lab, m.Total, m.GradePoint, m.GradeLetter, m.Status,
		)
		out, err := scanMark(row)
		if err != nil {
			return nil, fmt.Errorf("upsert mark %s/%s: %w", m.StudentID, m.CourseID, err)
		}
		saved = append(saved, out)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return saved, nil
}

func (r *PostgresMarkStore) FilterByStatus(ctx context.Context, status model.MarkStatus) ([]model.MarkRecord, error) {
	return r.query(ctx, `SELECT `+markColumns+` FROM marks WHERE status = $1 ORDER BY seq`, status)
}

// Transition updates every row whose id is listed in a single statement.
func (r *PostgresMarkStore) Transition(ctx context.Context, ids []string, status model.MarkStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE marks SET status = $1, updated_at = NOW() WHERE id = ANY($2)`,
		status, ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *PostgresMarkStore) Find(ctx context.Context, studentID, courseID string) (model.MarkRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+markColumns+` FROM marks WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	m, err := scanMark(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.MarkRecord{}, ErrNotFound
	}
	return m, err
}

// FindByID looks a row up by id.
func (r *PostgresMarkStore) FindByID(ctx context.Context, id string) (model.MarkRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+markColumns+` FROM marks WHERE id = $1`, id)
	m, err := scanMark(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.MarkRecord{}, ErrNotFound
	}
	return m, err
}

func (r *PostgresMarkStore) ListByStudent(ctx context.Context, studentID string) ([]model.MarkRecord, error) {
	return r.query(ctx, `SELECT `+markColumns+` FROM marks WHERE student_id = $1 ORDER BY seq`, studentID)
}

func (r *PostgresMarkStore) ListByCourse(ctx context.Context, courseID string) ([]model.MarkRecord, error) {
	return r.query(ctx, `SELECT `+markColumns+` FROM marks WHERE course_id = $1 ORDER BY seq`, courseID)
}

func (r *PostgresMarkStore) ListAll(ctx context.Context) ([]model.MarkRecord, error) {
	return r.query(ctx, `SELECT `+markColumns+` FROM marks ORDER BY seq`)
}

func (r *PostgresMarkStore) query(ctx context.Context, sql string, args ...any) ([]model.MarkRecord, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := make([]model.MarkRecord, 0)
	for rows.Next() {
		m, err := scanMark(rows)
		if err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func scanMark(row pgx.Row) (model.MarkRecord, error) {
	var m model.MarkRecord
	err := row.Scan(&m.ID, &m.StudentID, &m.CourseID, &m.CourseCode, &m.CourseName, &m.Credits, &m.Semester,
		&m.Theory, &m.Lab, &m.Total, &m.GradePoint, &m.GradeLetter, &m.Status)
	if err != nil {
		return model.MarkRecord{}, err
	}
	m.Persisted = true
	return m, nil
}
