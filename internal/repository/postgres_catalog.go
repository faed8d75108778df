package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stemsi/unigrade-backend/internal/model"
)

const (
	userColumns   = `id, name, email, role, COALESCE(department, ''), COALESCE(student_id, '')`
	courseColumns = `id, code, name, credits, department, semester`
)

// PostgresCatalog reads reference data from the users, courses and
// course_allocations tables.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog creates a catalog on the given pool.
func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{pool: pool}
}

func (r *PostgresCatalog) FindUserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE LOWER(email) = LOWER($1) OR student_id = $1
		 ORDER BY id LIMIT 1`, identifier)
	return scanUser(row)
}

func (r *PostgresCatalog) GetUser(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresCatalog) ListStudents(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PostgresCatalog) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var c model.Course
	err := r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id).
		Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Department, &c.Semester)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCatalog) ListCourses(ctx context.Context) ([]model.Course, error) {
	return r.queryCourses(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
}

func (r *PostgresCatalog) ListCoursesForTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	return r.queryCourses(ctx,
		`SELECT c.id, c.code, c.name, c.credits, c.department, c.semester
		 FROM course_allocations a
		 JOIN courses c ON c.id = a.course_id
		 WHERE a.teacher_id = $1
		 ORDER BY a.id`, teacherID)
}

func (r *PostgresCatalog) queryCourses(ctx context.Context, sql string, args ...any) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]model.Course, 0)
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Department, &c.Semester); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department, &u.StudentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SeedCatalog inserts reference data, leaving rows that already exist untouched.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, users []model.User, courses []model.Course, allocations []model.CourseAllocation) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, u := range users {
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, name, email, role, department, student_id)
				 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
				 ON CONFLICT (id) DO NOTHING`,
				u.ID, u.Name, u.Email, u.Role, u.Department, u.StudentID); err != nil {
				return err
			}
		}
		for _, c := range courses {
			if _, err := tx.Exec(ctx,
				`INSERT INTO courses (`+courseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)
				 ON CONFLICT (id) DO NOTHING`,
				c.ID, c.Code, c.Name, c.Credits, c.Department, c.Semester); err != nil {
				return err
			}
		}
		for _, a := range allocations {
			if _, err := tx.Exec(ctx,
				`INSERT INTO course_allocations (id, course_id, teacher_id, academic_session)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (id) DO NOTHING`,
				a.ID, a.CourseID, a.TeacherID, a.AcademicSession); err != nil {
				return err
			}
		}
		return nil
	})
}
