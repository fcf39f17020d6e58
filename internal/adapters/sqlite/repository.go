package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/hr-review-portal/internal/domain"
)

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database. Schema migrations are managed by dbmate;
// run `dbmate up` before starting the server.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Exec runs raw SQL, used to apply migrations in tests and tooling.
func (r *Repository) Exec(ctx context.Context, query string) error {
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// ── Reviews ───────────────────────────────────────────────────────────────────

// RecordReview inserts e, assigning ID and CreatedAt when they are unset.
func (r *Repository) RecordReview(ctx context.Context, e *domain.ReviewEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (
			id, employee_id, form_type, application_id, endpoint,
			hr_user_id, comment, outcome, message, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		e.ID, e.EmployeeID, e.FormType, e.ApplicationID, e.Endpoint,
		e.HRUserID, e.Comment, e.Outcome, e.Message, e.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record review for %s/%s: %w", e.EmployeeID, e.FormType, err)
	}
	return nil
}

// ListReviews returns the employee's review attempts, newest first.
func (r *Repository) ListReviews(ctx context.Context, employeeID string) ([]domain.ReviewEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, form_type, application_id, endpoint,
		       hr_user_id, comment, outcome, message, created_at
		FROM reviews WHERE employee_id=?
		ORDER BY created_at DESC, rowid DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.ReviewEntry
	for rows.Next() {
		var e domain.ReviewEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.FormType, &e.ApplicationID, &e.Endpoint,
			&e.HRUserID, &e.Comment, &e.Outcome, &e.Message, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
