// Package deadlines provides the PostgreSQL-backed repository for the
// deadlines table.
package deadlines

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/server/models"
)

const selectColumns = `deadline_id, user_id, deadline_name, deadline_description, deadline, created_at`

// PostgresRepository implements deadline storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the deadline and fills in the generated deadline_id.
func (r *PostgresRepository) Create(ctx context.Context, deadline *models.Deadline) (*models.Deadline, error) {
	query := `
		INSERT INTO deadlines (user_id, deadline_name, deadline_description, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING deadline_id
	`
	err := r.db.QueryRowContext(ctx, query,
		deadline.UserID, deadline.Name, deadline.Description, deadline.Due, deadline.CreatedAt).Scan(&deadline.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return deadline, nil
}

// FindByUserID returns all deadlines of userID in insertion order.
func (r *PostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]*models.Deadline, error) {
	query := `SELECT ` + selectColumns + ` FROM deadlines
		WHERE user_id = $1
		ORDER BY deadline_id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select deadlines: %w", err)
	}
	return scanDeadlines(rows)
}

// DeleteByID removes the deadline with the given id. A missing id is not an error.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `
		DELETE FROM deadlines
		WHERE deadline_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindDueBetween returns deadlines of all users whose due instant lies in
// [start, end], both ends inclusive.
func (r *PostgresRepository) FindDueBetween(ctx context.Context, start, end time.Time) ([]*models.Deadline, error) {
	query := `SELECT ` + selectColumns + ` FROM deadlines
		WHERE deadline BETWEEN $1 AND $2
		ORDER BY deadline
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to select deadlines: %w", err)
	}
	return scanDeadlines(rows)
}

// Update overwrites name, description and due instant of the deadline with
// deadline.ID. A missing id is not an error.
func (r *PostgresRepository) Update(ctx context.Context, deadline *models.Deadline) error {
	query := `
		UPDATE deadlines
		SET deadline_name = $2, deadline_description = $3, deadline = $4
		WHERE deadline_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, deadline.ID, deadline.Name, deadline.Description, deadline.Due); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanDeadlines(rows *sql.Rows) ([]*models.Deadline, error) {
	defer rows.Close()

	result := make([]*models.Deadline, 0)
	for rows.Next() {
		var item models.Deadline
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.Description, &item.Due, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
