package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpovs/tasktracker/internal/common"
	"github.com/akarpovs/tasktracker/internal/dbx"
	"github.com/akarpovs/tasktracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (id, user_id, title, description, status, priority, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description,
		task.Status, task.Priority, task.DueDate).Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Task, error) {

	query :=
		`SELECT id, user_id, title, description, status, priority, due_date, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Status, &task.Priority, &task.DueDate, &task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the patch with COALESCE so unspecified fields keep their
// stored values. The compound WHERE clause is the ownership enforcement
// boundary: the row is located and updated in one atomic statement.
func (r *PostgresRepository) Update(ctx context.Context, userID, taskID string, patch *models.TaskPatch) (*models.Task, error) {

	query :=
		`UPDATE tasks
		 SET title = COALESCE($3, title),
		     description = COALESCE($4, description),
		     status = COALESCE($5, status),
		     priority = COALESCE($6, priority),
		     due_date = COALESCE($7, due_date)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, status, priority, due_date, created_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query,
		taskID, userID,
		nullString(patch.Title),
		nullString(patch.Description),
		nullStatus(patch.Status),
		nullPriority(patch.Priority),
		nullTimePtr(patch.DueDate),
	).Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID string) error {

	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullStatus(s *models.TaskStatus) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}

func nullPriority(p *models.TaskPriority) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*p), Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
