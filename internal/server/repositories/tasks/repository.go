package tasks

import (
	"context"

	"github.com/akarpovs/tasktracker/internal/server/models"
)

// Repository is the ownership-scoped task store. Update and Delete match on
// (task id AND owner id) in a single statement, so a task that exists but
// belongs to someone else is indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// ListByOwner returns the owner's tasks, newest-created first.
	ListByOwner(ctx context.Context, userID string) ([]*models.Task, error)
	// Update applies the non-nil patch fields to the task matching
	// (taskID, userID). No match yields common.ErrorNotFound.
	Update(ctx context.Context, userID, taskID string, patch *models.TaskPatch) (*models.Task, error)
	// Delete removes the task matching (taskID, userID). No match yields
	// common.ErrorNotFound.
	Delete(ctx context.Context, userID, taskID string) error
}
