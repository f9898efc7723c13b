package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akarpovs/tasktracker/internal/common"
	"github.com/akarpovs/tasktracker/internal/server/models"
	"github.com/akarpovs/tasktracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskInput carries the client-supplied fields for task creation. Status and
// priority default to pending/medium when empty.
type TaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
}

// TaskService implements the owner-scoped task operations. Every method
// takes the caller's account id as resolved by the identity gate; the
// service never derives identity on its own.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create validates the input, stamps the owner and a fresh id, and persists
// the task.
func (s *TaskService) Create(ctx context.Context, userID string, input *TaskInput) (*models.Task, error) {

	if strings.TrimSpace(input.Title) == "" {
		return nil, common.NewValidationError("title", "title is required")
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, common.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, common.NewValidationError("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns all tasks owned by userID, newest-created first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	tasks, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return tasks, nil
}

// Update applies the non-nil patch fields to the task matching
// (taskID, userID). A task owned by someone else yields
// common.ErrorNotFound, same as a missing one.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch *models.TaskPatch) (*models.Task, error) {

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, common.NewValidationError("title", "title is required")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, common.NewValidationError("status", fmt.Sprintf("unknown status %q", *patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, common.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *patch.Priority))
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Update(ctx, userID, taskID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	return task, nil
}

// Delete removes the task matching (taskID, userID), with the same
// existence-hiding behavior as Update.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {

	repo := s.repomanager.Tasks(s.db)

	if err := repo.Delete(ctx, userID, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}

	return nil
}
