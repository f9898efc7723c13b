package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarpovs/tasktracker/internal/common"
	"github.com/akarpovs/tasktracker/internal/server/models"
)

func newTaskService(rm *fakeRepoManager) *TaskService {
	return NewTaskService(nil, rm)
}

func TestTaskCreate_Defaults(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(rm)

	task, err := s.Create(context.Background(), "u-1", &TaskInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("want default status pending, got %q", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Fatalf("want default priority medium, got %q", task.Priority)
	}
	if task.UserID != "u-1" {
		t.Fatalf("owner not stamped: %q", task.UserID)
	}
	if task.ID == "" {
		t.Fatal("expected generated task id")
	}
}

func TestTaskCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input TaskInput
		field string
	}{
		{"empty title", TaskInput{Title: "   "}, "title"},
		{"bad status", TaskInput{Title: "x", Status: "archived"}, "status"},
		{"bad priority", TaskInput{Title: "x", Priority: "urgent"}, "priority"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTaskService(&fakeRepoManager{t: &fakeTasksRepo{}})

			_, err := s.Create(context.Background(), "u-1", &tc.input)
			var ve *common.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("want validation error on %q, got %v", tc.field, err)
			}
		})
	}
}

func TestTaskCreate_RepoFailure(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{createErr: errors.New("db down")}}
	s := newTaskService(rm)

	_, err := s.Create(context.Background(), "u-1", &TaskInput{Title: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTaskList_PassesOwnerThrough(t *testing.T) {
	now := time.Now()
	rm := &fakeRepoManager{t: &fakeTasksRepo{listOut: []*models.Task{
		{ID: "t-2", UserID: "u-1", Title: "Second", CreatedAt: now},
		{ID: "t-1", UserID: "u-1", Title: "First", CreatedAt: now.Add(-time.Hour)},
	}}}
	s := newTaskService(rm)

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t-2" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestTaskUpdate_ValidatesPatch(t *testing.T) {
	s := newTaskService(&fakeRepoManager{t: &fakeTasksRepo{}})

	empty := ""
	if _, err := s.Update(context.Background(), "u-1", "t-1", &models.TaskPatch{Title: &empty}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty title must fail validation, got %v", err)
	}

	bad := models.TaskStatus("archived")
	if _, err := s.Update(context.Background(), "u-1", "t-1", &models.TaskPatch{Status: &bad}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("unknown status must fail validation, got %v", err)
	}

	badP := models.TaskPriority("urgent")
	if _, err := s.Update(context.Background(), "u-1", "t-1", &models.TaskPatch{Priority: &badP}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("unknown priority must fail validation, got %v", err)
	}
}

func TestTaskUpdate_NotFoundPassthrough(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{updateErr: common.ErrorNotFound}}
	s := newTaskService(rm)

	status := models.StatusCompleted
	_, err := s.Update(context.Background(), "u-intruder", "t-1", &models.TaskPatch{Status: &status})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestTaskDelete_NotFoundPassthrough(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{deleteErr: common.ErrorNotFound}}
	s := newTaskService(rm)

	if err := s.Delete(context.Background(), "u-intruder", "t-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestTaskDelete_Success(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(rm)

	if err := s.Delete(context.Background(), "u-1", "t-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
