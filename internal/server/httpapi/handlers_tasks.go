package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/akarpovs/tasktracker/internal/server/models"
	"github.com/akarpovs/tasktracker/internal/server/services"
	"github.com/gorilla/mux"
)

type createTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), userID, &services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	tasks, err := s.tasks.List(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	taskID := mux.Vars(r)["id"]

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), userID, taskID, &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	taskID := mux.Vars(r)["id"]

	if err := s.tasks.Delete(r.Context(), userID, taskID); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted successfully"})
}
