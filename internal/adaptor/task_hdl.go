package adaptor

import (
	"net/http"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

type TaskHandler struct {
	service usecase.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     log,
	}
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req request.CreateTaskRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	task, err := h.service.Create(r.Context(), caller, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create task")
		return
	}

	utils.ResponseCreated(w, "Task created successfully", task)
}

// GetTasks handles GET /api/tasks
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, h.log, err, "list tasks")
		return
	}

	utils.ResponseSuccess(w, "Tasks retrieved successfully", tasks)
}

// GetTask handles GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "task")
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, h.log, err, "get task")
		return
	}

	utils.ResponseSuccess(w, "Task retrieved successfully", task)
}

// UpdateTask handles PUT /api/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "task")
	if !ok {
		return
	}

	var req request.UpdateTaskRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	task, err := h.service.Update(r.Context(), caller, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update task")
		return
	}

	utils.ResponseSuccess(w, "Task updated successfully", task)
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "task")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		writeServiceError(w, h.log, err, "delete task")
		return
	}

	utils.ResponseSuccess(w, "Task deleted successfully", nil)
}
