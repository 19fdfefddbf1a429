package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	Create(ctx context.Context, caller Caller, req *request.CreateTaskRequest) (*response.TaskResponse, error)
	List(ctx context.Context, caller Caller) ([]response.TaskResponse, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*response.TaskResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateTaskRequest) (*response.TaskResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type taskService struct {
	tasks repository.TaskRepository
	now   clock
	log   *zap.Logger
}

func NewTaskService(tasks repository.TaskRepository, log *zap.Logger) TaskService {
	return &taskService{
		tasks: tasks,
		now:   systemClock,
		log:   log.With(zap.String("service", "task")),
	}
}

func parseTaskDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, apperror.BadRequest("date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

func (s *taskService) Create(ctx context.Context, caller Caller, req *request.CreateTaskRequest) (*response.TaskResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create task validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	date, err := parseTaskDate(req.Date)
	if err != nil {
		return nil, err
	}
	status := entity.TaskPending
	if req.Status != "" {
		status = entity.TaskStatus(req.Status)
	}

	now := s.now()
	task := &entity.Task{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         strings.TrimSpace(req.Title),
		Location:      strings.TrimSpace(req.Location),
		ScheduledTime: req.Time,
		TaskDate:      date,
		Status:        status,
		CreatedBy:     caller.ID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, serverError(err, "failed to create task")
	}

	s.log.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", caller.ID.String()))

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) List(ctx context.Context, caller Caller) ([]response.TaskResponse, error) {
	tasks, err := s.tasks.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, serverError(err, "failed to list tasks")
	}
	return response.TasksToResponse(tasks), nil
}

func (s *taskService) owned(ctx context.Context, caller Caller, id uuid.UUID) (*entity.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, serverError(err, "failed to load task")
	}
	if task == nil {
		return nil, apperror.NotFound("Task not found")
	}
	if !task.OwnedBy(caller.ID) {
		s.log.Warn("Task access denied",
			zap.String("task_id", id.String()),
			zap.String("user_id", caller.ID.String()))
		return nil, apperror.Forbidden("Not authorized to access this task")
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, caller Caller, id uuid.UUID) (*response.TaskResponse, error) {
	task, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateTaskRequest) (*response.TaskResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	task, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Location != nil {
		task.Location = strings.TrimSpace(*req.Location)
	}
	if req.Time != nil {
		task.ScheduledTime = *req.Time
	}
	if req.Date != nil {
		date, err := parseTaskDate(*req.Date)
		if err != nil {
			return nil, err
		}
		task.TaskDate = date
	}
	if req.Status != nil {
		task.Status = entity.TaskStatus(*req.Status)
	}
	task.Touch(s.now())

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Task not found")
		}
		return nil, serverError(err, "failed to update task")
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Task not found")
		}
		return serverError(err, "failed to delete task")
	}

	s.log.Info("Task deleted",
		zap.String("task_id", id.String()),
		zap.String("user_id", caller.ID.String()))
	return nil
}
