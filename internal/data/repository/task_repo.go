package repository

import (
	"context"
	"errors"
	"fmt"

	"phi-inspection/internal/data/entity"
	"phi-inspection/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaskRepository(db database.PgxIface, log *zap.Logger) TaskRepository {
	return &taskRepository{
		db:  db,
		log: log,
	}
}

const taskColumns = `id, title, location, scheduled_time, task_date, status, created_by, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Location,
		&task.ScheduledTime,
		&task.TaskDate,
		&task.Status,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tr *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, location, scheduled_time, task_date, status,
		                   created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := tr.db.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Location,
		task.ScheduledTime,
		task.TaskDate,
		task.Status,
		task.CreatedBy,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		tr.log.Error("Failed to create task",
			zap.Error(err),
			zap.String("title", task.Title),
		)
		return fmt.Errorf("create task %s: %w", task.Title, err)
	}
	return nil
}

func (tr *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(tr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find task by ID",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return nil, fmt.Errorf("find task by ID %s: %w", id, err)
	}
	return task, nil
}

// FindByOwner lists the owner's tasks in schedule order.
func (tr *taskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE created_by = $1 ORDER BY task_date ASC, scheduled_time ASC`

	rows, err := tr.db.Query(ctx, query, ownerID)
	if err != nil {
		tr.log.Error("Failed to list tasks",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("list tasks for %s: %w", ownerID, err)
	}
	defer rows.Close()

	tasks := []*entity.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			tr.log.Error("Failed to scan task row", zap.Error(err))
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

func (tr *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, location = $3, scheduled_time = $4, task_date = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Location,
		task.ScheduledTime,
		task.TaskDate,
		task.Status,
		task.UpdatedAt,
	)
	if err != nil {
		tr.log.Error("Failed to update task",
			zap.Error(err),
			zap.String("task_id", task.ID.String()),
		)
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (tr *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := tr.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		tr.log.Error("Failed to delete task",
			zap.Error(err),
			zap.String("task_id", id.String()),
		)
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
