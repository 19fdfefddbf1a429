package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskOverdue   TaskStatus = "overdue"
)

// Task is an officer's scheduled field visit. ScheduledTime is "HH:MM".
type Task struct {
	Base
	Title         string     `db:"title"`
	Location      string     `db:"location"`
	ScheduledTime string     `db:"scheduled_time"`
	TaskDate      time.Time  `db:"task_date"`
	Status        TaskStatus `db:"status"`
	CreatedBy     uuid.UUID  `db:"created_by"`
}

func (t *Task) OwnedBy(userID uuid.UUID) bool {
	return t.CreatedBy == userID
}
