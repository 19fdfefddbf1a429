package response

import (
	"time"

	"phi-inspection/internal/data/entity"
)

type TaskResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Location  string            `json:"location"`
	Time      string            `json:"time"`
	Date      string            `json:"date"`
	Status    entity.TaskStatus `json:"status"`
	CreatedBy string            `json:"createdBy"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func TaskToResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID.String(),
		Title:     task.Title,
		Location:  task.Location,
		Time:      task.ScheduledTime,
		Date:      task.TaskDate.Format(time.DateOnly),
		Status:    task.Status,
		CreatedBy: task.CreatedBy.String(),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

func TasksToResponse(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskToResponse(t))
	}
	return out
}
