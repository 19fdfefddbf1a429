package request

// CreateTaskRequest carries the date as YYYY-MM-DD and the time as HH:MM.
type CreateTaskRequest struct {
	Title    string `json:"title" validate:"required,max=150"`
	Location string `json:"location" validate:"required,max=255"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=pending completed overdue"`
}

type UpdateTaskRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=150"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Time     *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Date     *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed overdue"`
}
