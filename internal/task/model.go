package task

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

type Task struct {
	ID           uint
	ProjectID    uint
	ProjectCode  string
	ProjectName  string
	Title        string
	Description  string
	Status       Status
	AssigneeID   *uint
	AssigneeName *string
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overdue reports an open task whose due date lies before the day of now.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	y, m, d := now.Date()
	return t.DueDate.Before(time.Date(y, m, d, 0, 0, 0, 0, t.DueDate.Location()))
}

type Input struct {
	ID          uint       `form:"-"`
	ProjectID   uint       `form:"project_id" validate:"required"`
	Title       string     `form:"title" validate:"required,max=200"`
	Description string     `form:"description" validate:"max=2000"`
	Status      Status     `form:"status" validate:"required,oneof=pending in_progress done"`
	AssigneeID  *uint      `form:"assignee_id"`
	DueDate     *time.Time `form:"due_date"`
}

func (in Input) toTask() *Task {
	return &Task{
		ID:          in.ID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		AssigneeID:  in.AssigneeID,
		DueDate:     in.DueDate,
	}
}
