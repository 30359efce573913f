package project

import "time"

type Status string

const (
	StatusActive Status = "active"
	StatusOnHold Status = "on_hold"
	StatusClosed Status = "closed"
)

var Statuses = []Status{StatusActive, StatusOnHold, StatusClosed}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOnHold:
		return "On hold"
	case StatusClosed:
		return "Closed"
	}
	return string(s)
}

type Project struct {
	ID          uint
	Code        string
	Name        string
	Description string
	Status      Status
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Input struct {
	ID          uint       `form:"-"`
	Code        string     `form:"code" validate:"required,max=20"`
	Name        string     `form:"name" validate:"required,max=150"`
	Description string     `form:"description" validate:"max=2000"`
	Status      Status     `form:"status" validate:"required,oneof=active on_hold closed"`
	StartDate   time.Time  `form:"start_date" validate:"required"`
	EndDate     *time.Time `form:"end_date" validate:"omitempty,gtefield=StartDate"`
}

func (in Input) toProject() *Project {
	return &Project{
		ID:          in.ID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
}
