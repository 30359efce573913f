package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrUnknownReference = errors.New("project or assignee does not exist")
)
