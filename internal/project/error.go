package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrCodeExists      = errors.New("project code already in use")
	ErrProjectInUse    = errors.New("project still has tasks")
)
