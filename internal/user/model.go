package user

import "time"

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	RoleID       uint
	RoleName     string
	Active       bool
	CreatedAt    time.Time
}

type Role struct {
	ID   uint
	Name string
}

type CreateInput struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email,max=150"`
	Password string `form:"password" validate:"required,min=8,max=72"`
	RoleID   uint   `form:"role_id" validate:"required"`
	Active   bool   `form:"active"`
}

// UpdateInput leaves the stored password untouched when Password is empty.
type UpdateInput struct {
	ID       uint   `form:"-" validate:"required"`
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email,max=150"`
	Password string `form:"password" validate:"omitempty,min=8,max=72"`
	RoleID   uint   `form:"role_id" validate:"required"`
	Active   bool   `form:"active"`
}
