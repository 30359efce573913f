package persona

import "time"

// Persona is a person tasks can be assigned to. Personas do not log in.
type Persona struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Position  string
	CreatedAt time.Time
}

type Input struct {
	ID       uint   `form:"-"`
	Name     string `form:"name" validate:"required,max=150"`
	Email    string `form:"email" validate:"omitempty,email,max=150"`
	Phone    string `form:"phone" validate:"max=30"`
	Position string `form:"position" validate:"max=100"`
}
