package validation

import (
	"testing"
	"time"

	"backoffice/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email  string `form:"email" validate:"required,email"`
	Method string `form:"method" validate:"required,oneof=transfer cash"`
	Note   string `validate:"max=5"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Struct(sampleForm{Email: "a@b.cl", Method: "cash"}))
	})

	t.Run("Required uses form name", func(t *testing.T) {
		err := Struct(sampleForm{Method: "cash"})
		require.Error(t, err)

		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Invalid, ae.Kind)
		assert.Equal(t, "email is required.", ae.PublicMsg)
	})

	t.Run("Oneof", func(t *testing.T) {
		err := Struct(sampleForm{Email: "a@b.cl", Method: "bitcoin"})
		assert.Equal(t, "method must be one of: transfer cash.", apperr.PublicMessage(err))
	})

	t.Run("Falls back to lowercase field name", func(t *testing.T) {
		err := Struct(sampleForm{Email: "a@b.cl", Method: "cash", Note: "too long"})
		assert.Equal(t, "note must be at most 5 characters.", apperr.PublicMessage(err))
	})
}

type rangeForm struct {
	StartDate time.Time  `form:"start_date" validate:"required"`
	EndDate   *time.Time `form:"end_date" validate:"omitempty,gtefield=StartDate"`
}

func TestStruct_DateRange(t *testing.T) {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 1, 0)

	assert.NoError(t, Struct(rangeForm{StartDate: start}))
	assert.NoError(t, Struct(rangeForm{StartDate: start, EndDate: &start}))
	assert.NoError(t, Struct(rangeForm{StartDate: start, EndDate: &after}))

	err := Struct(rangeForm{StartDate: start, EndDate: &before})
	assert.Equal(t, "end_date must not be before start_date.", apperr.PublicMessage(err))
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "start_date", snake("StartDate"))
	assert.Equal(t, "due_date", snake("DueDate"))
}
