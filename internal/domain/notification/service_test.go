package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	svc := NewService()

	assert.NoError(t, svc.Validate(&Alert{Title: "t", Message: "m"}))
	assert.ErrorIs(t, svc.Validate(&Alert{Message: "m"}), ErrInvalidTitle)
	assert.ErrorIs(t, svc.Validate(&Alert{Title: "t"}), ErrInvalidMessage)
}
