package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodoDefaultsToTodoStatus(t *testing.T) {
	todo, err := NewTodo(1, "buy milk")
	require.NoError(t, err)

	assert.Equal(t, "buy milk", todo.Content)
	assert.Equal(t, StatusTodo, todo.Status)
	assert.Equal(t, uint(1), todo.UserID)
}

func TestNewTodoRejectsMissingFields(t *testing.T) {
	_, err := NewTodo(1, "")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewTodo(0, "buy milk")
	assert.ErrorIs(t, err, ErrMissingField)
}
