package services

import (
	"context"

	"todolist-service/internal/domain/entities"
	"todolist-service/internal/domain/repositories"
)

// TodoService performs every mutation through an owner-scoped lookup, so a
// todo id belonging to another user behaves exactly like one that does not
// exist.
type TodoService struct {
	todos repositories.TodoRepository
}

func NewTodoService(todos repositories.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) Create(ctx context.Context, userID uint, content string) (*entities.Todo, error) {
	todo, err := entities.NewTodo(userID, content)
	if err != nil {
		return nil, err
	}

	created, err := s.todos.Create(ctx, todo)
	if err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("failed to create todo")
		return nil, err
	}
	return created, nil
}

func (s *TodoService) ListFor(ctx context.Context, userID uint) ([]entities.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, id, userID uint) (*entities.Todo, error) {
	todo, err := s.todos.FindForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, entities.ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoService) UpdateContent(ctx context.Context, id, userID uint, content string) error {
	if content == "" {
		return entities.ErrMissingField
	}

	todo, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.todos.UpdateContent(ctx, todo.ID, content)
}

// UpdateStatuses applies a bulk status form to the user's own todos. Ids
// absent from the form and rows owned by other users are left untouched.
func (s *TodoService) UpdateStatuses(ctx context.Context, userID uint, statuses map[uint]string) error {
	owned, err := s.todos.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, todo := range owned {
		status, ok := statuses[todo.ID]
		if !ok || status == "" || status == todo.Status {
			continue
		}
		if err := s.todos.UpdateStatus(ctx, todo.ID, status); err != nil {
			return err
		}
	}
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id, userID uint) error {
	todo, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.todos.Delete(ctx, todo.ID)
}
