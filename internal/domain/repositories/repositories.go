package repositories

import (
	"context"

	"todolist-service/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
}

// TodoRepository trusts its caller: ownership checks happen in the service
// layer, except for FindForUser which is the owner-scoped read the service
// uses to perform them.
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)
	// ListByUser returns the user's todos in creation order.
	ListByUser(ctx context.Context, userID uint) ([]entities.Todo, error)
	// FindForUser returns (nil, nil) when the todo does not exist or is
	// owned by someone else.
	FindForUser(ctx context.Context, id, userID uint) (*entities.Todo, error)
	UpdateContent(ctx context.Context, id uint, content string) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}
