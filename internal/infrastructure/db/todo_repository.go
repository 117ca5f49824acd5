package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todolist-service/internal/domain/entities"
	"todolist-service/internal/domain/repositories"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(gdb *gorm.DB) repositories.TodoRepository {
	return &TodoRepository{db: gdb}
}

func (r *TodoRepository) Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	model := TodoModel{
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
		Content:   todo.Content,
		Status:    todo.Status,
		UserID:    todo.UserID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&model), nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID uint) ([]entities.Todo, error) {
	var models []TodoModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	todos := make([]entities.Todo, 0, len(models))
	for i := range models {
		todos = append(todos, *r.mapToEntity(&models[i]))
	}
	return todos, nil
}

func (r *TodoRepository) FindForUser(ctx context.Context, id, userID uint) (*entities.Todo, error) {
	var model TodoModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&model), nil
}

func (r *TodoRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	return r.db.WithContext(ctx).
		Model(&TodoModel{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *TodoRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&TodoModel{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&TodoModel{}, "id = ?", id).Error
}

func (r *TodoRepository) mapToEntity(model *TodoModel) *entities.Todo {
	return &entities.Todo{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Content:   model.Content,
		Status:    model.Status,
		UserID:    model.UserID,
	}
}
