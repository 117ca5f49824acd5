package entities

import "time"

// StatusTodo is the status every new task starts with. The status column is
// an open label set; handlers pass whatever the form submitted.
const StatusTodo = "todo"

type Todo struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string
	Status    string
	UserID    uint
}

func NewTodo(userID uint, content string) (*Todo, error) {
	if content == "" {
		return nil, ErrMissingField
	}
	if userID == 0 {
		return nil, ErrMissingField
	}
	return &Todo{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Content:   content,
		Status:    StatusTodo,
		UserID:    userID,
	}, nil
}
