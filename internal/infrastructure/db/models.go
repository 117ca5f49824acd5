package db

import (
	"time"
)

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string      `gorm:"size:100;uniqueIndex;not null"`
	Password  string      `gorm:"size:100;not null"`
	Name      string      `gorm:"size:1000;not null"`
	Todos     []TodoModel `gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string {
	return "users"
}

type TodoModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string `gorm:"size:200;not null"`
	Status    string `gorm:"size:20;default:todo"`
	UserID    uint   `gorm:"not null;index"`
}

// TableName keeps the singular table name the schema was created with.
func (TodoModel) TableName() string {
	return "todo"
}
