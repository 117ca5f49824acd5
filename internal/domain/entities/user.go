package entities

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Name      string
}

func NewUser(email, password, name string) (*User, error) {
	u := &User{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Email:     email,
		Password:  password,
		Name:      name,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) validate() error {
	if u.Email == "" || u.Password == "" || u.Name == "" {
		return ErrMissingField
	}
	return nil
}

// HashPassword replaces the plaintext password with its bcrypt hash.
// Must be called exactly once, before the user is persisted.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
