package entities

import "errors"

var (
	ErrMissingField   = errors.New("required field missing")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownEmail   = errors.New("no account with that email")
	ErrWrongPassword  = errors.New("wrong password")
	ErrTodoNotFound   = errors.New("todo not found")
)
