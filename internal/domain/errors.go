package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDuplicateEmail     = errors.New("employee with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("user with this username already exists")
	ErrDuplicateUserEmail = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
)
