package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
	ErrDniTaken      = errors.New("dni already registered")
	ErrInvalidRole   = errors.New("invalid staff role")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrSelfDisable   = errors.New("cannot deactivate own account")
)
