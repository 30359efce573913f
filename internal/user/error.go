package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSelfDelete         = errors.New("cannot delete the signed-in user")
	ErrUserInUse          = errors.New("user is referenced by other records")
)
