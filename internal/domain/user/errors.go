package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrEmailExists           = errors.New("Email already registered")
	ErrManagerAccessRequired = errors.New("Manager access required")
	ErrNotInTeam             = errors.New("User is not in this manager's team")
)
