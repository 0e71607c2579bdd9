package account

import "errors"

var (
	ErrAccountNotFound = errors.New("Account not found")
	ErrNameExists      = errors.New("Account with this name already exists")
)
