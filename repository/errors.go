package repository

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)
