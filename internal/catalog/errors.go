package catalog

import "errors"

var (
	// ErrNotFound is returned when a playlist name, library index or playlist
	// index does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a playlist whose name is taken
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput is returned for input that cannot be interpreted at all
	ErrInvalidInput = errors.New("invalid input")
)
