package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProduct indicates a product record breaks a catalog invariant.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrValidation indicates a request is missing required input.
	ErrValidation = errors.New("validation failed")
)
