package services

import "errors"

var (
	// ErrMissingTitle is returned when a service has no title
	ErrMissingTitle = errors.New("title is required")

	// ErrServiceNotFound is returned when a service is not found
	ErrServiceNotFound = errors.New("service not found")
)
