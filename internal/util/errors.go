package util

import "errors"

var (
	ErrLevelNotFound        = errors.New("level not found")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrEmptyQuery           = errors.New("search query must be a non-empty string")
	ErrNoEditSession        = errors.New("no edit session in progress")
	ErrInvalidTransition    = errors.New("action not allowed in the current edit state")
	ErrConfirmationRequired = errors.New("confirmation required")
)
