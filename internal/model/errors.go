package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownScoreType = errors.New("unknown score type")
)
