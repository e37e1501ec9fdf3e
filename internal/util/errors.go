package util

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("profile already exists")
	ErrProfileIDMismatch = errors.New("profile id does not match path")
	ErrInvalidToken      = errors.New("invalid token")
)
