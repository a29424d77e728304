package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveSession    = errors.New("no active quiz session")
	ErrNoQuizResult       = errors.New("no completed quiz result")
	ErrRecordNotFound     = errors.New("record not found")
	ErrPermissionDenied   = errors.New("permission denied")
)
