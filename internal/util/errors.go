package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrRoadmapNotFound    = errors.New("roadmap not found")
	ErrTopicNotFound      = errors.New("topic not found in roadmap")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuizInactive       = errors.New("quiz is not active")
	ErrProgressNotFound   = errors.New("progress record not found")
	ErrGoalNotFound       = errors.New("goal not found")
)
