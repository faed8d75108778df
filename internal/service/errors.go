package service

import "errors"

// Workflow errors surfaced to handlers.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrSessionInvalid  = errors.New("session invalid")
)
