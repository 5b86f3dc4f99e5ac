package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotInProject   = errors.New("user not found in project")
	ErrTaskNotFound       = errors.New("task not found")
	ErrLinkedTaskNotFound = errors.New("linked task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrMembershipNotFound = errors.New("membership not found")

	ErrNotAssignee        = errors.New("caller is not assigned to this task")
	ErrAdminRequired      = errors.New("admin role required")
	ErrCrossProjectLink   = errors.New("cannot link tasks between different projects")
	ErrSelfLink           = errors.New("cannot link a task to itself")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTaskConflict     = errors.New("task was modified concurrently")
	ErrMembershipExists = errors.New("user already assigned to project")
	ErrEmailTaken       = errors.New("email already registered")
)
