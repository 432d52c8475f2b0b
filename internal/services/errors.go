package services

import "errors"

// Workflow error taxonomy. Handlers translate these to HTTP statuses;
// anything else propagates as a generic storage failure.
var (
	ErrDealNotFound        = errors.New("deal not found")
	ErrMemoNotFound        = errors.New("memo not found")
	ErrMemoVersionNotFound = errors.New("memo version not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrAlreadyVoted = errors.New("you have already voted on this deal")
	ErrMemoExists   = errors.New("memo already exists for this deal")
	ErrEmailTaken   = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserInactive       = errors.New("inactive user")

	ErrExportDisabled = errors.New("pdf export is not configured")
)
