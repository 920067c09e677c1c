package service

import "errors"

var (
	ErrEmptyPath          = errors.New("log path must be specified")
	ErrPathNotFound       = errors.New("log path does not exist")
	ErrNoPath             = errors.New("no log path selected")
	ErrAlreadyMonitoring  = errors.New("monitoring already active")
	ErrNotMonitoring      = errors.New("monitoring is not active")
	ErrInvalidRules       = errors.New("invalid alert rules")
	ErrInvalidBufferCap   = errors.New("buffer capacity must be positive")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrCannotMarkRead     = errors.New("cannot mark alert as read")
	ErrCannotSaveSettings = errors.New("cannot save settings")
)
