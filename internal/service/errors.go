package service

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrSessionExpired   = errors.New("session is expired")

	// ErrEncodingFailed marks a captured image that cannot be turned into a
	// valid recognition request (empty bytes or unsupported media type).
	ErrEncodingFailed = errors.New("image encoding failed")

	// ErrServerRejected marks a sync batch the backend answered with status
	// "error". The buffered records are kept for a later retry.
	ErrServerRejected = errors.New("server rejected sync batch")

	ErrPlanNotFound      = errors.New("nutrition plan not found")
	ErrServerUnavailable = errors.New("server unavailable")
)
