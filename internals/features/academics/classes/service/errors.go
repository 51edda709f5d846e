package service

import "errors"

// Sentinel errors surfaced by the scheduling engine. Controllers map these
// to 404 / 400 / 409 envelopes.
var (
	ErrClassNotFound   = errors.New("class not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrConstraint      = errors.New("constraint violation")
	ErrConflict        = errors.New("conflict")
)
