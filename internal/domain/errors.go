package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgTreeNotFound       = "tree not found"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgInvalidImage       = "invalid or corrupt image"
	ErrMsgNameRequired       = "name is required"
	ErrMsgImageRequired      = "a photo is required"
	ErrMsgSessionNotFound    = "placement session not found"
	ErrMsgInvalidTransition  = "action not allowed in current placement state"
	ErrMsgPlacementCancelled = "placement was cancelled"
	ErrMsgPersistenceFailed  = "could not save your tree, please try again"
	ErrMsgClassifierFailed   = "content classifier unavailable"
	ErrMsgOutOfBounds        = "point is outside the map region"
	ErrMsgDatabaseError      = "database error"
	ErrMsgInvalidBoundary    = "boundary needs at least three vertices"
	ErrMsgInvalidColor       = "color must be a #rrggbb hex value"
)

var (
	ErrTreeNotFound       = errors.New(ErrMsgTreeNotFound)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrInvalidImage       = errors.New(ErrMsgInvalidImage)
	ErrNameRequired       = errors.New(ErrMsgNameRequired)
	ErrImageRequired      = errors.New(ErrMsgImageRequired)
	ErrSessionNotFound    = errors.New(ErrMsgSessionNotFound)
	ErrInvalidTransition  = errors.New(ErrMsgInvalidTransition)
	ErrPlacementCancelled = errors.New(ErrMsgPlacementCancelled)
	ErrPersistenceFailed  = errors.New(ErrMsgPersistenceFailed)
	ErrClassifierFailed   = errors.New(ErrMsgClassifierFailed)
	ErrOutOfBounds        = errors.New(ErrMsgOutOfBounds)
	ErrDatabase           = errors.New(ErrMsgDatabaseError)
	ErrInvalidBoundary    = errors.New(ErrMsgInvalidBoundary)
	ErrInvalidColor       = errors.New(ErrMsgInvalidColor)
)
